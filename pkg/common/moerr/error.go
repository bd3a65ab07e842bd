// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
)

const (
	// 0 - 99 is OK.  They do not contain info, and are special handled
	// using a static instance, no alloc.
	Ok    uint16 = 0
	OkMax uint16 = 99

	// Group 1: Internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301

	// Group 4: unexpected state
	ErrInvalidState uint16 = 20400

	// Group 10: type system contract violations
	ErrTypeMismatch         uint16 = 21000
	ErrLengthMismatch       uint16 = 21001
	ErrUnsupportedOperation uint16 = 21002

	// ErrEnd, the max value of MOErrorCode
	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	name             string
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	// Group 1: Internal errors
	ErrStart:    {"ErrStart", "internal error: error code start"},
	ErrInternal: {"ErrInternal", "internal error: %s"},

	// Group 3: invalid input
	ErrBadConfig:    {"ErrBadConfig", "invalid configuration: %s"},
	ErrInvalidInput: {"ErrInvalidInput", "invalid input: %s"},

	// Group 4: unexpected state
	ErrInvalidState: {"ErrInvalidState", "invalid state %s"},

	// Group 10: type system
	ErrTypeMismatch:         {"ErrTypeMismatch", "type mismatch: %s vs %s"},
	ErrLengthMismatch:       {"ErrLengthMismatch", "length mismatch: expect %d bytes, got %d"},
	ErrUnsupportedOperation: {"ErrUnsupportedOperation", "unsupported operation %s on type %s"},

	// Group End: max value of MOErrorCode
	ErrEnd: {"ErrEnd", "internal error: end of errcode code"},
}

func newError(ctx context.Context, code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(NewInternalError(ctx, "not exist MOErrorCode: %d", code))
	}
	err := &Error{
		code:    code,
		message: item.errorMsgOrFormat,
		ctx:     ctx,
	}
	if len(args) != 0 {
		err.message = fmt.Sprintf(item.errorMsgOrFormat, args...)
	}
	err.stack = callers(3)
	return err
}

type Error struct {
	code    uint16
	message string
	detail  string
	ctx     context.Context
	stack   []uintptr
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Detail() string {
	return e.detail
}

// WithDetail attaches extra, non-formatted information to the error.
func (e *Error) WithDetail(detail string) *Error {
	e.detail = detail
	return e
}

func (e *Error) Display() string {
	if len(e.detail) == 0 {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.message, e.detail)
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// CodeName returns the symbolic name of the error code, e.g. ErrTypeMismatch.
func (e *Error) CodeName() string {
	if item, ok := errorMsgRefer[e.code]; ok {
		return item.name
	}
	return fmt.Sprintf("code(%d)", e.code)
}

// Context returns the context the error was raised under.
func (e *Error) Context() context.Context {
	if e.ctx == nil {
		return Context()
	}
	return e.ctx
}

func (e *Error) Succeeded() bool {
	return e.code < OkMax
}

// Format supports %+v, which appends the call stack captured at creation.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Display())
			frames := runtime.CallersFrames(e.stack)
			for {
				frame, more := frames.Next()
				if frame.Function != "" {
					_, _ = fmt.Fprintf(s, "\n%s\n\t%s:%d", frame.Function, frame.File, frame.Line)
				}
				if !more {
					break
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func callers(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	return pcs[:n]
}

func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}

	var me *Error
	if !errors.As(e, &me) {
		// This is not a moerr
		return false
	}
	return me.code == rc
}

func DowncastError(e error) *Error {
	var err *Error
	if errors.As(e, &err) {
		return err
	}
	return newError(Context(), ErrInternal, fmt.Sprintf("downcast error failed: %v", e))
}

// ConvertPanicError converts a runtime panic to internal error.
func ConvertPanicError(ctx context.Context, v interface{}) *Error {
	if e, ok := v.(*Error); ok {
		return e
	}
	return newError(ctx, ErrInternal, fmt.Sprintf("panic %v", v))
}

// ConvertGoError converts a go error into mo error.
// Note here we must return error, because nil error
// is the same as nil *Error -- Go strangeness.
func ConvertGoError(ctx context.Context, err error) error {
	// nil is nil
	if err == nil {
		return err
	}

	// already a moerr, return it as is
	if _, ok := err.(*Error); ok {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewInvalidState(ctx, err.Error())
	}

	return NewInternalError(ctx, "convert go error to mo error %v", err)
}

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInternal, xmsg)
}

func NewBadConfig(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrBadConfig, xmsg)
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInvalidInput, xmsg)
}

func NewInvalidState(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInvalidState, xmsg)
}

// NewTypeMismatch reports two operands whose type identifiers differ where
// the operation requires them to be equal.
func NewTypeMismatch(ctx context.Context, left, right string) *Error {
	return newError(ctx, ErrTypeMismatch, left, right)
}

// NewLengthMismatch reports a buffer whose length disagrees with the encoded
// width declared by the type.
func NewLengthMismatch(ctx context.Context, want, got int) *Error {
	return newError(ctx, ErrLengthMismatch, want, got)
}

// NewUnsupportedOperation reports an operation that has no meaning for typ.
func NewUnsupportedOperation(ctx context.Context, op, typ string) *Error {
	return newError(ctx, ErrUnsupportedOperation, op, typ)
}

var contextFunc atomic.Value

func SetContextFunc(f func() context.Context) {
	contextFunc.Store(f)
}

// Context returns the default context used by the NoCtx constructors.
func Context() context.Context {
	return contextFunc.Load().(func() context.Context)()
}

func init() {
	SetContextFunc(func() context.Context { return context.Background() })
}
