// Copyright 2021 Matrix Origin
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

// Package scalar defines the capability set every runtime scalar type
// implements, and the built-in types that implement it.
//
// A Value owns exactly one decoded value. Operator code holds Values through
// the interface only, so new types plug in by implementing Value and calling
// Register; nothing that consumes Values has to change.
package scalar

import (
	"fmt"
	"io"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/types"
)

type Value interface {
	fmt.Stringer

	// TypeID returns the identifier of the concrete type. It never returns
	// types.T_any.
	TypeID() types.T
	// EncodedWidth returns the number of bytes one value occupies in a raw
	// buffer, or 0 if the type is variable length.
	EncodedWidth() int

	// Decode replaces the held value with the one encoded in buf. Fixed
	// length types require len(buf) == EncodedWidth(). buf is not retained.
	Decode(buf []byte) error
	// AppendEncoded appends the encoding of the held value to dst. It is the
	// inverse of Decode.
	AppendEncoded(dst []byte) []byte

	// NewInstanceOfSameType returns a default valued instance of the same
	// type. The held value is not copied.
	NewInstanceOfSameType() Value
	// DuplicateValue returns an instance of the same type holding a copy of
	// the value.
	DuplicateValue() Value

	Equals(other Value) (bool, error)
	LessThan(other Value) (bool, error)

	// AddInPlace replaces the held value with the sum of itself and other.
	AddInPlace(other Value) error

	// Render writes a human readable form of the value.
	Render(w io.Writer) error
}

// OrderedComparator is implemented by types with a cheaper way to answer
// the derived comparisons than combining Equals and LessThan. A type that
// implements it answers all four, and the package level functions of the
// same name delegate to it.
type OrderedComparator interface {
	NotEquals(other Value) (bool, error)
	LessThanOrEquals(other Value) (bool, error)
	GreaterThan(other Value) (bool, error)
	GreaterThanOrEquals(other Value) (bool, error)
}

// VectorizedEqualer is implemented by fixed length types with a bulk
// equality kernel. EqualsVector is only called by VectorizedEquals after
// the arguments were validated: len(vec) == n*EncodedWidth(),
// len(literal) == EncodedWidth() and len(rs) == n > 0.
type VectorizedEqualer interface {
	EqualsVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error)
}

// VectorizedOrderer is VectorizedEqualer for VectorizedLessThan and
// VectorizedLessThanOrEquals, with the same preconditions.
type VectorizedOrderer interface {
	LessThanVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error)
	LessThanOrEqualsVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error)
}

// Encode returns the encoding of v in a new buffer.
func Encode(v Value) []byte {
	return v.AppendEncoded(make([]byte, 0, v.EncodedWidth()))
}

// Print writes the human readable form of v to w.
func Print(w io.Writer, v Value) error {
	return v.Render(w)
}

func typeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.TypeID().String()
}

func typeMismatch(v, other Value) error {
	return moerr.NewTypeMismatchNoCtx(typeName(v), typeName(other))
}
