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


package scalar

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/tids"
	"github.com/matrixorigin/motype/pkg/container/types"
	"github.com/matrixorigin/motype/pkg/logutil"
	v2 "github.com/matrixorigin/motype/pkg/util/metric/v2"
)

// VectorizedEquals compares each of the n elements packed back to back in
// vec against literal, using v only to know the type. rs[i] is set to
// element i == literal. rs is reused when it has capacity for n results,
// otherwise a new slice is allocated; the returned slice has length n.
//
// vec and literal are borrowed for the duration of the call and must not
// share memory. If the arguments are rejected rs is left untouched.
func VectorizedEquals(
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	return evalPacked(v, predEquals, elementWidth, vec, n, literal, rs)
}

// VectorizedLessThan is VectorizedEquals with rs[i] set to
// element i < literal.
func VectorizedLessThan(
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	return evalPacked(v, predLessThan, elementWidth, vec, n, literal, rs)
}

// VectorizedLessThanOrEquals is VectorizedEquals with rs[i] set to
// element i <= literal.
func VectorizedLessThanOrEquals(
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	return evalPacked(v, predLessThanOrEquals, elementWidth, vec, n, literal, rs)
}

// GenericVectorizedEquals is VectorizedEquals without dispatch to a bulk
// kernel: every element is decoded into a scratch instance and compared
// with Equals.
func GenericVectorizedEquals(
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	l := packed(elementWidth)
	if err := checkVectorArgs(v, predEquals, l, vec, n, literal); err != nil {
		return nil, err
	}
	rs = resultSlice(rs, n)
	if n == 0 {
		return rs, nil
	}
	predEquals.counter().Inc()
	v2.VectorizeGenericEvalCounter.Inc()
	v2.VectorizeGenericRowsCounter.Add(float64(n))
	return genericCompare(v, predEquals, l, vec, n, literal, rs)
}

// VectorizedEqualsStrided is VectorizedEquals over elements that start
// stride bytes apart, as in a row layout where each element is followed by
// other columns. Element i occupies buf[i*stride : i*stride+elementWidth].
// buf may extend past the last element, and literal may live in buf as
// long as it shares no byte with an element.
func VectorizedEqualsStrided(
	v Value,
	elementWidth int,
	stride int,
	buf []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	if stride < elementWidth {
		return nil, violation(predEquals, moerr.NewInvalidInputNoCtx("stride %d is smaller than element width %d", stride, elementWidth))
	}
	l := strided(elementWidth, stride)
	if err := checkVectorArgs(v, predEquals, l, buf, n, literal); err != nil {
		return nil, err
	}
	rs = resultSlice(rs, n)
	if n == 0 {
		return rs, nil
	}
	predEquals.counter().Inc()
	v2.VectorizeStridedEvalCounter.Inc()
	v2.VectorizeStridedRowsCounter.Add(float64(n))
	return genericCompare(v, predEquals, l, buf, n, literal, rs)
}

// VectorizedEqualsSels is VectorizedEquals returning the matching positions
// instead of one flag per element.
func VectorizedEqualsSels(
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte) (*tids.Sequence, error) {

	rs, err := VectorizedEquals(v, elementWidth, vec, n, literal, nil)
	if err != nil {
		return nil, err
	}
	return tids.FromBools(rs), nil
}

// predicate is the relation a vectorized call tests between each element
// and the literal.
type predicate uint8

const (
	predEquals predicate = iota
	predLessThan
	predLessThanOrEquals
)

func (p predicate) String() string {
	switch p {
	case predLessThan:
		return "vectorized less than"
	case predLessThanOrEquals:
		return "vectorized less than or equals"
	}
	return "vectorized equals"
}

func (p predicate) counter() prometheus.Counter {
	switch p {
	case predLessThan:
		return v2.VectorizeLessThanCounter
	case predLessThanOrEquals:
		return v2.VectorizeLessThanOrEqualsCounter
	}
	return v2.VectorizeEqualsCounter
}

// holds evaluates elem p lit on decoded values.
func (p predicate) holds(elem, lit Value) (bool, error) {
	switch p {
	case predLessThan:
		return elem.LessThan(lit)
	case predLessThanOrEquals:
		return LessThanOrEquals(elem, lit)
	}
	return elem.Equals(lit)
}

type vectorKernel func(vec []byte, n int, literal []byte, rs []bool) ([]bool, error)

// kernel returns the bulk kernel v offers for p, if any.
func (p predicate) kernel(v Value) (vectorKernel, bool) {
	switch p {
	case predEquals:
		if ve, ok := v.(VectorizedEqualer); ok {
			return ve.EqualsVector, true
		}
	case predLessThan:
		if vo, ok := v.(VectorizedOrderer); ok {
			return vo.LessThanVector, true
		}
	case predLessThanOrEquals:
		if vo, ok := v.(VectorizedOrderer); ok {
			return vo.LessThanOrEqualsVector, true
		}
	}
	return nil, false
}

// layout says where the elements of a vectorized call live in its buffer.
type layout struct {
	elementWidth int
	stride       int
	// exact rejects bytes past the last element.
	exact        bool
}

func packed(elementWidth int) layout {
	return layout{elementWidth: elementWidth, stride: elementWidth, exact: true}
}

func strided(elementWidth, stride int) layout {
	return layout{elementWidth: elementWidth, stride: stride}
}

// span returns the number of bytes n elements cover, and false if that
// does not fit in an int. stride must be positive.
func (l layout) span(n int) (int, bool) {
	if n == 0 {
		return 0, true
	}
	if n-1 > (math.MaxInt-l.elementWidth)/l.stride {
		return 0, false
	}
	return (n-1)*l.stride + l.elementWidth, true
}

// overlaps reports whether literal shares a byte with one of the n
// elements in buf.
func (l layout) overlaps(buf []byte, n int, literal []byte) bool {
	if !types.Overlaps(buf, literal) {
		return false
	}
	if l.exact {
		return true
	}
	for i := 0; i < n; i++ {
		off := i * l.stride
		if types.Overlaps(buf[off:off+l.elementWidth], literal) {
			return true
		}
	}
	return false
}

func evalPacked(
	v Value,
	p predicate,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	l := packed(elementWidth)
	if err := checkVectorArgs(v, p, l, vec, n, literal); err != nil {
		return nil, err
	}
	rs = resultSlice(rs, n)
	if n == 0 {
		return rs, nil
	}
	p.counter().Inc()
	if kernel, ok := p.kernel(v); ok {
		v2.VectorizeSpecializedEvalCounter.Inc()
		v2.VectorizeSpecializedRowsCounter.Add(float64(n))
		return kernel(vec, n, literal, rs)
	}
	v2.VectorizeGenericEvalCounter.Inc()
	v2.VectorizeGenericRowsCounter.Add(float64(n))
	return genericCompare(v, p, l, vec, n, literal, rs)
}

// checkVectorArgs validates the arguments of a vectorized call. Checks run
// in a fixed order so a call with several faults always reports the same
// one.
func checkVectorArgs(v Value, p predicate, l layout, vec []byte, n int, literal []byte) error {
	width := v.EncodedWidth()
	if width == 0 {
		return violation(p, moerr.NewUnsupportedOperationNoCtx(p.String(), typeName(v)))
	}
	if l.elementWidth != width {
		return violation(p, moerr.NewLengthMismatchNoCtx(width, l.elementWidth))
	}
	if n < 0 {
		return violation(p, moerr.NewInvalidInputNoCtx("negative element count %d", n))
	}
	want, ok := l.span(n)
	if !ok {
		return violation(p, moerr.NewLengthMismatchNoCtx(math.MaxInt, len(vec)).
			WithDetail(fmt.Sprintf("%d elements of stride %d overflow the addressable range", n, l.stride)))
	}
	if len(vec) < want || (l.exact && len(vec) != want) {
		return violation(p, moerr.NewLengthMismatchNoCtx(want, len(vec)))
	}
	if len(literal) != l.elementWidth {
		return violation(p, moerr.NewLengthMismatchNoCtx(l.elementWidth, len(literal)))
	}
	if l.overlaps(vec, n, literal) {
		return violation(p, moerr.NewInvalidInputNoCtx("literal overlaps the vector"))
	}
	return nil
}

func violation(p predicate, err *moerr.Error) error {
	v2.VectorizeContractViolationCounter.WithLabelValues(err.CodeName()).Inc()
	logutil.Warn("vectorized call rejected",
		zap.Stringer("predicate", p),
		zap.Uint16("code", err.ErrorCode()),
		zap.String("reason", err.Error()))
	return err
}

// resultSlice returns rs resized to n, or a new slice when rs is nil or too
// small. The result is never nil.
func resultSlice(rs []bool, n int) []bool {
	if rs == nil || cap(rs) < n {
		return make([]bool, n)
	}
	return rs[:n]
}

// genericCompare decodes the literal once, then decodes every element into
// one reused scratch instance and evaluates p.
func genericCompare(
	v Value,
	p predicate,
	l layout,
	buf []byte,
	n int,
	literal []byte,
	rs []bool) ([]bool, error) {

	lit := v.NewInstanceOfSameType()
	if err := lit.Decode(literal); err != nil {
		return nil, err
	}
	elem := v.NewInstanceOfSameType()
	for i := 0; i < n; i++ {
		off := i * l.stride
		if err := elem.Decode(buf[off : off+l.elementWidth]); err != nil {
			return nil, err
		}
		ok, err := p.holds(elem, lit)
		if err != nil {
			return nil, err
		}
		rs[i] = ok
	}
	return rs, nil
}
