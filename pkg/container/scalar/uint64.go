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
	"io"
	"strconv"

	"github.com/matrixorigin/motype/pkg/container/types"
	"github.com/matrixorigin/motype/pkg/vectorize/eq"
	"github.com/matrixorigin/motype/pkg/vectorize/le"
	"github.com/matrixorigin/motype/pkg/vectorize/lt"
)

// Uint64 is the 8 byte unsigned integer type. The encoding is the host's
// native byte order; signed data belongs in Int64.
type Uint64 struct {
	V uint64
}

var (
	_ Value             = (*Uint64)(nil)
	_ OrderedComparator = (*Uint64)(nil)
	_ VectorizedEqualer = (*Uint64)(nil)
	_ VectorizedOrderer = (*Uint64)(nil)
)

func NewUint64(v uint64) *Uint64 {
	return &Uint64{V: v}
}

func (u *Uint64) TypeID() types.T {
	return types.T_uint64
}

func (u *Uint64) EncodedWidth() int {
	return types.Uint64Size
}

func (u *Uint64) Decode(buf []byte) error {
	v, err := types.DecodeFixed[uint64](buf)
	if err != nil {
		return err
	}
	u.V = v
	return nil
}

func (u *Uint64) AppendEncoded(dst []byte) []byte {
	return types.AppendFixed(dst, u.V)
}

func (u *Uint64) NewInstanceOfSameType() Value {
	return &Uint64{}
}

func (u *Uint64) DuplicateValue() Value {
	return &Uint64{V: u.V}
}

func (u *Uint64) operand(other Value) (uint64, error) {
	o, ok := other.(*Uint64)
	if !ok || o == nil {
		return 0, typeMismatch(u, other)
	}
	return o.V, nil
}

func (u *Uint64) Equals(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V == v, err
}

func (u *Uint64) NotEquals(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V != v, err
}

func (u *Uint64) LessThan(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V < v, err
}

func (u *Uint64) LessThanOrEquals(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V <= v, err
}

func (u *Uint64) GreaterThan(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V > v, err
}

func (u *Uint64) GreaterThanOrEquals(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V >= v, err
}

// AddInPlace wraps around on overflow.
func (u *Uint64) AddInPlace(other Value) error {
	v, err := u.operand(other)
	if err != nil {
		return err
	}
	u.V += v
	return nil
}

// Increment adds one to the held value.
func (u *Uint64) Increment() {
	u.V++
}

func (u *Uint64) Render(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

func (u *Uint64) String() string {
	return strconv.FormatUint(u.V, 10)
}

func (u *Uint64) EqualsVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error) {
	return integerVector(vec, n, literal, rs, eq.Uint64EqScalar)
}

func (u *Uint64) LessThanVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error) {
	return integerVector(vec, n, literal, rs, lt.Uint64LtScalar)
}

func (u *Uint64) LessThanOrEqualsVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error) {
	return integerVector(vec, n, literal, rs, le.Uint64LeScalar)
}

// integerVector runs kernel over vec reinterpreted in place. A vector that
// is not aligned for T is fed to kernel one decoded element at a time.
func integerVector[T int64 | uint64](
	vec []byte,
	n int,
	literal []byte,
	rs []bool,
	kernel func(T, []T, []bool) []bool) ([]bool, error) {

	x, err := types.DecodeFixed[T](literal)
	if err != nil {
		return nil, err
	}
	if types.IsAligned[T](vec) {
		ys, err := types.DecodeSlice[T](vec)
		if err != nil {
			return nil, err
		}
		return kernel(x, ys, rs), nil
	}
	sz := len(literal)
	one := make([]T, 1)
	for i := 0; i < n; i++ {
		if one[0], err = types.DecodeFixed[T](vec[i*sz : (i+1)*sz]); err != nil {
			return nil, err
		}
		kernel(x, one, rs[i:i+1])
	}
	return rs[:n], nil
}
