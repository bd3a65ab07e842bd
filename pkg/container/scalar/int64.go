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

// Int64 is the 8 byte signed integer type.
type Int64 struct {
	V int64
}

var (
	_ Value             = (*Int64)(nil)
	_ OrderedComparator = (*Int64)(nil)
	_ VectorizedEqualer = (*Int64)(nil)
	_ VectorizedOrderer = (*Int64)(nil)
)

func NewInt64(v int64) *Int64 {
	return &Int64{V: v}
}

func (i *Int64) TypeID() types.T {
	return types.T_int64
}

func (i *Int64) EncodedWidth() int {
	return types.Int64Size
}

func (i *Int64) Decode(buf []byte) error {
	v, err := types.DecodeFixed[int64](buf)
	if err != nil {
		return err
	}
	i.V = v
	return nil
}

func (i *Int64) AppendEncoded(dst []byte) []byte {
	return types.AppendFixed(dst, i.V)
}

func (i *Int64) NewInstanceOfSameType() Value {
	return &Int64{}
}

func (i *Int64) DuplicateValue() Value {
	return &Int64{V: i.V}
}

func (i *Int64) operand(other Value) (int64, error) {
	o, ok := other.(*Int64)
	if !ok || o == nil {
		return 0, typeMismatch(i, other)
	}
	return o.V, nil
}

func (i *Int64) Equals(other Value) (bool, error) {
	v, err := i.operand(other)
	return err == nil && i.V == v, err
}

func (i *Int64) NotEquals(other Value) (bool, error) {
	v, err := i.operand(other)
	return err == nil && i.V != v, err
}

func (i *Int64) LessThan(other Value) (bool, error) {
	v, err := i.operand(other)
	return err == nil && i.V < v, err
}

func (i *Int64) LessThanOrEquals(other Value) (bool, error) {
	v, err := i.operand(other)
	return err == nil && i.V <= v, err
}

func (i *Int64) GreaterThan(other Value) (bool, error) {
	v, err := i.operand(other)
	return err == nil && i.V > v, err
}

func (i *Int64) GreaterThanOrEquals(other Value) (bool, error) {
	v, err := i.operand(other)
	return err == nil && i.V >= v, err
}

// AddInPlace wraps around on overflow.
func (i *Int64) AddInPlace(other Value) error {
	v, err := i.operand(other)
	if err != nil {
		return err
	}
	i.V += v
	return nil
}

func (i *Int64) Render(w io.Writer) error {
	_, err := io.WriteString(w, i.String())
	return err
}

func (i *Int64) String() string {
	return strconv.FormatInt(i.V, 10)
}

func (i *Int64) EqualsVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error) {
	return integerVector(vec, n, literal, rs, eq.Int64EqScalar)
}

func (i *Int64) LessThanVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error) {
	return integerVector(vec, n, literal, rs, lt.Int64LtScalar)
}

func (i *Int64) LessThanOrEqualsVector(vec []byte, n int, literal []byte, rs []bool) ([]bool, error) {
	return integerVector(vec, n, literal, rs, le.Int64LeScalar)
}
