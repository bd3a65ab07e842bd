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
	"bytes"
	"io"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/types"
)

// Varchar is a variable length byte string ordered lexicographically. Its
// EncodedWidth is 0, so it takes no part in vectorized evaluation.
type Varchar struct {
	V []byte
}

var _ Value = (*Varchar)(nil)

func NewVarchar(s string) *Varchar {
	return &Varchar{V: []byte(s)}
}

func (s *Varchar) TypeID() types.T {
	return types.T_varchar
}

func (s *Varchar) EncodedWidth() int {
	return 0
}

// Decode copies buf, any length is accepted.
func (s *Varchar) Decode(buf []byte) error {
	s.V = append(s.V[:0], buf...)
	return nil
}

func (s *Varchar) AppendEncoded(dst []byte) []byte {
	return append(dst, s.V...)
}

func (s *Varchar) NewInstanceOfSameType() Value {
	return &Varchar{}
}

func (s *Varchar) DuplicateValue() Value {
	return &Varchar{V: bytes.Clone(s.V)}
}

func (s *Varchar) operand(other Value) ([]byte, error) {
	o, ok := other.(*Varchar)
	if !ok || o == nil {
		return nil, typeMismatch(s, other)
	}
	return o.V, nil
}

func (s *Varchar) Equals(other Value) (bool, error) {
	v, err := s.operand(other)
	return err == nil && bytes.Equal(s.V, v), err
}

func (s *Varchar) LessThan(other Value) (bool, error) {
	v, err := s.operand(other)
	return err == nil && bytes.Compare(s.V, v) < 0, err
}

func (s *Varchar) AddInPlace(other Value) error {
	if _, err := s.operand(other); err != nil {
		return err
	}
	return moerr.NewUnsupportedOperationNoCtx("add", s.TypeID().String())
}

func (s *Varchar) Render(w io.Writer) error {
	_, err := w.Write(s.V)
	return err
}

func (s *Varchar) String() string {
	return string(s.V)
}
