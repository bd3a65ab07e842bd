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

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/types"
)

// Uuid is a 16 byte value ordered byte by byte. It has no arithmetic and no
// bulk equality kernel.
type Uuid struct {
	V types.Uuid
}

var _ Value = (*Uuid)(nil)

func NewUuid(v types.Uuid) *Uuid {
	return &Uuid{V: v}
}

func (u *Uuid) TypeID() types.T {
	return types.T_uuid
}

func (u *Uuid) EncodedWidth() int {
	return types.UuidSize
}

func (u *Uuid) Decode(buf []byte) error {
	v, err := types.DecodeFixed[types.Uuid](buf)
	if err != nil {
		return err
	}
	u.V = v
	return nil
}

func (u *Uuid) AppendEncoded(dst []byte) []byte {
	return append(dst, u.V[:]...)
}

func (u *Uuid) NewInstanceOfSameType() Value {
	return &Uuid{}
}

func (u *Uuid) DuplicateValue() Value {
	return &Uuid{V: u.V}
}

func (u *Uuid) operand(other Value) (types.Uuid, error) {
	o, ok := other.(*Uuid)
	if !ok || o == nil {
		return types.Uuid{}, typeMismatch(u, other)
	}
	return o.V, nil
}

func (u *Uuid) Equals(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V == v, err
}

func (u *Uuid) LessThan(other Value) (bool, error) {
	v, err := u.operand(other)
	return err == nil && u.V.Compare(v) < 0, err
}

func (u *Uuid) AddInPlace(other Value) error {
	if _, err := u.operand(other); err != nil {
		return err
	}
	return moerr.NewUnsupportedOperationNoCtx("add", u.TypeID().String())
}

func (u *Uuid) Render(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

func (u *Uuid) String() string {
	return u.V.String()
}
