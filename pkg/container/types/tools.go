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

package types

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matrixorigin/motype/pkg/common/moerr"
)

func ParseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, moerr.NewInvalidInputNoCtx("'%s' is not a valid %s", s, T_uint64)
	}
	return v, nil
}

func ParseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, moerr.NewInvalidInputNoCtx("'%s' is not a valid %s", s, T_int64)
	}
	return v, nil
}

// ParseUuid accepts every form google/uuid understands, including the
// canonical 36 character form and the urn:uuid: prefix.
func ParseUuid(s string) (Uuid, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return Uuid{}, moerr.NewInvalidInputNoCtx("'%s' is not a valid %s", s, T_uuid)
	}
	return Uuid(u), nil
}

func (u Uuid) String() string {
	return uuid.UUID(u).String()
}

// Compare orders uuids byte by byte.
func (u Uuid) Compare(o Uuid) int {
	return bytes.Compare(u[:], o[:])
}
