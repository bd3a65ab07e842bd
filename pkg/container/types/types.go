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
	"fmt"

	"golang.org/x/exp/constraints"
)

// T is the type identifier of a scalar type. Identifiers are stable: new
// types are appended and existing values never change.
type T int8

const (
	// T_any is the unknown sentinel. No real type reports it.
	T_any T = -1

	T_uint64  T = 0
	T_int64   T = 1
	T_uuid    T = 2
	T_varchar T = 3
)

const (
	Uint64Size int = 8
	Int64Size  int = 8
	UuidSize   int = 16
)

type Ints interface {
	int8 | int16 | int32 | int64
}

type UInts interface {
	uint8 | uint16 | uint32 | uint64
}

type Floats interface {
	float32 | float64
}

// FixedSizeT are the Go types whose in-memory layout is also their encoded
// layout.
type FixedSizeT interface {
	bool | Ints | UInts | Floats | Uuid
}

// Integers is the constraint shared by the fixed-width integer scalars.
type Integers interface {
	constraints.Integer
}

type Uuid [UuidSize]byte

func (t T) String() string {
	switch t {
	case T_uint64:
		return "BIGINT UNSIGNED"
	case T_int64:
		return "BIGINT"
	case T_uuid:
		return "UUID"
	case T_varchar:
		return "VARCHAR"
	case T_any:
		return "ANY"
	}
	return fmt.Sprintf("unexpected type: %d", t)
}

// OidString returns the identifier name used in logs and metrics.
func (t T) OidString() string {
	switch t {
	case T_uint64:
		return "T_uint64"
	case T_int64:
		return "T_int64"
	case T_uuid:
		return "T_uuid"
	case T_varchar:
		return "T_varchar"
	case T_any:
		return "T_any"
	}
	return "unknown_type"
}

// FixedLength returns the encoded width of a fixed length type, 0 for a
// variable length type and -1 for an unknown identifier.
func (t T) FixedLength() int {
	switch t {
	case T_uint64:
		return Uint64Size
	case T_int64:
		return Int64Size
	case T_uuid:
		return UuidSize
	case T_varchar:
		return 0
	}
	return -1
}

func (t T) IsFixedLen() bool {
	return t.FixedLength() > 0
}
