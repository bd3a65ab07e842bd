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
	"unsafe"

	"github.com/matrixorigin/motype/pkg/common/moerr"
)

// All encodings in this file use the host's native byte order: the bytes of
// a value are exactly its in-memory representation.

func EncodeSlice[T FixedSizeT](v []T) []byte {
	var t T
	sz := int(unsafe.Sizeof(t))
	if len(v) > 0 {
		return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*sz)[:len(v)*sz]
	}
	return nil
}

// DecodeSlice reinterprets v as a slice of T without copying. v must be
// aligned for T, see IsAligned.
func DecodeSlice[T FixedSizeT](v []byte) ([]T, error) {
	var t T
	sz := int(unsafe.Sizeof(t))

	if len(v)%sz != 0 {
		return nil, moerr.NewInvalidInputNoCtx("decode slice of %d bytes that is not a multiple of element size %d", len(v), sz)
	}
	if len(v) == 0 {
		return nil, nil
	}
	if !IsAligned[T](v) {
		return nil, moerr.NewInvalidInputNoCtx("decode slice from a buffer not aligned to %d", unsafe.Alignof(t))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v[0])), len(v)/sz)[:len(v)/sz], nil
}

// IsAligned reports whether the first byte of v sits on an address that a
// T may be loaded from directly.
func IsAligned[T FixedSizeT](v []byte) bool {
	if len(v) == 0 {
		return true
	}
	var t T
	return uintptr(unsafe.Pointer(&v[0]))%unsafe.Alignof(t) == 0
}

func EncodeFixed[T FixedSizeT](v T) []byte {
	sz := unsafe.Sizeof(v)
	buf := make([]byte, sz)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&v)), sz))
	return buf
}

// AppendFixed appends the encoding of v to dst.
func AppendFixed[T FixedSizeT](dst []byte, v T) []byte {
	sz := unsafe.Sizeof(v)
	return append(dst, unsafe.Slice((*byte)(unsafe.Pointer(&v)), sz)...)
}

// DecodeFixed decodes exactly sizeof(T) bytes. The copy into a local keeps
// the load aligned whatever the alignment of v.
func DecodeFixed[T FixedSizeT](v []byte) (T, error) {
	var t T
	sz := int(unsafe.Sizeof(t))
	if len(v) != sz {
		return t, moerr.NewLengthMismatchNoCtx(sz, len(v))
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&t)), sz), v)
	return t, nil
}

// Overlaps reports whether a and b share any byte of memory.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))
	bEnd := bStart + uintptr(len(b))
	return aStart < bEnd && bStart < aEnd
}
