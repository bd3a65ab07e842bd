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
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/motype/pkg/common/moerr"
)

func TestType_String(t *testing.T) {
	require.Equal(t, "BIGINT UNSIGNED", T_uint64.String())
	require.Equal(t, "BIGINT", T_int64.String())
	require.Equal(t, "UUID", T_uuid.String())
	require.Equal(t, "VARCHAR", T_varchar.String())
	require.Equal(t, "ANY", T_any.String())
	require.Equal(t, "T_uint64", T_uint64.OidString())
}

func TestFixedLength(t *testing.T) {
	require.Equal(t, 8, T_uint64.FixedLength())
	require.Equal(t, 8, T_int64.FixedLength())
	require.Equal(t, 16, T_uuid.FixedLength())
	require.Equal(t, 0, T_varchar.FixedLength())
	require.Equal(t, -1, T_any.FixedLength())
	require.Equal(t, -1, T(42).FixedLength())

	require.True(t, T_uint64.IsFixedLen())
	require.False(t, T_varchar.IsFixedLen())
	require.False(t, T_any.IsFixedLen())
}

func TestIdentifiersAreStable(t *testing.T) {
	require.Equal(t, T(-1), T_any)
	require.Equal(t, T(0), T_uint64)
	require.Equal(t, T(1), T_int64)
	require.Equal(t, T(2), T_uuid)
	require.Equal(t, T(3), T_varchar)
}

func TestEncodeFixed(t *testing.T) {
	for _, v := range []uint64{0, 1, 13, 26, math.MaxUint64} {
		buf := EncodeFixed(v)
		require.Equal(t, binary.NativeEndian.Uint64(buf), v)
		got, err := DecodeFixed[uint64](buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for _, v := range []int64{math.MinInt64, -1, 0, 13, math.MaxInt64} {
		got, err := DecodeFixed[int64](EncodeFixed(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestDecodeFixedLengthMismatch(t *testing.T) {
	_, err := DecodeFixed[uint64]([]byte{1, 2, 3})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrLengthMismatch))

	_, err = DecodeFixed[Uuid](make([]byte, 17))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrLengthMismatch))
}

func TestDecodeFixedUnaligned(t *testing.T) {
	buf := make([]byte, 9)
	copy(buf[1:], EncodeFixed(uint64(39)))
	got, err := DecodeFixed[uint64](buf[1:])
	require.NoError(t, err)
	require.Equal(t, uint64(39), got)
}

func TestAppendFixed(t *testing.T) {
	var buf []byte
	buf = AppendFixed(buf, uint64(1))
	buf = AppendFixed(buf, uint64(2))
	require.Len(t, buf, 16)

	vs, err := DecodeSlice[uint64](buf)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, vs)
}

func TestEncodeDecodeSlice(t *testing.T) {
	vs := []int64{-3, 0, 7, math.MaxInt64}
	buf := EncodeSlice(vs)
	require.Len(t, buf, 32)

	got, err := DecodeSlice[int64](buf)
	require.NoError(t, err)
	require.Equal(t, vs, got)

	// zero copy: writes through the decoded slice show in the source
	got[0] = 100
	require.Equal(t, int64(100), vs[0])

	empty, err := DecodeSlice[int64](nil)
	require.NoError(t, err)
	require.Len(t, empty, 0)
	require.Nil(t, EncodeSlice[int64](nil))

	_, err = DecodeSlice[int64](buf[:7])
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestDecodeSliceUnaligned(t *testing.T) {
	raw := EncodeSlice(make([]uint64, 3))
	require.True(t, IsAligned[uint64](raw))
	require.False(t, IsAligned[uint64](raw[1:17]))

	_, err := DecodeSlice[uint64](raw[1:17])
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestOverlaps(t *testing.T) {
	buf := make([]byte, 32)
	require.True(t, Overlaps(buf[:16], buf[8:24]))
	require.True(t, Overlaps(buf[8:16], buf))
	require.False(t, Overlaps(buf[:8], buf[8:16]))
	require.False(t, Overlaps(buf[:8], make([]byte, 8)))
	require.False(t, Overlaps(nil, buf))
}
