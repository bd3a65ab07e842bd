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

package tids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBools(t *testing.T) {
	seq := FromBools([]bool{false, true, false, true, true})
	require.True(t, Any(seq))
	require.Equal(t, 3, Length(seq))
	require.True(t, Contains(seq, 1))
	require.False(t, Contains(seq, 2))
	require.Equal(t, []int64{1, 3, 4}, ToSels(seq))
	require.Equal(t, "[1 3 4]", String(seq))
}

func TestEmpty(t *testing.T) {
	seq := FromBools(make([]bool, 16))
	require.False(t, Any(seq))
	require.Equal(t, 0, Length(seq))
	require.Equal(t, []int64{}, ToSels(seq))

	var nilSeq *Sequence
	require.False(t, Contains(nilSeq, 0))
	require.Equal(t, 0, Length(nilSeq))
	require.Equal(t, "[]", String(nilSeq))
}

func TestOrWithOffset(t *testing.T) {
	lo := FromBoolsWithOffset([]bool{true, false}, 0)
	hi := FromBoolsWithOffset([]bool{false, true}, 2)
	Or(lo, hi)
	Add(lo, 10)
	require.Equal(t, []int64{0, 3, 10}, ToSels(lo))
	require.Equal(t, []bool{true, false, false, true}, ToBools(lo, 4))
}

func TestShowRead(t *testing.T) {
	seq := New()
	Add(seq, 1, 5, 1<<20)
	data, err := Show(seq)
	require.NoError(t, err)

	got, err := Read(data)
	require.NoError(t, err)
	require.Equal(t, ToSels(seq), ToSels(got))

	got, err = Read(nil)
	require.NoError(t, err)
	require.False(t, Any(got))
}
