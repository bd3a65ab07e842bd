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

// Package tids holds tuple id sequences: the set of row positions a
// vectorized predicate selected. A Sequence is backed by a roaring bitmap,
// so sparse and dense selections both stay small.
package tids

import (
	"bytes"
	"fmt"

	roaring "github.com/RoaringBitmap/roaring/roaring64"
)

type Sequence struct {
	Np *roaring.Bitmap
}

func New() *Sequence {
	return &Sequence{Np: roaring.New()}
}

// FromBools builds the sequence of positions i with rs[i] == true.
func FromBools(rs []bool) *Sequence {
	seq := New()
	for i, r := range rs {
		if r {
			seq.Np.Add(uint64(i))
		}
	}
	return seq
}

// FromBoolsWithOffset is FromBools for a sub range of a larger vector whose
// first position is offset.
func FromBoolsWithOffset(rs []bool, offset uint64) *Sequence {
	seq := New()
	for i, r := range rs {
		if r {
			seq.Np.Add(offset + uint64(i))
		}
	}
	return seq
}

func Add(seq *Sequence, rows ...uint64) {
	seq.Np.AddMany(rows)
}

// Contains returns true if the row is in the sequence.
func Contains(seq *Sequence, row uint64) bool {
	return seq != nil && seq.Np != nil && seq.Np.Contains(row)
}

// Length returns the number of rows in the sequence.
func Length(seq *Sequence) int {
	if seq == nil || seq.Np == nil {
		return 0
	}
	return int(seq.Np.GetCardinality())
}

func Any(seq *Sequence) bool {
	return seq != nil && seq.Np != nil && !seq.Np.IsEmpty()
}

// Or merges m into seq.
func Or(seq, m *Sequence) {
	if m == nil || m.Np == nil {
		return
	}
	seq.Np.Or(m.Np)
}

// ToSels returns the rows in ascending order, in the []int64 selection form
// used by the vectorize kernels.
func ToSels(seq *Sequence) []int64 {
	if seq == nil || seq.Np == nil {
		return nil
	}
	sels := make([]int64, 0, seq.Np.GetCardinality())
	itr := seq.Np.Iterator()
	for itr.HasNext() {
		sels = append(sels, int64(itr.Next()))
	}
	return sels
}

// ToBools expands the sequence back to a bool vector of length n. Rows at or
// beyond n are ignored.
func ToBools(seq *Sequence, n int) []bool {
	rs := make([]bool, n)
	if seq == nil || seq.Np == nil {
		return rs
	}
	itr := seq.Np.Iterator()
	for itr.HasNext() {
		row := itr.Next()
		if row >= uint64(n) {
			break
		}
		rs[row] = true
	}
	return rs
}

func String(seq *Sequence) string {
	if seq == nil || seq.Np == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", seq.Np.ToArray())
}

// Show serializes the sequence in the portable roaring format.
func Show(seq *Sequence) ([]byte, error) {
	return seq.Np.ToBytes()
}

// Read restores a sequence written by Show.
func Read(data []byte) (*Sequence, error) {
	seq := New()
	if len(data) == 0 {
		return seq, nil
	}
	if _, err := seq.Np.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return seq, nil
}
