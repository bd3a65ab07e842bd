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


// Package lt holds the less than kernels. Every kernel compares the
// elements of a vector against one scalar: rs[i] = ys[i] < x.
package lt

import (
	"github.com/matrixorigin/motype/pkg/container/types"
)

var (
	uint64LtScalar func(uint64, []uint64, []bool) []bool
	int64LtScalar  func(int64, []int64, []bool) []bool
)

func init() {
	uint64LtScalar = ltScalarPure[uint64]
	int64LtScalar = ltScalarPure[int64]
}

// Uint64LtScalar sets rs[i] = ys[i] < x. rs must be at least len(ys) long;
// the first len(ys) entries are returned.
func Uint64LtScalar(x uint64, ys []uint64, rs []bool) []bool {
	return uint64LtScalar(x, ys, rs)
}

func Int64LtScalar(x int64, ys []int64, rs []bool) []bool {
	return int64LtScalar(x, ys, rs)
}

func ltScalarPure[T types.Integers](x T, ys []T, rs []bool) []bool {
	rs = rs[:len(ys)]
	for i, y := range ys {
		rs[i] = y < x
	}
	return rs
}
