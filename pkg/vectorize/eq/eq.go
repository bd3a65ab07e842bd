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

package eq

import (
	"golang.org/x/sys/cpu"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/types"
	"github.com/matrixorigin/motype/pkg/logutil"
)

const (
	KernelAuto   = "auto"
	KernelPure   = "pure"
	KernelUnroll = "unroll"
)

var (
	uint64EqScalar func(uint64, []uint64, []bool) []bool
	int64EqScalar  func(int64, []int64, []bool) []bool

	kernel string
)

func init() {
	useKernel(detectKernel())
}

func detectKernel() string {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return KernelUnroll
	}
	return KernelPure
}

func useKernel(name string) {
	switch name {
	case KernelUnroll:
		uint64EqScalar = eqScalarUnroll[uint64]
		int64EqScalar = eqScalarUnroll[int64]
	default:
		name = KernelPure
		uint64EqScalar = eqScalarPure[uint64]
		int64EqScalar = eqScalarPure[int64]
	}
	kernel = name
}

// UseKernel selects the scalar equality kernels. "auto" picks by cpu
// feature, as done at start up.
func UseKernel(name string) error {
	switch name {
	case KernelAuto, "":
		useKernel(detectKernel())
	case KernelPure, KernelUnroll:
		useKernel(name)
	default:
		return moerr.NewBadConfigNoCtx("unknown eq kernel %q", name)
	}
	logutil.Debugf("eq kernel set to %s", kernel)
	return nil
}

// Kernel returns the name of the kernels in use.
func Kernel() string {
	return kernel
}

// Uint64EqScalar sets rs[i] = x == ys[i]. rs must be at least len(ys) long;
// the first len(ys) entries are returned.
func Uint64EqScalar(x uint64, ys []uint64, rs []bool) []bool {
	return uint64EqScalar(x, ys, rs)
}

func Int64EqScalar(x int64, ys []int64, rs []bool) []bool {
	return int64EqScalar(x, ys, rs)
}

func eqScalarPure[T types.Integers](x T, ys []T, rs []bool) []bool {
	rs = rs[:len(ys)]
	for i, y := range ys {
		rs[i] = x == y
	}
	return rs
}

func eqScalarUnroll[T types.Integers](x T, ys []T, rs []bool) []bool {
	n := len(ys)
	rs = rs[:n]
	i := 0
	for ; i+8 <= n; i += 8 {
		v := ys[i : i+8 : i+8]
		r := rs[i : i+8 : i+8]
		r[0] = x == v[0]
		r[1] = x == v[1]
		r[2] = x == v[2]
		r[3] = x == v[3]
		r[4] = x == v[4]
		r[5] = x == v[5]
		r[6] = x == v[6]
		r[7] = x == v[7]
	}
	for ; i < n; i++ {
		rs[i] = x == ys[i]
	}
	return rs
}
