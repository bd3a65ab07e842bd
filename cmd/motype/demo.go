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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matrixorigin/motype/pkg/container/scalar"
	"github.com/matrixorigin/motype/pkg/container/tids"
	"github.com/matrixorigin/motype/pkg/container/types"
)

func demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Compare and add two integers, then scan a 1024 element vector for 13",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	x, err := scalar.New(types.T_uint64)
	if err != nil {
		return err
	}
	y := x.NewInstanceOfSameType()
	if err := x.Decode(types.EncodeFixed(uint64(13))); err != nil {
		return err
	}
	if err := y.Decode(types.EncodeFixed(uint64(26))); err != nil {
		return err
	}

	c, err := scalar.Compare(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "x = %s, y = %s\n", x, y)
	fmt.Fprintf(w, "x == y: %t\nx != y: %t\nx < y: %t\nx <= y: %t\nx > y: %t\nx >= y: %t\n",
		c.Equals(), c.NotEquals(), c.LessThan(), c.LessThanOrEquals(), c.GreaterThan(), c.GreaterThanOrEquals())

	if err := x.AddInPlace(y); err != nil {
		return err
	}
	fmt.Fprint(w, "x + y = ")
	if err := scalar.Print(w, x); err != nil {
		return err
	}
	fmt.Fprintln(w)

	const n = 1024
	vec := types.EncodeSlice(oddOrDoubled[uint64](n))
	literal := types.EncodeFixed(uint64(13))
	seq, err := scalar.VectorizedEqualsSels(x, x.EncodedWidth(), vec, n, literal)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "rows equal to 13 among %d: %s\n", n, tids.String(seq))
	return nil
}

// oddOrDoubled returns n elements where element i is i when i is odd and
// i*2 otherwise.
func oddOrDoubled[T int64 | uint64](n int) []T {
	xs := make([]T, n)
	for i := range xs {
		if i%2 == 1 {
			xs[i] = T(i)
		} else {
			xs[i] = T(i * 2)
		}
	}
	return xs
}
