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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/tids"
)

func tidsCommand() *cobra.Command {
	var mask int
	cmd := &cobra.Command{
		Use:   "tids FILE",
		Short: "Print the rows saved by scan --tids-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTids(cmd.OutOrStdout(), args[0], mask)
		},
	}
	cmd.Flags().IntVar(&mask, "mask", 0, "also print the selection of the first n rows as 0 and 1")
	return cmd
}

func runTids(w io.Writer, path string, mask int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	seq, err := tids.Read(data)
	if err != nil {
		return moerr.ConvertGoError(moerr.Context(), err)
	}
	fmt.Fprintf(w, "%d rows: %v\n", tids.Length(seq), tids.ToSels(seq))
	if mask > 0 {
		var sb strings.Builder
		for _, r := range tids.ToBools(seq, mask) {
			if r {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	return nil
}
