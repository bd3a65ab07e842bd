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
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matrixorigin/motype/pkg/common/concurrent"
	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/config"
	"github.com/matrixorigin/motype/pkg/container/scalar"
	"github.com/matrixorigin/motype/pkg/container/tids"
	"github.com/matrixorigin/motype/pkg/container/types"
	"github.com/matrixorigin/motype/pkg/logutil"
)

const (
	opEquals           = "eq"
	opLessThan         = "lt"
	opLessThanOrEquals = "le"
)

var scanTypes = map[string]types.T{
	"uint64":  types.T_uint64,
	"int64":   types.T_int64,
	"uuid":    types.T_uuid,
	"varchar": types.T_varchar,
}

type scanOptions struct {
	typ        string
	rows       int
	batch      int
	op         string
	literals   []string
	row        int64
	parallel   bool
	tidsOut    string
	cpuProfile string
}

func scanCommand(cfg *config.Config) *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Generate a vector and report the rows matching any of the literals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cpuProfile != "" {
				stop, err := startCPUProfile(opts.cpuProfile)
				if err != nil {
					return err
				}
				defer stop()
			}
			return runScan(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.typ, "type", "uint64", "element type, uint64, int64 or uuid")
	cmd.Flags().IntVar(&opts.rows, "rows", 1024, "number of elements")
	cmd.Flags().IntVar(&opts.batch, "batch", 0, "elements evaluated per call, 0 for the whole vector")
	cmd.Flags().StringVar(&opts.op, "op", opEquals, "predicate, eq, lt or le")
	cmd.Flags().StringSliceVar(&opts.literals, "literal", []string{"13"}, "literals to compare against, rows matching any are selected")
	cmd.Flags().Int64Var(&opts.row, "row", -1, "also report whether this row was selected")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "split each call across the configured executor")
	cmd.Flags().StringVar(&opts.tidsOut, "tids-out", "", "write the selected rows to the specified file")
	cmd.Flags().StringVar(&opts.cpuProfile, "cpu-profile", "", "write cpu profile to the specified file")
	return cmd
}

// scanVector returns an instance of the scanned type and n encoded
// elements. Element i holds oddOrDoubled(i); a uuid holds it big endian in
// its last 8 bytes, so uuid order follows integer order.
func scanVector(typ string, n int) (scalar.Value, []byte, error) {
	t, ok := scanTypes[typ]
	if !ok {
		return nil, nil, moerr.NewInvalidInputNoCtx("unsupported scan type %q", typ)
	}
	if !t.IsFixedLen() {
		return nil, nil, moerr.NewInvalidInputNoCtx("scan type %s is not fixed length", t)
	}
	if n < 0 {
		return nil, nil, moerr.NewInvalidInputNoCtx("rows must not be negative, got %d", n)
	}
	v, err := scalar.New(t)
	if err != nil {
		return nil, nil, err
	}
	switch t {
	case types.T_uint64:
		return v, types.EncodeSlice(oddOrDoubled[uint64](n)), nil
	case types.T_int64:
		return v, types.EncodeSlice(oddOrDoubled[int64](n)), nil
	}
	us := make([]types.Uuid, n)
	for i, x := range oddOrDoubled[uint64](n) {
		binary.BigEndian.PutUint64(us[i][8:], x)
	}
	return v, types.EncodeSlice(us), nil
}

func parseLiteral(t types.T, s string) ([]byte, error) {
	switch t {
	case types.T_uint64:
		x, err := types.ParseUint64(s)
		return types.EncodeFixed(x), err
	case types.T_int64:
		x, err := types.ParseInt64(s)
		return types.EncodeFixed(x), err
	case types.T_uuid:
		x, err := types.ParseUuid(s)
		return types.EncodeFixed(x), err
	}
	return nil, moerr.NewInvalidInputNoCtx("no literal syntax for %s", t)
}

type evalFunc func(ctx context.Context, vec []byte, n int, literal []byte) ([]bool, error)

// scanEval returns the evaluation for op, run serially or on exec.
func scanEval(v scalar.Value, op string, exec concurrent.Executor) (evalFunc, error) {
	w := v.EncodedWidth()
	if exec != nil {
		var parallel func(context.Context, concurrent.Executor, scalar.Value, int, []byte, int, []byte) ([]bool, error)
		switch op {
		case opEquals:
			parallel = scalar.ParallelVectorizedEquals
		case opLessThan:
			parallel = scalar.ParallelVectorizedLessThan
		case opLessThanOrEquals:
			parallel = scalar.ParallelVectorizedLessThanOrEquals
		default:
			return nil, moerr.NewInvalidInputNoCtx("unsupported predicate %q", op)
		}
		return func(ctx context.Context, vec []byte, n int, literal []byte) ([]bool, error) {
			return parallel(ctx, exec, v, w, vec, n, literal)
		}, nil
	}

	var serial func(scalar.Value, int, []byte, int, []byte, []bool) ([]bool, error)
	switch op {
	case opEquals:
		serial = scalar.VectorizedEquals
	case opLessThan:
		serial = scalar.VectorizedLessThan
	case opLessThanOrEquals:
		serial = scalar.VectorizedLessThanOrEquals
	default:
		return nil, moerr.NewInvalidInputNoCtx("unsupported predicate %q", op)
	}
	var rs []bool
	return func(ctx context.Context, vec []byte, n int, literal []byte) ([]bool, error) {
		var err error
		rs, err = serial(v, w, vec, n, literal, rs)
		return rs, err
	}, nil
}

func describeOp(op string) string {
	switch op {
	case opLessThan:
		return "less than"
	case opLessThanOrEquals:
		return "at most"
	}
	return "equal"
}

func runScan(ctx context.Context, w io.Writer, cfg *config.Config, opts *scanOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	v, vec, err := scanVector(opts.typ, opts.rows)
	if err != nil {
		return err
	}
	if len(opts.literals) == 0 {
		return moerr.NewInvalidInputNoCtx("at least one literal is required")
	}
	literals := make([][]byte, len(opts.literals))
	for i, s := range opts.literals {
		if literals[i], err = parseLiteral(v.TypeID(), s); err != nil {
			return err
		}
	}
	if opts.batch < 0 {
		return moerr.NewInvalidInputNoCtx("batch must not be negative, got %d", opts.batch)
	}
	batch := opts.batch
	if batch == 0 || batch > opts.rows {
		batch = opts.rows
	}

	var exec concurrent.Executor
	if opts.parallel {
		var release func()
		if exec, release, err = cfg.Vectorize.NewExecutor(); err != nil {
			return err
		}
		defer release()
	}
	eval, err := scanEval(v, opts.op, exec)
	if err != nil {
		return err
	}

	start := time.Now()
	width := v.EncodedWidth()
	seq := tids.New()
	for from := 0; from < opts.rows; from += batch {
		to := from + batch
		if to > opts.rows {
			to = opts.rows
		}
		for _, literal := range literals {
			rs, err := eval(ctx, vec[from*width:to*width], to-from, literal)
			if err != nil {
				return err
			}
			tids.Or(seq, tids.FromBoolsWithOffset(rs, uint64(from)))
		}
	}
	logutil.Info("scan finished",
		zap.String("type", v.TypeID().String()),
		zap.String("op", opts.op),
		zap.Int("rows", opts.rows),
		zap.Int("batch", batch),
		zap.Int("literals", len(literals)),
		zap.Bool("parallel", opts.parallel),
		zap.Int("matched", tids.Length(seq)),
		zap.Duration("cost", time.Since(start)))

	literal := strings.Join(opts.literals, ",")
	if tids.Any(seq) {
		fmt.Fprintf(w, "%d of %d rows %s %s: %s\n", tids.Length(seq), opts.rows, describeOp(opts.op), literal, tids.String(seq))
	} else {
		fmt.Fprintf(w, "no row of %d %s %s\n", opts.rows, describeOp(opts.op), literal)
	}
	if opts.row >= 0 {
		fmt.Fprintf(w, "row %d selected: %t\n", opts.row, tids.Contains(seq, uint64(opts.row)))
	}
	if opts.tidsOut != "" {
		return writeTids(opts.tidsOut, seq)
	}
	return nil
}

func writeTids(path string, seq *tids.Sequence) error {
	data, err := tids.Show(seq)
	if err != nil {
		return moerr.ConvertGoError(moerr.Context(), err)
	}
	return os.WriteFile(path, data, 0o644)
}
