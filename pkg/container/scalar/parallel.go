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

package scalar

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/motype/pkg/common/concurrent"
	"github.com/matrixorigin/motype/pkg/logutil"
	v2 "github.com/matrixorigin/motype/pkg/util/metric/v2"
)

// ParallelVectorizedEquals computes the same result as VectorizedEquals with
// the element range split across the workers of exec. Each worker writes
// only its own part of the result, and the generic path gives each worker
// its own scratch instances, so v itself is only read.
func ParallelVectorizedEquals(
	ctx context.Context,
	exec concurrent.Executor,
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte) ([]bool, error) {

	return evalParallel(ctx, exec, v, predEquals, elementWidth, vec, n, literal)
}

// ParallelVectorizedLessThan is VectorizedLessThan split across exec.
func ParallelVectorizedLessThan(
	ctx context.Context,
	exec concurrent.Executor,
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte) ([]bool, error) {

	return evalParallel(ctx, exec, v, predLessThan, elementWidth, vec, n, literal)
}

func ParallelVectorizedLessThanOrEquals(
	ctx context.Context,
	exec concurrent.Executor,
	v Value,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte) ([]bool, error) {

	return evalParallel(ctx, exec, v, predLessThanOrEquals, elementWidth, vec, n, literal)
}

func evalParallel(
	ctx context.Context,
	exec concurrent.Executor,
	v Value,
	p predicate,
	elementWidth int,
	vec []byte,
	n int,
	literal []byte) ([]bool, error) {

	l := packed(elementWidth)
	if err := checkVectorArgs(v, p, l, vec, n, literal); err != nil {
		return nil, err
	}
	rs := make([]bool, n)
	if n == 0 {
		return rs, nil
	}

	kernel, specialized := p.kernel(v)
	start := time.Now()
	err := exec.Execute(ctx, n, func(ctx context.Context, thread_id, from, to int) error {
		sub := rs[from:to]
		part := vec[from*elementWidth : to*elementWidth]
		var err error
		if specialized {
			_, err = kernel(part, to-from, literal, sub)
		} else {
			_, err = genericCompare(v, p, l, part, to-from, literal, sub)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	p.counter().Inc()
	v2.VectorizeParallelEvalCounter.Inc()
	if specialized {
		v2.VectorizeSpecializedRowsCounter.Add(float64(n))
	} else {
		v2.VectorizeGenericRowsCounter.Add(float64(n))
	}
	if logutil.Enabled(zapcore.DebugLevel) {
		logutil.Debug("parallel vectorized evaluation",
			zap.Stringer("predicate", p),
			zap.String("type", v.TypeID().OidString()),
			zap.Int("rows", n),
			zap.Int("parallelism", exec.Parallelism()),
			zap.Bool("specialized", specialized),
			zap.Duration("cost", time.Since(start)))
	}
	return rs, nil
}
