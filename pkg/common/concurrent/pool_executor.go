// Copyright 2023 Matrix Origin
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

package concurrent

import (
	"context"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"

	"github.com/matrixorigin/motype/pkg/common/moerr"
)

// PoolExecutor runs ranges on a long lived ants pool, so repeated calls do
// not pay for goroutine creation. Unlike ThreadPoolExecutor a failing range
// does not cancel its siblings; all errors are combined.
type PoolExecutor struct {
	nthreads int
	opts     options
	pool     *ants.Pool
}

var _ Executor = (*PoolExecutor)(nil)

func NewPoolExecutor(nthreads int, opts ...Option) (*PoolExecutor, error) {
	if nthreads <= 0 {
		nthreads = runtime.NumCPU()
	}
	pool, err := ants.NewPool(nthreads)
	if err != nil {
		return nil, moerr.ConvertGoError(moerr.Context(), err)
	}
	return &PoolExecutor{nthreads: nthreads, opts: applyOptions(opts), pool: pool}, nil
}

func (e *PoolExecutor) Parallelism() int {
	return e.nthreads
}

func (e *PoolExecutor) Execute(
	ctx context.Context,
	nitems int,
	fn RangeFunc) error {

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	appendErr := func(err error) {
		mu.Lock()
		errs = multierr.Append(errs, err)
		mu.Unlock()
	}

	forEachRange(nitems, e.nthreads, e.opts.minItems, func(thread_id, start, end int) {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					appendErr(moerr.ConvertPanicError(ctx, r))
				}
			}()
			if err := ctx.Err(); err != nil {
				appendErr(err)
				return
			}
			if err := fn(ctx, thread_id, start, end); err != nil {
				appendErr(err)
			}
		}
		if err := e.pool.Submit(task); err != nil {
			wg.Done()
			appendErr(moerr.ConvertGoError(ctx, err))
		}
	})

	wg.Wait()
	return errs
}

// Release closes the underlying pool. The executor must not be used after.
func (e *PoolExecutor) Release() {
	e.pool.Release()
}
