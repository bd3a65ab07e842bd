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

package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RangeFunc processes items [start, end). thread_id is in [0, Parallelism()).
type RangeFunc func(ctx context.Context, thread_id int, start, end int) error

// Executor splits nitems into contiguous, disjoint ranges and runs fn on
// each of them concurrently. Execute returns once every range has finished.
type Executor interface {
	Parallelism() int
	Execute(ctx context.Context, nitems int, fn RangeFunc) error
}

type Option func(*options)

type options struct {
	minItems int
}

// WithMinItemsPerThread keeps every range at least m items long, so small
// inputs use fewer threads than Parallelism. m <= 1 splits as evenly as
// possible across all threads.
func WithMinItemsPerThread(m int) Option {
	return func(o *options) {
		o.minItems = m
	}
}

func applyOptions(opts []Option) options {
	o := options{minItems: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minItems < 1 {
		o.minItems = 1
	}
	return o
}

type ThreadPoolExecutor struct {
	nthreads int
	opts     options
}

var _ Executor = ThreadPoolExecutor{}

func NewThreadPoolExecutor(nthreads int, opts ...Option) ThreadPoolExecutor {
	if nthreads <= 0 {
		nthreads = runtime.NumCPU()
	}
	return ThreadPoolExecutor{nthreads: nthreads, opts: applyOptions(opts)}
}

func (e ThreadPoolExecutor) Parallelism() int {
	return e.nthreads
}

func (e ThreadPoolExecutor) Execute(
	ctx context.Context,
	nitems int,
	fn RangeFunc) (err error) {

	g, ctx := errgroup.WithContext(ctx)

	forEachRange(nitems, e.nthreads, e.opts.minItems, func(thread_id, start, end int) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, thread_id, start, end)
		})
	})

	return g.Wait()
}

// forEachRange splits nitems into at most nthreads ranges whose sizes differ
// by at most one. Unless nitems itself is smaller, no range is shorter than
// minItems.
func forEachRange(nitems, nthreads, minItems int, f func(thread_id, start, end int)) {
	if nitems <= 0 {
		return
	}
	if maxThreads := nitems / minItems; maxThreads < nthreads {
		nthreads = maxThreads
	}
	if nthreads < 1 {
		nthreads = 1
	}
	q := nitems / nthreads
	r := nitems % nthreads

	start := 0
	for i := 0; i < nthreads; i++ {
		size := q
		if i < r {
			size++
		}
		if size == 0 {
			break
		}
		end := start + size
		f(i, start, end)
		start = end
	}
}
