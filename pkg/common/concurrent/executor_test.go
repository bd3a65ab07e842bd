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
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/matrixorigin/motype/pkg/common/moerr"
)

type span struct {
	start, end int
}

func collectRanges(nitems, nthreads, minItems int) []span {
	var spans []span
	forEachRange(nitems, nthreads, minItems, func(thread_id, start, end int) {
		spans = append(spans, span{start, end})
	})
	return spans
}

func TestForEachRange(t *testing.T) {
	require.Nil(t, collectRanges(0, 4, 1))
	require.Equal(t, []span{{0, 3}, {3, 6}, {6, 8}, {8, 10}}, collectRanges(10, 4, 1))
	require.Equal(t, []span{{0, 1}, {1, 2}}, collectRanges(2, 8, 1))
	require.Equal(t, []span{{0, 5}, {5, 10}}, collectRanges(10, 8, 4))
	require.Equal(t, []span{{0, 3}}, collectRanges(3, 8, 4096))
}

func testExecutorCoversAll(t *testing.T, exec Executor) {
	const nitems = 10007
	seen := make([]int32, nitems)
	var calls int32
	err := exec.Execute(context.Background(), nitems, func(ctx context.Context, thread_id, start, end int) error {
		assert.True(t, thread_id >= 0 && thread_id < exec.Parallelism())
		atomic.AddInt32(&calls, 1)
		for i := start; i < end; i++ {
			seen[i]++
		}
		return nil
	})
	require.NoError(t, err)
	require.True(t, int(calls) <= exec.Parallelism())
	for i, c := range seen {
		require.Equal(t, int32(1), c, "item %d", i)
	}
}

func TestThreadPoolExecutor(t *testing.T) {
	exec := NewThreadPoolExecutor(4)
	require.Equal(t, 4, exec.Parallelism())
	testExecutorCoversAll(t, exec)

	boom := errors.New("boom")
	err := exec.Execute(context.Background(), 100, func(ctx context.Context, thread_id, start, end int) error {
		if thread_id == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestThreadPoolExecutorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewThreadPoolExecutor(2).Execute(ctx, 100, func(ctx context.Context, thread_id, start, end int) error {
		t.Errorf("range %d-%d ran after cancel", start, end)
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPoolExecutor(t *testing.T) {
	exec, err := NewPoolExecutor(3, WithMinItemsPerThread(16))
	require.NoError(t, err)
	defer exec.Release()
	require.Equal(t, 3, exec.Parallelism())
	testExecutorCoversAll(t, exec)

	err = exec.Execute(context.Background(), 90, func(ctx context.Context, thread_id, start, end int) error {
		if thread_id == 0 {
			panic("range panic")
		}
		return moerr.NewInternalErrorNoCtx("range %d failed", thread_id)
	})
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	for _, e := range errs {
		require.True(t, moerr.IsMoErrCode(e, moerr.ErrInternal))
	}
}

func TestPoolExecutorRelease(t *testing.T) {
	exec, err := NewPoolExecutor(2)
	require.NoError(t, err)
	exec.Release()

	err = exec.Execute(context.Background(), 10, func(ctx context.Context, thread_id, start, end int) error {
		t.Errorf("range %d-%d ran on a released pool", start, end)
		return nil
	})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal), "got %v", err)
}
