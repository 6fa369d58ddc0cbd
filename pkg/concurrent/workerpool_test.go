// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRun(t *testing.T) {
	ctx := context.Background()

	t.Run("runs every function", func(t *testing.T) {
		pool := NewWorkerPool(2)

		var total int64
		err := pool.Run(ctx,
			func() error { atomic.AddInt64(&total, 1); return nil },
			func() error { atomic.AddInt64(&total, 2); return nil },
			func() error { atomic.AddInt64(&total, 3); return nil },
		)

		require.NoError(t, err)
		assert.Equal(t, int64(6), atomic.LoadInt64(&total))
	})

	t.Run("returns the first error", func(t *testing.T) {
		pool := NewWorkerPool(1)
		boom := errors.New("dispatch failed")

		err := pool.Run(ctx,
			func() error { return boom },
			func() error { return errors.New("later failure") },
		)

		assert.Equal(t, boom, err)
	})

	t.Run("no functions is a no-op", func(t *testing.T) {
		assert.NoError(t, NewWorkerPool(2).Run(ctx))
	})

	t.Run("cancelled context stops work", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var ran atomic.Bool
		err := NewWorkerPool(2).Run(cancelled, func() error {
			ran.Store(true)
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran.Load())
	})
}

func TestWorkerPoolRunAll(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps going past failures", func(t *testing.T) {
		pool := NewWorkerPool(2)
		first := errors.New("first failed")
		third := errors.New("third failed")

		var ran int64
		errs := pool.RunAll(ctx,
			func() error { atomic.AddInt64(&ran, 1); return first },
			func() error { atomic.AddInt64(&ran, 1); return nil },
			func() error { atomic.AddInt64(&ran, 1); return third },
		)

		assert.Equal(t, int64(3), atomic.LoadInt64(&ran))
		require.Len(t, errs, 2)
		assert.Contains(t, errs, first)
		assert.Contains(t, errs, third)
	})

	t.Run("no functions returns nil", func(t *testing.T) {
		assert.Nil(t, NewWorkerPool(2).RunAll(ctx))
	})

	t.Run("cancelled context reports per task", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		errs := NewWorkerPool(2).RunAll(cancelled, func() error { return nil })
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], context.Canceled)
	})
}

func TestNewWorkerPoolClampsWorkerCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		pool := NewWorkerPool(count)
		require.NotNil(t, pool)
		assert.Equal(t, 1, pool.workerCount)
	}
}
