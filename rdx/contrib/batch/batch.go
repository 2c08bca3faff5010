// Copyright 2026 go-radixsort Authors. SPDX-License-Identifier: Apache-2.0

// Package batch sorts many independent slices concurrently on a persistent
// worker pool. Unlike per-call goroutine spawning, a Pool is created once
// and reused across many batch operations, eliminating allocation and spawn
// overhead.
//
// The pool pays off for workloads that re-sort a family of buckets every
// frame or tick (draw calls grouped by material, entities grouped by cell).
// Each slice is sorted by one worker; work stealing keeps workers busy when
// slice sizes are skewed.
//
// Usage:
//
//	pool := batch.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many frames
//	for range frames {
//	    batch.InPlace(pool, buckets, func(e Entity) uint32 { return e.Cell })
//	}
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-radixsort/rdx"
)

// Pool is a persistent worker pool reused across many batch sorts. Workers
// are spawned once at creation and persist until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into contiguous per-worker
// ranges and blocks until all ranges complete. fn receives (start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForEach executes fn for each index in [0, n) with atomic work
// stealing and blocks until all indices complete. Stealing balances the
// load when the work per index varies, which is the normal case for a batch
// of differently sized slices.
func (p *Pool) ParallelForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// InPlace sorts every slice in batches with rdx.SortInPlace, one slice per
// worker. Slices must not overlap. Not stable.
func InPlace[T any, K rdx.Key](p *Pool, batches [][]T, key func(T) K) {
	p.ParallelForEach(len(batches), func(i int) {
		rdx.SortInPlace(batches[i], key)
	})
}

// Stable sorts every slice in batches with rdx.Sort, one slice per worker,
// using the matching scratch slice. scratch[i] must be at least as long as
// batches[i] and the slices must not overlap. The returned slice reports,
// per batch, which buffer holds the result, exactly as rdx.Sort does.
func Stable[T any, K rdx.Key](p *Pool, batches, scratch [][]T, key func(T) K, dest rdx.Destination, mode rdx.Mode) [][]T {
	out := make([][]T, len(batches))
	p.ParallelForEach(len(batches), func(i int) {
		out[i] = rdx.Sort(batches[i], scratch[i], key, dest, mode)
	})
	return out
}
