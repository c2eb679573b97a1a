// Package worker provides a worker pool for parallel PGN file loading.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// WorkItem is one PGN file to be loaded.
type WorkItem struct {
	Path  string
	Index int // Original index for tracking
}

// LoadResult is the outcome of loading one PGN file.
type LoadResult struct {
	Path  string
	Index int
	Games []*chess.GameRecord
	Error error
}

// LoadFunc is the function signature for loading a work item.
type LoadFunc func(item WorkItem) LoadResult

// Pool manages a pool of workers for parallel file loading.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan LoadResult
	loadFunc   LoadFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. loadFunc is required; other settings
// default to 1 worker and a buffer of 10.
func NewPool(loadFunc LoadFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		loadFunc:   loadFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan LoadResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker loads items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.loadFunc(item)
	}
}

// Submit submits a work item for loading.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already queued are drained but not loaded.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading loaded files.
func (p *Pool) Results() <-chan LoadResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
