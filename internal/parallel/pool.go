package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// chunk is one contiguous index range [lo, hi) of a Run call.
type chunk struct {
	lo, hi int
	fn     func(lo, hi int)
	wg     *sync.WaitGroup
}

func (c chunk) run() {
	defer c.wg.Done()
	c.fn(c.lo, c.hi)
}

// WorkerPool is a fixed set of goroutines that process index ranges.
//
// Each worker has its own queue. A worker whose queue is empty steals from
// the others, which balances grids where some cells cost much more than
// others (fully covered blocks next to empty ones).
//
// Thread safety: Run may be called from several goroutines at once. Close
// must not race with Run.
type WorkerPool struct {
	workers    int
	workQueues []chan chunk
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan chunk, workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan chunk, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case c := <-own:
			c.run()
		default:
			if c, ok := p.steal(id); ok {
				c.run()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case c := <-own:
				c.run()
			}
		}
	}
}

func (p *WorkerPool) drainQueue(queue chan chunk) {
	for {
		select {
		case c := <-queue:
			c.run()
		default:
			return
		}
	}
}

// steal takes one chunk from another worker's queue.
func (p *WorkerPool) steal(self int) (chunk, bool) {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case c := <-p.workQueues[i]:
			return c, true
		default:
		}
	}
	return chunk{}, false
}

// Run calls fn over [0, n) split into ranges of at most grain indices and
// returns when every range has been processed. Ranges are disjoint and
// cover [0, n) exactly once; their execution order is unspecified.
//
// A grain of 0 or less picks a size that gives each worker a few ranges.
// After Close, Run processes the ranges on the calling goroutine.
func (p *WorkerPool) Run(n, grain int, fn func(lo, hi int)) {
	if n <= 0 || fn == nil {
		return
	}
	if grain <= 0 {
		grain = max(n/(p.workers*4), 1)
	}

	if !p.running.Load() {
		for lo := 0; lo < n; lo += grain {
			fn(lo, min(lo+grain, n))
		}
		return
	}

	var wg sync.WaitGroup
	k := 0
	for lo := 0; lo < n; lo += grain {
		c := chunk{lo: lo, hi: min(lo+grain, n), fn: fn, wg: &wg}
		wg.Add(1)
		select {
		case p.workQueues[k%p.workers] <- c:
		case <-p.done:
			c.run()
		}
		k++
	}
	wg.Wait()
}

// Close stops the workers after the queued work has finished.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// QueuedWork returns the approximate number of queued ranges.
func (p *WorkerPool) QueuedWork() int {
	total := 0
	for _, q := range p.workQueues {
		total += len(q)
	}
	return total
}
