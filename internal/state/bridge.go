package state

import (
	"log"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a rotation drag is saved.
const DefaultDebounce = 500 * time.Millisecond

// SaveFunc receives every emitted snapshot. It runs on the bridge worker,
// never on the caller's goroutine, and must not call back into the bridge.
type SaveFunc func(Snapshot)

type bridgeJob struct {
	snap    Snapshot
	flushed chan struct{}
}

// Bridge hands snapshots to the save collaborator in emission order. It also
// owns the single debounced emission used while a rotation drag is running.
type Bridge struct {
	save  SaveFunc
	delay time.Duration
	jobs  chan bridgeJob
	done  chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

func NewBridge(save SaveFunc, delay time.Duration) *Bridge {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	b := &Bridge{
		save:  save,
		delay: delay,
		jobs:  make(chan bridgeJob, 64),
		done:  make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Bridge) run() {
	defer close(b.done)
	for job := range b.jobs {
		if job.flushed != nil {
			close(job.flushed)
			continue
		}
		if b.save != nil {
			b.save(job.snap)
		}
	}
}

// Emit queues a snapshot for the save collaborator. It is a no-op after Close.
func (b *Bridge) Emit(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.jobs <- bridgeJob{snap: s}
}

// Schedule (re)arms the debounce timer. When it fires, snapshot is called to
// capture the state at that moment and the result is emitted.
func (b *Bridge) Schedule(snapshot func() Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.stopLocked()
	gen := b.gen
	b.timer = time.AfterFunc(b.delay, func() { b.fire(gen, snapshot) })
}

func (b *Bridge) fire(gen uint64, snapshot func() Snapshot) {
	b.mu.Lock()
	if b.closed || b.gen != gen {
		b.mu.Unlock()
		return
	}
	b.timer = nil
	b.mu.Unlock()

	s := snapshot()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.gen != gen {
		return
	}
	b.jobs <- bridgeJob{snap: s}
}

// Cancel drops a pending debounced emission, if any.
func (b *Bridge) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *Bridge) stopLocked() {
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Pending reports whether a debounced emission is armed.
func (b *Bridge) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.timer != nil
}

// Flush blocks until every snapshot emitted so far has been delivered.
func (b *Bridge) Flush() {
	ch := make(chan struct{})
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.jobs <- bridgeJob{flushed: ch}
	b.mu.Unlock()
	<-ch
}

// Close cancels any pending debounce, delivers what is already queued and
// stops the worker. Nothing is emitted afterwards.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.stopLocked()
	close(b.jobs)
	b.mu.Unlock()
	<-b.done
	log.Println("[BRIDGE] Closed")
}
