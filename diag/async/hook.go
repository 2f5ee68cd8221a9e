// Package asyncdiag wraps a diag.Hooks so that decode paths never block
// on whatever I/O the inner hooks do (shipping to a metrics backend,
// writing a log line). Events are queued to a bounded channel and
// dropped on backpressure rather than stalling the decoder.
//
// usage:
//
//	raw := slogdiag.New(slog.Default(), slogdiag.Options{LimitExceededEvery: 10})
//	hooks := asyncdiag.New(raw, 1, 1000) // 1 worker, 1000-event queue
//	defer hooks.Close()
package asyncdiag

import (
	"sync"

	"github.com/Chainscore/tsrkit-types/diag"
)

type Hooks struct {
	inner diag.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ diag.Hooks = (*Hooks)(nil)

// New starts `workers` goroutines draining a queue of length `qlen`.
func New(inner diag.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers; safe to call once.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop on backpressure
	}
}

func (h *Hooks) LimitExceeded(kind string, offset, declared, limit int) {
	h.try(func() { h.inner.LimitExceeded(kind, offset, declared, limit) })
}
func (h *Hooks) InvalidKeyOrder(offset, index int) {
	h.try(func() { h.inner.InvalidKeyOrder(offset, index) })
}
func (h *Hooks) InvalidVariant(offset int, discriminant uint64) {
	h.try(func() { h.inner.InvalidVariant(offset, discriminant) })
}
func (h *Hooks) DecodeRejected(kind string, offset int, err error) {
	h.try(func() { h.inner.DecodeRejected(kind, offset, err) })
}
