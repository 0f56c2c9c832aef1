package loader

import (
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/lexdb/internal/lexicon/index"
)

// Once runs a Loader at most once and hands out the same index and report
// to every caller.
type Once struct {
	loader *Loader

	done   atomic.Bool
	mu     sync.Mutex
	idx    *index.Index
	report Report
}

// NewOnce wraps l.
func NewOnce(l *Loader) *Once {
	return &Once{loader: l}
}

// Get returns the loaded index, loading it on the first call. Concurrent
// first calls block until the single load completes.
func (o *Once) Get() (*index.Index, Report) {
	if o.done.Load() {
		return o.idx, o.report
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.done.Load() {
		o.idx, o.report = o.loader.Load()
		o.done.Store(true)
	}
	return o.idx, o.report
}

// Loaded reports whether the load has completed.
func (o *Once) Loaded() bool {
	return o.done.Load()
}

// Report returns the load report without triggering a load. ok is false
// until the load has completed.
func (o *Once) Report() (rep Report, ok bool) {
	if !o.done.Load() {
		return Report{}, false
	}
	return o.report, true
}
