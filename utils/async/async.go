// Package async holds the small concurrency helpers shared by the
// stateful controllers: a generation guard so racing fetches apply
// latest-wins, and a resettable debouncer for keystroke-driven input.
package async

import (
	"sync"
	"sync/atomic"
	"time"
)

// LatestGuard tags each outgoing request with a monotonically
// increasing generation. A response is applied only if no newer
// request has been issued since, so a slow stale fetch can never
// overwrite a fresher result.
type LatestGuard struct {
	seq atomic.Uint64
}

// Next issues a new generation, superseding all previous ones.
func (g *LatestGuard) Next() uint64 {
	return g.seq.Add(1)
}

// Latest reports whether gen is still the newest issued generation.
func (g *LatestGuard) Latest(gen uint64) bool {
	return g.seq.Load() == gen
}

// Debouncer coalesces bursts of triggers into one callback fired after
// the input has been quiet for the configured window. Each trigger
// restarts the window.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn after the quiet window, cancelling any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
