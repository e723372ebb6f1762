// Package ratelimit implements a per-client sliding-window request counter.
//
// The window keeps an ordered slice of request timestamps per key and evicts
// entries lazily on each check, so an idle client costs nothing until it
// comes back. Keys (typically client network addresses) are independent of
// each other; a single mutex serializes access to the shared map.
package ratelimit

import (
	"sync"
	"time"
)

// Window counts requests per key inside a trailing time window.
type Window struct {
	mu      sync.Mutex
	limit   int
	span    time.Duration
	entries map[string][]time.Time
}

// NewWindow creates a limiter that allows at most limit requests per key
// within the trailing span.
func NewWindow(limit int, span time.Duration) *Window {
	return &Window{
		limit:   limit,
		span:    span,
		entries: make(map[string][]time.Time),
	}
}

// Limit returns the maximum number of requests allowed per window.
func (w *Window) Limit() int { return w.limit }

// Span returns the window duration.
func (w *Window) Span() time.Duration { return w.span }

// Allow reports whether a request for key at time now is within the quota.
// Timestamps older than the window are discarded first. A denied request is
// not recorded, so hammering a full window does not extend the lockout.
func (w *Window) Allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-w.span)
	recent := w.entries[key]

	// Entries are appended in order, so find the first still-live timestamp
	// and drop everything before it.
	start := 0
	for start < len(recent) && !recent[start].After(cutoff) {
		start++
	}
	recent = recent[start:]

	if len(recent) >= w.limit {
		w.entries[key] = recent
		return false
	}

	w.entries[key] = append(recent, now)
	return true
}

// Reset forgets all recorded requests for the given key.
func (w *Window) Reset(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entries, key)
}
