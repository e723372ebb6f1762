package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vastberg/user-api/internal/ratelimit"
)

func TestWindow_AllowWithinQuota(t *testing.T) {
	t.Parallel()

	w := ratelimit.NewWindow(10, time.Minute)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		assert.True(t, w.Allow("10.0.0.1", base.Add(time.Duration(i)*time.Second)),
			"request %d should be within quota", i+1)
	}

	assert.False(t, w.Allow("10.0.0.1", base.Add(11*time.Second)),
		"11th request inside the window must be denied")
}

func TestWindow_SlidesForward(t *testing.T) {
	t.Parallel()

	w := ratelimit.NewWindow(10, time.Minute)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		assert.True(t, w.Allow("c", base.Add(time.Duration(i)*time.Second)))
	}
	assert.False(t, w.Allow("c", base.Add(30*time.Second)))

	// Once the first recorded timestamp leaves the trailing window, a slot
	// frees up.
	assert.True(t, w.Allow("c", base.Add(61*time.Second)))

	// After the whole window has elapsed, everything is evicted.
	later := base.Add(3 * time.Minute)
	for i := 0; i < 10; i++ {
		assert.True(t, w.Allow("c", later.Add(time.Duration(i)*time.Second)),
			"request %d after the window elapsed should pass", i+1)
	}
}

func TestWindow_DeniedRequestsAreNotRecorded(t *testing.T) {
	t.Parallel()

	w := ratelimit.NewWindow(2, time.Minute)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.True(t, w.Allow("c", base))
	assert.True(t, w.Allow("c", base.Add(time.Second)))

	// Hammering a full window must not extend the lockout.
	for i := 0; i < 100; i++ {
		assert.False(t, w.Allow("c", base.Add(30*time.Second)))
	}

	// The original two requests age out on schedule.
	assert.True(t, w.Allow("c", base.Add(62*time.Second)))
}

func TestWindow_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	w := ratelimit.NewWindow(1, time.Minute)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.True(t, w.Allow("10.0.0.1", now))
	assert.False(t, w.Allow("10.0.0.1", now))
	assert.True(t, w.Allow("10.0.0.2", now), "a full window for one client must not affect another")
}

func TestWindow_Reset(t *testing.T) {
	t.Parallel()

	w := ratelimit.NewWindow(1, time.Minute)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.True(t, w.Allow("c", now))
	assert.False(t, w.Allow("c", now))

	w.Reset("c")
	assert.True(t, w.Allow("c", now))
}
