package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time {
	return c.at
}

func newTestLimiter(maxReqs, windowSecs int) (*localLimiter, *fakeClock) {
	clock := &fakeClock{at: time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)}

	limiter := newLocalLimiter(maxReqs, windowSecs)
	limiter.now = clock.now

	return limiter, clock
}

func TestLocalLimiter_DropsIdleClients(t *testing.T) {
	limiter, clock := newTestLimiter(2, 60)

	for i := range 50 {
		assert.True(t, limiter.allow(fmt.Sprintf("client-%d", i)))
	}

	assert.Len(t, limiter.buckets, 50)

	clock.at = clock.at.Add(30 * time.Second)
	assert.True(t, limiter.allow("client-0"))
	assert.Len(t, limiter.buckets, 50)

	clock.at = clock.at.Add(45 * time.Second)
	assert.True(t, limiter.allow("late"))

	assert.Len(t, limiter.buckets, 2)
	assert.Contains(t, limiter.buckets, "client-0")
	assert.Contains(t, limiter.buckets, "late")
}

func TestLocalLimiter_BoundedByCapacity(t *testing.T) {
	limiter, clock := newTestLimiter(1, 60)
	limiter.capacity = 3

	for _, key := range []string{"a", "b", "c"} {
		assert.True(t, limiter.allow(key))
		clock.at = clock.at.Add(time.Second)
	}

	assert.True(t, limiter.allow("d"))
	assert.Len(t, limiter.buckets, 3)
	assert.NotContains(t, limiter.buckets, "a")

	assert.False(t, limiter.allow("b"))
}

func TestLocalLimiter_SweepKeepsDecisions(t *testing.T) {
	limiter, clock := newTestLimiter(2, 60)

	assert.True(t, limiter.allow("client"))
	assert.True(t, limiter.allow("client"))
	assert.False(t, limiter.allow("client"))

	clock.at = clock.at.Add(61 * time.Second)

	assert.True(t, limiter.allow("client"))
	assert.True(t, limiter.allow("client"))
	assert.False(t, limiter.allow("client"))
}
