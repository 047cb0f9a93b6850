package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockInfiniteTimeNeverLatches(t *testing.T) {
	c := newClock()
	c.start(time.Now().Add(-time.Hour), true)
	for i := 0; i < pollInterval*2; i++ {
		assert.False(t, c.poll())
	}
}

func TestClockLatchesOncePastStopTime(t *testing.T) {
	c := newClock()
	c.start(time.Now().Add(-time.Second), false)
	var over bool
	for i := 0; i < pollInterval; i++ {
		over = c.poll()
	}
	assert.True(t, over)
}

func TestClockExternalStopLatchesImmediately(t *testing.T) {
	c := newClock()
	c.start(time.Now().Add(time.Hour), false)
	assert.False(t, c.poll())
	c.stop()
	assert.True(t, c.poll())
}

func TestClockElapsedIsMonotonic(t *testing.T) {
	c := newClock()
	c.start(time.Now().Add(time.Hour), false)
	time.Sleep(time.Millisecond)
	assert.Greater(t, c.elapsed(), time.Duration(0))
}
