package prism

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockCacheFormats(t *testing.T) {
	now := time.Date(2024, time.May, 9, 21, 30, 15, 0, time.Local)

	c := &clockCache{layout: dateLayout}
	assert.Equal(t, "09/05/2024", c.current(now))

	c = &clockCache{layout: timeLayout}
	assert.Equal(t, "21:30:15", c.current(now))
}

func TestClockCacheMemoizesPerSecond(t *testing.T) {
	now := time.Date(2024, time.May, 9, 21, 30, 15, 0, time.Local)
	c := &clockCache{layout: timeLayout}

	first := c.current(now)
	// A later instant within the same second serves the cached string.
	assert.Equal(t, first, c.current(now.Add(900*time.Millisecond)))
	// Crossing the second boundary reformats.
	assert.Equal(t, "21:30:16", c.current(now.Add(time.Second)))
}
