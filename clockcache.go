package prism

import (
	"sync"
	"time"
)

// Layouts rendered by the built-in #d and #t specifiers.
const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04:05"
)

// clockCache memoizes one formatted timestamp per wall-clock second. Both
// layouts have whole-second resolution, so reformatting within the same
// second is wasted work on a hot logging path.
type clockCache struct {
	layout string

	mu   sync.Mutex
	unix int64
	text string
}

func (c *clockCache) current(now time.Time) string {
	sec := now.Unix()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.text == "" || c.unix != sec {
		c.unix = sec
		c.text = now.Format(c.layout)
	}
	return c.text
}

var (
	dateCache = &clockCache{layout: dateLayout}
	timeCache = &clockCache{layout: timeLayout}
)
