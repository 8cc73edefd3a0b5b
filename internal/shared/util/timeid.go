package util

import (
	"strconv"
	"sync"
	"time"
)

// TimeID issues identifiers derived from the current unix timestamp.
// Calls landing within the same second receive strictly increasing
// values, so two documents created back to back never share an ID.
type TimeID struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewTimeID returns a generator backed by the wall clock.
func NewTimeID() *TimeID {
	return &TimeID{now: time.Now}
}

// Next returns the next identifier as a decimal string.
func (g *TimeID) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.now().Unix()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}
