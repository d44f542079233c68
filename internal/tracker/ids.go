package tracker

import (
	"strconv"
	"sync"
	"time"
)

// MillisIDs issues entry ids from creation time in Unix milliseconds. Two ids
// requested within the same millisecond are kept distinct by bumping the later one.
type MillisIDs struct {
	mu   sync.Mutex
	last int64
}

func (g *MillisIDs) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
