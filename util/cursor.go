package util

import "sync/atomic"

// WorkCursor hands out job indices 0..total-1 to any number of workers.
// Every index is claimed exactly once, claims are strictly increasing, and
// the counter never moves past total.
type WorkCursor struct {
	next  atomic.Int64
	total int64
}

func NewWorkCursor(total int) *WorkCursor {
	if total < 0 {
		total = 0
	}
	return &WorkCursor{total: int64(total)}
}

// Claim returns the next unclaimed index. ok is false once every index has
// been handed out.
func (c *WorkCursor) Claim() (index int, ok bool) {
	for {
		n := c.next.Load()
		if n >= c.total {
			return 0, false
		}
		if c.next.CompareAndSwap(n, n+1) {
			return int(n), true
		}
	}
}

// Claimed returns how many indices have been handed out so far.
func (c *WorkCursor) Claimed() int {
	return int(c.next.Load())
}

func (c *WorkCursor) Total() int {
	return int(c.total)
}
