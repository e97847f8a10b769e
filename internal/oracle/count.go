package oracle

import "sync/atomic"

// Count tracks how many protocol lines a loop has processed. It is
// safe for concurrent use so a harness embedding the loop can poll it
// while the loop runs.
type Count struct {
	n atomic.Uint64
}

func (c *Count) add() {
	c.n.Add(1)
}

// Value returns the number of lines processed so far.
func (c *Count) Value() uint64 {
	return c.n.Load()
}

// Reset sets the counter back to zero.
func (c *Count) Reset() {
	c.n.Store(0)
}
