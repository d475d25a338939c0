package iflr

// FrameCounter hands out the 1-based, strictly increasing frame_number
// values a Frame's successive Frame Data rows require (spec §4.4).
type FrameCounter struct {
	next uint32
}

// NewFrameCounter creates a counter whose first Next() returns 1.
func NewFrameCounter() *FrameCounter {
	return &FrameCounter{next: 1}
}

// Next returns the next frame_number and advances the counter.
func (c *FrameCounter) Next() uint32 {
	n := c.next
	c.next++
	return n
}
