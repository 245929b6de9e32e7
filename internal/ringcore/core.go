// File: internal/ringcore/core.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core circular-buffer algorithm over an owned storage region. Cursors are
// monotonically increasing counters; translation to physical offsets happens
// only at the point of memory access. This sidesteps the empty-vs-full
// ambiguity of wrapping index pairs: stored = writePos - readPos, always.
//
// The core carries no owner guard and no locks. Callers layer their own
// access discipline on top (ring.RingBuffer, pipe.Pipe).

package ringcore

import (
	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/internal/storage"
)

// Core is the raw fixed-capacity byte ring.
type Core struct {
	region   *storage.Region
	buf      []byte
	capacity uint64
	readPos  uint64
	writePos uint64
}

// New allocates a core with a fixed capacity. The region is allocated
// eagerly and never resized.
func New(capacity int) (*Core, error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity, api.ErrInvalidCapacity,
			"ring capacity must be positive").WithContext("capacity", capacity)
	}
	region, err := storage.Alloc(capacity)
	if err != nil {
		return nil, api.NewError(api.ErrCodeInvalidCapacity, api.ErrInvalidCapacity,
			"ring storage allocation failed").WithContext("capacity", capacity)
	}
	return &Core{
		region:   region,
		buf:      region.Bytes(),
		capacity: uint64(capacity),
	}, nil
}

// ReadAvailable returns the number of bytes currently stored.
func (c *Core) ReadAvailable() int {
	return int(c.writePos - c.readPos)
}

// WriteAvailable returns the free slots before overwrite begins.
func (c *Core) WriteAvailable() int {
	return int(c.capacity) - c.ReadAvailable()
}

// Cap returns the fixed capacity.
func (c *Core) Cap() int {
	return int(c.capacity)
}

// Released reports whether the storage region has been returned.
func (c *Core) Released() bool {
	return c.region.Released()
}

// views returns the first n unread bytes as at most two contiguous spans.
// The second span is non-nil only when the window straddles the physical
// end of storage. Caller must ensure n <= ReadAvailable().
func (c *Core) views(n int) (first, second []byte) {
	start := int(c.readPos % c.capacity)
	if start+n <= int(c.capacity) {
		return c.buf[start : start+n], nil
	}
	split := int(c.capacity) - start
	return c.buf[start:], c.buf[:n-split]
}

// Peek copies out the first n unread bytes without advancing the read
// cursor. Returns false when fewer than n bytes are stored.
func (c *Core) Peek(n int) ([]byte, bool) {
	if n < 0 || n > c.ReadAvailable() {
		return nil, false
	}
	out := make([]byte, n)
	first, second := c.views(n)
	copy(out, first)
	copy(out[len(first):], second)
	return out, true
}

// Skip discards the first n unread bytes. Storage contents are untouched;
// only the read cursor advances. Returns false when fewer than n bytes
// are stored.
func (c *Core) Skip(n int) bool {
	if n < 0 || n > c.ReadAvailable() {
		return false
	}
	c.readPos += uint64(n)
	return true
}

// Push appends p at the write cursor, wrapping as needed. When p exceeds
// the free space, the read cursor advances first so the oldest bytes are
// overwritten; when p exceeds the whole capacity, only its trailing
// capacity bytes are kept. Push never rejects data.
func (c *Core) Push(p []byte) {
	if uint64(len(p)) > c.capacity {
		p = p[uint64(len(p))-c.capacity:]
	}
	if free := c.WriteAvailable(); len(p) > free {
		c.readPos += uint64(len(p) - free)
	}
	c.copyIn(p)
	c.writePos += uint64(len(p))
}

// WriteBounded appends at most WriteAvailable() bytes of p and returns
// how many were written. Used by compositions that must not drop data.
func (c *Core) WriteBounded(p []byte) int {
	n := min(len(p), c.WriteAvailable())
	if n == 0 {
		return 0
	}
	c.copyIn(p[:n])
	c.writePos += uint64(n)
	return n
}

// ReadInto consumes up to len(dst) stored bytes into dst and returns the
// count. Equivalent to a bounded peek followed by a skip.
func (c *Core) ReadInto(dst []byte) int {
	n := min(len(dst), c.ReadAvailable())
	if n == 0 {
		return 0
	}
	first, second := c.views(n)
	copy(dst, first)
	copy(dst[len(first):], second)
	c.readPos += uint64(n)
	return n
}

// copyIn writes p starting at the physical write offset with a two-chunk
// wraparound copy. Caller must ensure len(p) <= capacity.
func (c *Core) copyIn(p []byte) {
	start := int(c.writePos % c.capacity)
	n := copy(c.buf[start:], p)
	if n < len(p) {
		copy(c.buf, p[n:])
	}
}

// Release returns the storage region. Idempotent.
func (c *Core) Release() error {
	err := c.region.Release()
	c.buf = nil
	return err
}
