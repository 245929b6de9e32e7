// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/momentics/bytering/affinity"
	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/internal/ringcore"
)

// Ensure compile-time interface compliance.
var _ api.Ring = (*RingBuffer)(nil)

// RingBuffer is a fixed-capacity circular byte buffer owned by the
// goroutine that created it. It is not internally synchronized: every
// operation validates the caller against the owner and fails with
// api.ErrWrongOwner from anywhere else, mutating nothing. For
// cross-goroutine use, compose externally (see the pipe package).
//
// Push never blocks and never rejects data. When a push exceeds the free
// space, the oldest stored bytes are overwritten to make room; producers
// that outrun consumers lose data instead of stalling. Callers that need
// lossless delivery must drain fast enough or size the capacity for the
// worst burst.
type RingBuffer struct {
	core  *ringcore.Core
	owner uint64
}

// New creates a ring buffer with a fixed capacity. The storage region is
// allocated eagerly and never resized. The calling goroutine becomes the
// exclusive owner. Fails with api.ErrInvalidCapacity when capacity is not
// positive or the region cannot be allocated.
func New(capacity int) (*RingBuffer, error) {
	core, err := ringcore.New(capacity)
	if err != nil {
		return nil, err
	}
	return &RingBuffer{core: core, owner: affinity.Current()}, nil
}

// checkOwner validates the calling goroutine against the owner.
func (r *RingBuffer) checkOwner() error {
	if gid := affinity.Current(); gid != r.owner {
		return api.NewError(api.ErrCodeWrongOwner, api.ErrWrongOwner,
			"ring is not safe for cross-goroutine use").
			WithContext("owner", r.owner).
			WithContext("caller", gid)
	}
	return nil
}

// guard validates the calling goroutine and the ring lifecycle.
// Owner check runs first, so foreign callers always see ErrWrongOwner.
func (r *RingBuffer) guard() error {
	if err := r.checkOwner(); err != nil {
		return err
	}
	if r.core.Released() {
		return api.NewError(api.ErrCodeReleased, api.ErrRingReleased,
			"ring storage already released")
	}
	return nil
}

// ReadAvailable returns the number of bytes currently stored.
func (r *RingBuffer) ReadAvailable() (int, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	return r.core.ReadAvailable(), nil
}

// WriteAvailable returns the number of bytes that fit before overwrite
// begins.
func (r *RingBuffer) WriteAvailable() (int, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	return r.core.WriteAvailable(), nil
}

// Cap returns the fixed capacity.
func (r *RingBuffer) Cap() int {
	return r.core.Cap()
}

// Peek returns the first n unread bytes in FIFO order without consuming
// them, assembling across the wraparound seam when the window straddles
// the physical end of storage. Fails with api.ErrInsufficientData when n
// exceeds ReadAvailable; the ring is left untouched.
func (r *RingBuffer) Peek(n int) ([]byte, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	out, ok := r.core.Peek(n)
	if !ok {
		return nil, api.NewError(api.ErrCodeInsufficientData, api.ErrInsufficientData,
			"peek past stored data").
			WithContext("requested", n).
			WithContext("available", r.core.ReadAvailable())
	}
	return out, nil
}

// Skip discards the first n unread bytes without copying them out. Only
// the read cursor moves. Fails with api.ErrInsufficientData when n
// exceeds ReadAvailable; the ring is left untouched.
func (r *RingBuffer) Skip(n int) error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.core.Skip(n) {
		return api.NewError(api.ErrCodeInsufficientData, api.ErrInsufficientData,
			"skip past stored data").
			WithContext("requested", n).
			WithContext("available", r.core.ReadAvailable())
	}
	return nil
}

// Push appends p at the write cursor. Overflow is not an error: the
// oldest stored bytes are overwritten so that afterwards
// ReadAvailable == min(Cap, previous+len(p)), and when len(p) > Cap only
// the trailing Cap bytes of p are kept. The only failures are ownership
// and lifecycle violations.
func (r *RingBuffer) Push(p []byte) error {
	if err := r.guard(); err != nil {
		return err
	}
	r.core.Push(p)
	return nil
}

// Release returns the storage region to the OS or heap. Idempotent: the
// second and later calls are no-ops. Every other operation fails with
// api.ErrRingReleased afterwards. Defer this at the owner's scope exit.
func (r *RingBuffer) Release() error {
	if err := r.checkOwner(); err != nil {
		return err
	}
	return r.core.Release()
}
