// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract for the single-owner fixed-capacity byte ring.

package api

// Ring is a fixed-capacity circular byte buffer owned by exactly one
// goroutine. Push never rejects data: when the buffer is full it
// overwrites the oldest stored bytes.
type Ring interface {
	// ReadAvailable returns the number of bytes currently stored.
	ReadAvailable() (int, error)
	// WriteAvailable returns the number of free slots before overwrite begins.
	WriteAvailable() (int, error)
	// Peek returns the first n unread bytes in FIFO order without consuming them.
	Peek(n int) ([]byte, error)
	// Skip discards the first n unread bytes.
	Skip(n int) error
	// Push appends p, overwriting the oldest bytes on overflow.
	Push(p []byte) error
	// Cap returns the fixed capacity.
	Cap() int
	// Release returns the storage region; the ring is unusable afterwards.
	Release() error
}
