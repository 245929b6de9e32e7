// File: pipe/pipe.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package pipe composes the ring core into a cross-goroutine byte pipe.
// It is the supported answer to "I want one producer goroutine and one
// consumer goroutine": a ring behind a mutex and a condition variable per
// side, with io.Pipe-style close propagation. Unlike ring.RingBuffer, the
// pipe is lossless — writers block when the buffer is full instead of
// overwriting.
package pipe

import (
	"io"
	"sync"

	"github.com/momentics/bytering/internal/ringcore"
)

var (
	_ io.ReadCloser  = (*Reader)(nil)
	_ io.WriteCloser = (*Writer)(nil)
)

type pipe struct {
	mu         sync.Mutex
	readerWait sync.Cond
	writerWait sync.Cond

	core *ringcore.Core

	readerClosed bool
	writerClosed bool
	readErr      error // overrides io.EOF after CloseWithError on the writer
	writeErr     error // overrides io.ErrClosedPipe after CloseWithError on the reader
}

// New creates a pipe cushioned by a ring of the given capacity and returns
// its two halves. Capacity must be positive.
func New(capacity int) (*Reader, *Writer, error) {
	core, err := ringcore.New(capacity)
	if err != nil {
		return nil, nil, err
	}
	p := &pipe{core: core}
	p.readerWait.L = &p.mu
	p.writerWait.L = &p.mu
	return &Reader{p}, &Writer{p}, nil
}

func (p *pipe) read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if p.readerClosed {
			return 0, io.ErrClosedPipe
		}
		if p.core.ReadAvailable() > 0 {
			break
		}
		if p.writerClosed {
			if p.readErr != nil {
				return 0, p.readErr
			}
			return 0, io.EOF
		}
		p.readerWait.Wait()
	}
	wasFull := p.core.WriteAvailable() == 0
	n := p.core.ReadInto(b)
	if wasFull {
		p.writerWait.Signal()
	}
	return n, nil
}

func (p *pipe) write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var total int
	for {
		if p.writerClosed {
			return total, io.ErrClosedPipe
		}
		if p.readerClosed {
			if p.writeErr != nil {
				return total, p.writeErr
			}
			return total, io.ErrClosedPipe
		}
		wasEmpty := p.core.ReadAvailable() == 0
		n := p.core.WriteBounded(b)
		b = b[n:]
		total += n
		if wasEmpty && n > 0 {
			p.readerWait.Signal()
		}
		if len(b) == 0 {
			return total, nil
		}
		p.writerWait.Wait()
	}
}

// closeLocked marks one side closed and releases the ring storage once
// both sides are done. Broadcasts so blocked peers observe the close.
func (p *pipe) closeLocked() {
	p.readerWait.Broadcast()
	p.writerWait.Broadcast()
	if p.readerClosed && p.writerClosed {
		// Both halves are gone; nothing can touch the core anymore.
		_ = p.core.Release()
	}
}

// Reader is the consuming half of a pipe.
type Reader struct {
	p *pipe
}

// Read implements io.Reader. It blocks until data arrives, the writer
// closes (io.EOF), or the reader itself is closed.
func (r *Reader) Read(b []byte) (int, error) {
	return r.p.read(b)
}

// Close closes the consuming half. Blocked and future writes fail with
// io.ErrClosedPipe.
func (r *Reader) Close() error {
	return r.CloseWithError(nil)
}

// CloseWithError closes the consuming half; err replaces io.ErrClosedPipe
// as the failure future writes observe.
func (r *Reader) CloseWithError(err error) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	if r.p.readerClosed {
		return nil
	}
	r.p.readerClosed = true
	r.p.writeErr = err
	r.p.closeLocked()
	return nil
}

// Writer is the producing half of a pipe.
type Writer struct {
	p *pipe
}

// Write implements io.Writer. It blocks while the ring is full and the
// reader is still draining.
func (w *Writer) Write(b []byte) (int, error) {
	return w.p.write(b)
}

// Close closes the producing half. The reader drains buffered bytes and
// then sees io.EOF.
func (w *Writer) Close() error {
	return w.CloseWithError(nil)
}

// CloseWithError closes the producing half; err replaces io.EOF as the
// result future reads observe once the buffer drains.
func (w *Writer) CloseWithError(err error) error {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	if w.p.writerClosed {
		return nil
	}
	w.p.writerClosed = true
	w.p.readErr = err
	w.p.closeLocked()
	return nil
}
