// File: internal/storage/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owned contiguous storage regions for ring buffers. A region is allocated
// once, never reallocated, and released exactly once. Platform-specific
// allocators live in region_linux.go and region_stub.go behind build tags.

package storage

import "github.com/pkg/errors"

// Region is a fixed-size contiguous byte region with deterministic release.
type Region struct {
	data     []byte
	mapped   []byte // full mmap slice when OS-backed, nil for heap regions
	released bool
}

// Alloc reserves a region of exactly size bytes.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, errors.Errorf("storage: non-positive region size %d", size)
	}
	return allocPlatform(size), nil
}

// Bytes returns the region's backing slice. Nil after Release.
func (r *Region) Bytes() []byte {
	return r.data
}

// Released reports whether the region has been returned already.
func (r *Region) Released() bool {
	return r.released
}

// Release returns the region to the OS or the heap. Safe to call more
// than once; only the first call unmaps.
func (r *Region) Release() error {
	if r.released {
		return nil
	}
	r.released = true
	r.data = nil
	if r.mapped == nil {
		return nil
	}
	mapped := r.mapped
	r.mapped = nil
	if err := releasePlatform(mapped); err != nil {
		return errors.Wrap(err, "storage: release region")
	}
	return nil
}
