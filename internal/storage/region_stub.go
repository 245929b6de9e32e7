//go:build !linux
// +build !linux

// File: internal/storage/region_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed regions for platforms without an mmap allocator.

package storage

// allocPlatform allocates a heap region of exactly size bytes.
func allocPlatform(size int) *Region {
	return &Region{data: make([]byte, size)}
}

// releasePlatform is a no-op for heap regions; the GC reclaims them.
func releasePlatform(_ []byte) error {
	return nil
}
