//go:build linux
// +build linux

// File: internal/storage/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// On Linux, regions are backed by anonymous private mappings so release
// returns the pages to the OS immediately. Falls back to the Go heap if
// the mapping fails.

package storage

import "golang.org/x/sys/unix"

// allocPlatform maps a region of exactly size bytes.
func allocPlatform(size int) *Region {
	mapped, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return &Region{data: make([]byte, size)}
	}
	return &Region{data: mapped[:size], mapped: mapped}
}

// releasePlatform unmaps an OS-backed region.
func releasePlatform(mapped []byte) error {
	return unix.Munmap(mapped)
}
