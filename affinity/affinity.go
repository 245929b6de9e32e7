// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owner-identity and thread-affinity helpers. The unit of execution that
// owns a ring is the goroutine; Current captures its ID for the per-call
// ownership check. Platform-specific CPU pinning lives in
// affinity_linux.go and affinity_stub.go behind build tags.

package affinity

import (
	"bytes"
	"runtime"
	"strconv"
)

var stackPrefix = []byte("goroutine ")

// Current returns the ID of the calling goroutine.
//
// The runtime does not expose goroutine IDs, so this parses the header of
// a single-frame stack capture ("goroutine N [running]:"). The cost is one
// bounded stack dump per call; acceptable for a defensive ownership check,
// not for hot-path accounting.
func Current() uint64 {
	var buf [64]byte
	header := buf[:runtime.Stack(buf[:], false)]
	header = bytes.TrimPrefix(header, stackPrefix)
	end := bytes.IndexByte(header, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Pin locks the calling goroutine to its current OS thread and binds that
// thread to the given logical CPU on supported platforms. Owners that need
// true thread affinity call this once before creating their rings.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}

// Unpin releases the OS-thread lock taken by Pin. CPU affinity of the
// thread is left as-is.
func Unpin() {
	runtime.UnlockOSThread()
}
