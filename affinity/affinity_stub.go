//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without an affinity syscall binding.

package affinity

import "fmt"

// setAffinityPlatform reports that pinning is unsupported here.
func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: cpu pinning not supported on this platform (cpu %d)", cpuID)
}
