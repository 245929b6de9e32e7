// File: affinity/affinity_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import (
	"runtime"
	"testing"
)

func TestCurrentStableWithinGoroutine(t *testing.T) {
	first := Current()
	if first == 0 {
		t.Fatal("goroutine id parsed as 0")
	}
	for i := 0; i < 100; i++ {
		if got := Current(); got != first {
			t.Fatalf("id changed within goroutine: %d then %d", first, got)
		}
	}
}

func TestCurrentDiffersAcrossGoroutines(t *testing.T) {
	mine := Current()
	other := make(chan uint64, 1)
	go func() {
		other <- Current()
	}()
	if theirs := <-other; theirs == mine {
		t.Fatalf("distinct goroutines share id %d", mine)
	}
}

func TestPinSmoke(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("pinning is linux-only")
	}
	if err := Pin(0); err != nil {
		t.Skipf("pinning unavailable in this environment: %v", err)
	}
	defer Unpin()

	if got := Current(); got == 0 {
		t.Fatal("goroutine id unavailable while pinned")
	}
}
