// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements a fixed-capacity circular byte buffer with
// non-destructive Peek, destructive Skip, and append-with-overwrite Push.
//
// The buffer favors availability over completeness: Push never blocks and
// never fails on overflow, it drops the oldest bytes instead. Each buffer
// is owned by the goroutine that created it; calls from any other
// goroutine fail fast with api.ErrWrongOwner rather than corrupt state.
// Concurrent producer/consumer composition belongs outside the core — see
// the pipe package for a mutex-guarded wrapper.
package ring
