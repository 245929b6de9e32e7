// File: ring/property_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Randomized operations against a plain-slice reference model.

package ring_test

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/momentics/bytering/ring"
)

func TestRingPropertyBased(t *testing.T) {
	const capacity = 64

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(time.Now().UnixNano() + seed))
		rb, err := ring.New(capacity)
		if err != nil {
			t.Fatalf("create ring: %v", err)
		}

		// model holds the bytes the ring should currently store.
		var model []byte
		for i := 0; i < 5000; i++ {
			switch rng.Intn(3) {
			case 0: // push
				chunk := make([]byte, rng.Intn(capacity+16))
				rng.Read(chunk)
				if err := rb.Push(chunk); err != nil {
					t.Fatalf("push: %v", err)
				}
				model = append(model, chunk...)
				if len(model) > capacity {
					model = model[len(model)-capacity:]
				}
			case 1: // skip
				avail, err := rb.ReadAvailable()
				if err != nil {
					t.Fatalf("read available: %v", err)
				}
				if avail == 0 {
					continue
				}
				n := rng.Intn(avail + 1)
				if err := rb.Skip(n); err != nil {
					t.Fatalf("skip %d of %d: %v", n, avail, err)
				}
				model = model[n:]
			case 2: // peek full window
				got, err := rb.Peek(len(model))
				if err != nil {
					t.Fatalf("peek %d: %v", len(model), err)
				}
				if !bytes.Equal(got, model) {
					t.Fatalf("peek mismatch at op %d: got %v want %v", i, got, model)
				}
			}

			ra, err := rb.ReadAvailable()
			if err != nil {
				t.Fatalf("read available: %v", err)
			}
			wa, err := rb.WriteAvailable()
			if err != nil {
				t.Fatalf("write available: %v", err)
			}
			if ra != len(model) {
				t.Fatalf("stored count drifted: ring %d, model %d", ra, len(model))
			}
			if ra < 0 || ra > capacity {
				t.Fatalf("read available out of bounds: %d", ra)
			}
			if ra+wa != capacity {
				t.Fatalf("availability sum broken: %d + %d != %d", ra, wa, capacity)
			}
		}

		if err := rb.Release(); err != nil {
			t.Fatalf("release: %v", err)
		}
	}
}
