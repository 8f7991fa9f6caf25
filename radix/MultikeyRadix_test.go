/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package radix

import (
	"math/rand"
	"sort"
	"testing"
)

func windowOf(text []byte, pos int32, w int) []byte {
	end := int(pos) + w

	if end > len(text) {
		end = len(text)
	}

	return text[pos:end]
}

func lessWindow(text []byte, a, b int32, w int) bool {
	wa, wb := windowOf(text, a, w), windowOf(text, b, w)

	for i := 0; i < len(wa) && i < len(wb); i++ {
		if wa[i] != wb[i] {
			return wa[i] < wb[i]
		}
	}

	if len(wa) != len(wb) {
		return len(wa) < len(wb)
	}

	return a < b
}

func TestSortMatchesReferenceOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))

	for trial := 0; trial < 30; trial++ {
		n := 20 + rnd.Intn(200)
		tau := 1 + rnd.Intn(5)
		text := make([]byte, n)

		for i := range text {
			text[i] = byte('a' + rnd.Intn(3))
		}

		var positions []int32

		for p := 0; p <= n-3*tau; p++ {
			if rnd.Intn(2) == 0 {
				positions = append(positions, int32(p))
			}
		}

		if len(positions) == 0 {
			continue
		}

		got := Sort(text, tau, positions)

		want := make([]int32, len(positions))
		copy(want, positions)
		sort.SliceStable(want, func(i, j int) bool {
			return lessWindow(text, want[i], want[j], 3*tau)
		})

		if len(got) != len(want) {
			t.Fatalf("trial %d: length mismatch got %d want %d", trial, len(got), len(want))
		}

		for i := range got {
			if !windowsEqual(text, got[i], want[i], 3*tau) {
				t.Fatalf("trial %d: index %d got pos %d (window %q) want pos %d (window %q)",
					trial, i, got[i], windowOf(text, got[i], 3*tau), want[i], windowOf(text, want[i], 3*tau))
			}
		}
	}
}

func windowsEqual(text []byte, a, b int32, w int) bool {
	wa, wb := windowOf(text, a, w), windowOf(text, b, w)

	if len(wa) != len(wb) {
		return false
	}

	for i := range wa {
		if wa[i] != wb[i] {
			return false
		}
	}

	return true
}

func TestSortHandlesSmallGroups(t *testing.T) {
	text := []byte("banana")
	positions := []int32{0, 1, 2}
	got := Sort(text, 1, positions)

	if len(got) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(got))
	}

	for i := 1; i < len(got); i++ {
		if lessWindow(text, got[i], got[i-1], 3) {
			t.Fatalf("Sort did not produce ascending window order: %v", got)
		}
	}
}
