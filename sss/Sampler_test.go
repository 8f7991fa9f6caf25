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

package sss

import (
	"math/rand"
	"testing"

	"github.com/herlez-kurpicz/lce-go/hash"
)

func TestComputeIsStrictlyIncreasing(t *testing.T) {
	text := []byte("abcabcabcxyzabcabcmississippimississippi")
	tau := 2
	kr := hash.NewKarpRabin(text, 131)
	s := NewSampler(text, tau, kr).Compute()

	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("S not strictly increasing at index %d: %d <= %d", i, s[i], s[i-1])
		}
	}
}

func TestComputeCoversEveryPosition(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for trial := 0; trial < 20; trial++ {
		n := 64 + rnd.Intn(256)
		tau := 4 + rnd.Intn(6)
		text := make([]byte, n)

		for i := range text {
			text[i] = byte('a' + rnd.Intn(3))
		}

		if 3*tau > n {
			continue
		}

		kr := hash.NewKarpRabin(text, 131)
		s := NewSampler(text, tau, kr).Compute()

		covered := make([]bool, n-3*tau+1)

		for _, p := range s {
			covered[p] = true
		}

		// invariant 9: every p in [0, n-3*tau] has an element of S within
		// [p, p+tau].
		next := len(covered)

		for p := len(covered) - 1; p >= 0; p-- {
			if covered[p] {
				next = p
			}

			if next-p > tau {
				t.Fatalf("trial %d: position %d has no synchronizing element within tau=%d (n=%d)", trial, p, tau, n)
			}
		}
	}
}

func TestComputeHandlesLongRuns(t *testing.T) {
	tau := 8
	text := make([]byte, 500)

	for i := range text {
		text[i] = 'a'
	}

	kr := hash.NewKarpRabin(text, 131)
	s := NewSampler(text, tau, kr).Compute()

	if len(s) == 0 {
		t.Fatal("expected a nonempty synchronizing set for a long run")
	}

	if len(s) > 10*len(text)/tau {
		t.Fatalf("|S| blew up on a long run: |S|=%d for n=%d, tau=%d", len(s), len(text), tau)
	}
}

func TestComputeReturnsNilWhenTextTooShort(t *testing.T) {
	text := []byte("ab")
	kr := hash.NewKarpRabin(text, 131)
	s := NewSampler(text, 10, kr).Compute()

	if s != nil {
		t.Fatalf("expected nil for 3*tau > n, got %v", s)
	}
}
