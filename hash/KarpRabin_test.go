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

package hash

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFingerprintMatchesEqualSubstrings(t *testing.T) {
	text := []byte("abcabcabcxyzabcabc")
	kr := NewKarpRabin(text, 257)

	for i := 0; i < len(text); i++ {
		for j := i + 1; j <= len(text); j++ {
			for k := 0; k < len(text); k++ {
				if k+j-i > len(text) {
					continue
				}

				if !bytes.Equal(text[i:j], text[k:k+j-i]) {
					continue
				}

				if kr.Fingerprint(i, j) != kr.Fingerprint(k, k+j-i) {
					t.Fatalf("equal substrings %q got different fingerprints at (%d,%d) and (%d,%d)",
						text[i:j], i, j, k, k+j-i)
				}
			}
		}
	}
}

func TestFingerprintRarelyCollidesOnDifferentSubstrings(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	text := make([]byte, 4096)

	for i := range text {
		text[i] = byte(rnd.Intn(4)) // small alphabet to stress-test collisions
	}

	kr := NewKarpRabin(text, 0)
	collisions := 0
	trials := 20000

	for t := 0; t < trials; t++ {
		i := rnd.Intn(len(text) - 32)
		j := rnd.Intn(len(text) - 32)
		l := 1 + rnd.Intn(31)

		if bytes.Equal(text[i:i+l], text[j:j+l]) {
			continue
		}

		if kr.Fingerprint(i, i+l) == kr.Fingerprint(j, j+l) {
			collisions++
		}
	}

	if collisions*100 > trials {
		t.Fatalf("unexpectedly high collision rate: %d/%d", collisions, trials)
	}
}

func TestExtendMatchesFingerprint(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	kr := NewKarpRabin(text, 131)

	h := uint64(0)

	for i := 0; i < len(text); i++ {
		h = kr.Extend(h, i, text[i])

		if got, want := h, kr.Fingerprint(0, i+1); got != want {
			t.Fatalf("Extend mismatch at i=%d: got %d, want %d", i, got, want)
		}
	}
}

func TestPopLeftMatchesFingerprint(t *testing.T) {
	text := []byte("abracadabra_abracadabra")
	kr := NewKarpRabin(text, 131)

	h := kr.Fingerprint(0, len(text))

	for i := 0; i < len(text); i++ {
		want := kr.Fingerprint(i+1, len(text))
		h = kr.PopLeft(h, len(text)-i, text[i])

		if h != want {
			t.Fatalf("PopLeft mismatch after popping %d bytes: got %d, want %d", i+1, h, want)
		}
	}
}

func TestConcatMatchesFingerprint(t *testing.T) {
	text := []byte("synchronizing_sets_benchmark_text")
	kr := NewKarpRabin(text, 131)

	for split := 1; split < len(text); split++ {
		hx := kr.Fingerprint(0, split)
		hy := kr.Fingerprint(split, len(text))
		got := kr.Concat(hx, len(text)-split, hy)
		want := kr.Fingerprint(0, len(text))

		if got != want {
			t.Fatalf("Concat mismatch at split=%d: got %d, want %d", split, got, want)
		}
	}
}
