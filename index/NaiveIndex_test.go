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

package index

import (
	"math/rand"
	"testing"
)

func referenceLce(text []byte, i, j uint64) uint64 {
	n := uint64(len(text))
	k := uint64(0)

	for i+k < n && j+k < n && text[i+k] == text[j+k] {
		k++
	}

	return k
}

func TestNaivePlainAndXorAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	text := make([]byte, 1000)

	for i := range text {
		text[i] = byte('a' + rnd.Intn(4))
	}

	plain := NewNaiveIndex(text, Plain)
	xor := NewNaiveIndex(text, XorAccelerated)

	for trial := 0; trial < 2000; trial++ {
		i := uint64(rnd.Intn(len(text)))
		j := uint64(rnd.Intn(len(text)))

		want := referenceLce(text, i, j)
		got := plain.Lce(i, j)

		if got != want {
			t.Fatalf("Plain.Lce(%d,%d) = %d, want %d", i, j, got, want)
		}

		got = xor.Lce(i, j)

		if got != want {
			t.Fatalf("XorAccelerated.Lce(%d,%d) = %d, want %d", i, j, got, want)
		}
	}
}

func TestNaiveLceSelf(t *testing.T) {
	text := []byte("mississippi")
	idx := NewNaiveIndex(text, Plain)

	for i := 0; i < len(text); i++ {
		if got, want := idx.Lce(uint64(i), uint64(i)), uint64(len(text)-i); got != want {
			t.Fatalf("Lce(%d,%d) = %d, want %d", i, i, got, want)
		}
	}
}

func TestIsSmallerSuffixMatchesLexicographicOrder(t *testing.T) {
	text := []byte("banana")
	idx := NewNaiveIndex(text, Plain)

	suffixes := []string{"banana", "anana", "nana", "ana", "na", "a"}

	for i := 0; i < len(suffixes); i++ {
		for j := 0; j < len(suffixes); j++ {
			want := suffixes[i] < suffixes[j]
			got := idx.IsSmallerSuffix(uint64(i), uint64(j))

			if got != want {
				t.Fatalf("IsSmallerSuffix(%d,%d) = %v, want %v (%q vs %q)", i, j, got, want, suffixes[i], suffixes[j])
			}
		}
	}
}
