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

func TestPrezzaAgreesWithNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))

	texts := [][]byte{
		[]byte("abcabcabcxyzabcabc"),
		[]byte("aaaaaaaaaaaaaaaaaaaa"),
		[]byte("mississippimississippi"),
		fibonacciWord(12),
	}

	randText := make([]byte, 512)

	for i := range randText {
		randText[i] = byte('a' + rnd.Intn(4))
	}

	texts = append(texts, randText)

	for _, text := range texts {
		naive := NewNaiveIndex(text, Plain)
		prezza := NewPrezza(text, 0)

		for trial := 0; trial < 500; trial++ {
			i := uint64(rnd.Intn(len(text)))
			j := uint64(rnd.Intn(len(text)))

			want := naive.Lce(i, j)
			got := prezza.Lce(i, j)

			if got != want {
				t.Fatalf("Prezza.Lce(%d,%d) = %d, want %d (text=%q)", i, j, got, want, text)
			}
		}
	}
}

// fibonacciWord returns the n-th Fibonacci word (F_0 = "b", F_1 = "a",
// F_k = F_{k-1} + F_{k-2}), a standard stress case for LCE structures
// because of its dense internal periodicity.
func fibonacciWord(n int) []byte {
	a, b := []byte("b"), []byte("a")

	for k := 2; k <= n; k++ {
		next := make([]byte, 0, len(a)+len(b))
		next = append(next, b...)
		next = append(next, a...)
		a, b = b, next
	}

	return b
}
