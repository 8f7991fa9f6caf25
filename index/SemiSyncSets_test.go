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

	"github.com/google/go-cmp/cmp"
)

func checkAgainstNaive(t *testing.T, name string, text []byte, tau int, trials int, rnd *rand.Rand) {
	t.Helper()

	sss := NewSemiSyncSets(text, tau, 0, false, nil)

	if sss == nil {
		t.Fatalf("%s: NewSemiSyncSets returned nil (3*tau=%d > n=%d?)", name, 3*tau, len(text))
	}

	naive := NewNaiveIndex(text, Plain)

	for trial := 0; trial < trials; trial++ {
		i := uint64(rnd.Intn(len(text)))
		j := uint64(rnd.Intn(len(text)))

		want := naive.Lce(i, j)
		got := sss.Lce(i, j)

		if got != want {
			t.Fatalf("%s: Lce(%d,%d) mismatch (-want +got):\n%s\ntext=%q tau=%d", name, i, j,
				cmp.Diff(want, got), text, tau)
		}
	}
}

func TestSemiSyncSetsAgreesWithNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(101))

	cases := []struct {
		name string
		text []byte
		tau  int
	}{
		{"abcabc", []byte("abcabcabcabcabcabcabcabcabcabc"), 2},
		{"aaaaaa", make([]byte, 300), 4},
		{"mississippi", []byte("mississippimississippimississippimississippi"), 3},
		{"fibonacci", fibonacciWord(14), 5},
	}

	for i := range cases[1].text {
		cases[1].text[i] = 'a'
	}

	for _, c := range cases {
		checkAgainstNaive(t, c.name, c.text, c.tau, 500, rnd)
	}
}

func TestSemiSyncSetsAgreesWithNaiveOnRandomText(t *testing.T) {
	rnd := rand.New(rand.NewSource(202))
	text := make([]byte, 20000)

	for i := range text {
		text[i] = byte('a' + rnd.Intn(26))
	}

	checkAgainstNaive(t, "random", text, 16, 2000, rnd)
}

func TestSemiSyncSetsAgreesWithNaiveOnPeriodicText(t *testing.T) {
	rnd := rand.New(rand.NewSource(303))
	n := 2_000_002 // ("AC")^1000001, even length

	text := make([]byte, n)

	for i := range text {
		if i%2 == 0 {
			text[i] = 'A'
		} else {
			text[i] = 'C'
		}
	}

	checkAgainstNaive(t, "periodic", text, 32, 500, rnd)
}

func TestSemiSyncSetsParallelAgreesWithSerial(t *testing.T) {
	rnd := rand.New(rand.NewSource(404))
	text := make([]byte, 50000)

	for i := range text {
		text[i] = byte('a' + rnd.Intn(8))
	}

	tau := 20
	serial := NewSemiSyncSets(text, tau, 131, false, nil)
	parallel, err := NewSemiSyncSetsParallel(text, tau, 131, 4, false, nil)

	if err != nil {
		t.Fatalf("NewSemiSyncSetsParallel returned error: %v", err)
	}

	for trial := 0; trial < 1000; trial++ {
		i := uint64(rnd.Intn(len(text)))
		j := uint64(rnd.Intn(len(text)))

		want := serial.Lce(i, j)
		got := parallel.Lce(i, j)

		if got != want {
			t.Fatalf("parallel/serial mismatch at (%d,%d): got %d, want %d", i, j, got, want)
		}
	}
}

func TestChecksumIsDeterministicAndSensitive(t *testing.T) {
	text := []byte("mississippimississippimississippimississippi")
	a := NewSemiSyncSets(text, 3, 0, false, nil)
	b := NewSemiSyncSets(text, 3, 0, false, nil)

	if a.Checksum() != b.Checksum() {
		t.Fatalf("Checksum is not deterministic across identical constructions")
	}

	other := NewSemiSyncSets([]byte("abcabcabcabcabcabcabcabcabcabc"), 3, 0, false, nil)

	if a.Checksum() == other.Checksum() {
		t.Fatalf("Checksum did not change for a different synchronizing set")
	}
}

func TestPreferLongQueriesAgreesWithBinarySearch(t *testing.T) {
	rnd := rand.New(rand.NewSource(505))
	text := make([]byte, 5000)

	for i := range text {
		text[i] = byte('a' + rnd.Intn(5))
	}

	tau := 10
	withBinarySearch := NewSemiSyncSets(text, tau, 0, false, nil)
	withDense := NewSemiSyncSets(text, tau, 0, true, nil)

	for trial := 0; trial < 1000; trial++ {
		i := uint64(rnd.Intn(len(text)))
		j := uint64(rnd.Intn(len(text)))

		want := withBinarySearch.Lce(i, j)
		got := withDense.Lce(i, j)

		if got != want {
			t.Fatalf("prefer_long_queries mismatch at (%d,%d): got %d, want %d", i, j, got, want)
		}
	}
}
