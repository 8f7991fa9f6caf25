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

package sais

import (
	"math/rand"
	"sort"
	"testing"
)

func bruteForceSuffixArray(r []int32) []int32 {
	n := len(r)
	sa := make([]int32, n)

	for i := range sa {
		sa[i] = int32(i)
	}

	sort.Slice(sa, func(a, b int) bool {
		i, j := int(sa[a]), int(sa[b])

		for i < n && j < n {
			if r[i] != r[j] {
				return r[i] < r[j]
			}

			i++
			j++
		}

		return i == n && j < n
	})

	return sa
}

func TestComputeAgreesWithBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	cases := [][]int32{
		{0},
		{1, 2, 3, 0},
		{2, 1, 2, 1, 2, 0},
		{3, 3, 3, 3, 0},
	}

	for _, r := range cases {
		got := Compute(r, 4)
		want := bruteForceSuffixArray(r)

		if !equalSlices(got, want) {
			t.Fatalf("Compute(%v) = %v, want %v", r, got, want)
		}
	}

	for trial := 0; trial < 50; trial++ {
		n := 2 + rnd.Intn(40)
		sigma := 2 + rnd.Intn(5)
		r := make([]int32, n)

		for i := 0; i < n-1; i++ {
			r[i] = int32(1 + rnd.Intn(sigma-1))
		}

		r[n-1] = 0

		got := Compute(r, sigma)
		want := bruteForceSuffixArray(r)

		if !equalSlices(got, want) {
			t.Fatalf("trial %d: Compute(%v) = %v, want %v", trial, r, got, want)
		}
	}
}

func TestBuildInducedSatisfiesISAInvariant(t *testing.T) {
	ranks := []int32{3, 1, 2, 3, 1, 2, 3}
	sa, isa := BuildInduced(ranks, 4)

	if len(sa) != len(ranks) || len(isa) != len(ranks) {
		t.Fatalf("unexpected lengths: len(sa)=%d, len(isa)=%d, want %d", len(sa), len(isa), len(ranks))
	}

	for k := 0; k < len(ranks); k++ {
		if isa[sa[k]] != int32(k) {
			t.Fatalf("ISA'[SA'[%d]] = %d, want %d", k, isa[sa[k]], k)
		}
	}

	seen := make([]bool, len(sa))

	for _, p := range sa {
		if p < 0 || int(p) >= len(seen) || seen[p] {
			t.Fatalf("SA' is not a permutation of [0, %d): %v", len(ranks), sa)
		}

		seen[p] = true
	}
}

func equalSlices(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
