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

import "sort"

// successorIndex answers "smallest element of S that is >= p" and "is p in
// S" queries over the (ascending, borrowed) synchronizing set s.
//
// By default both queries cost O(log|S|) via binary search. When
// preferLongQueries is requested, buildDense trades O(n) space and a single
// right-to-left sweep for O(1) answers — worthwhile when the number of
// queries against one index heavily outnumbers n (spec's
// prefer_long_queries mode).
type successorIndex struct {
	s     []int32
	dense []int32 // dense[p] = index k of the successor of p, or len(s); nil if not built
}

func newSuccessorIndex(s []int32) *successorIndex {
	return &successorIndex{s: s}
}

// buildDense precomputes the successor of every position in [0, n] with a
// single right-to-left sweep: si only decreases when p itself is an
// element of s, so the whole sweep is O(n).
func (this *successorIndex) buildDense(n int) {
	dense := make([]int32, n+1)
	si := int32(len(this.s))

	for p := n; p >= 0; p-- {
		if si > 0 && int(this.s[si-1]) == p {
			si--
		}

		dense[p] = si
	}

	this.dense = dense
}

// successor returns the index k such that s[k] is the smallest element of
// s that is >= p, and false if no such element exists.
func (this *successorIndex) successor(p int32) (int, bool) {
	if this.dense != nil {
		k := this.dense[p]

		if int(k) >= len(this.s) {
			return 0, false
		}

		return int(k), true
	}

	k := sort.Search(len(this.s), func(i int) bool { return this.s[i] >= p })

	if k >= len(this.s) {
		return 0, false
	}

	return k, true
}

// contains reports whether p is an element of s, and its index if so.
func (this *successorIndex) contains(p int32) (int, bool) {
	k, ok := this.successor(p)

	if !ok || this.s[k] != p {
		return 0, false
	}

	return k, true
}
