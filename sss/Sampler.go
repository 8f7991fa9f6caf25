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

// Package sss computes the tau-partitioning string synchronizing set used
// by the semi-synchronizing-set LCE index: the set of text positions whose
// length-3*tau window has its leftmost tau-length minimum, under a
// fingerprint-then-lex order, at offset 0 or tau. It is the sampling step
// that every downstream stage (radix sort, induced suffix array, LCP, RMQ)
// operates over instead of the raw text.
package sss

import (
	"bytes"
	"sort"

	"github.com/herlez-kurpicz/lce-go/hash"
)

// run is a maximal contiguous span of a single repeated byte, [start, end).
type run struct {
	start, end int
}

// Sampler streams the sliding-window computation of the synchronizing set
// over a borrowed text, for one fixed tau.
type Sampler struct {
	text []byte
	tau  int
	kr   *hash.KarpRabin
}

// NewSampler creates a Sampler for text using the given KarpRabin
// fingerprint table (built by the caller over the same text) and block
// size tau. tau must satisfy tau >= 64 and 3*tau <= len(text); callers
// violating the latter should fall back to a naive index instead (spec
// §4: "3τ ≤ n for nontrivial operation").
func NewSampler(text []byte, tau int, kr *hash.KarpRabin) *Sampler {
	return &Sampler{text: text, tau: tau, kr: kr}
}

// Compute returns S, the synchronizing set, as a strictly increasing slice
// of positions in [0, n-3*tau].
func (this *Sampler) Compute() []int32 {
	n := len(this.text)
	tau := this.tau

	if 3*tau > n {
		return nil
	}

	limit := n - 3*tau // last valid window start

	runs := detectRuns(this.text)
	covered := make([]bool, limit+1)
	var overrides []int32

	for _, r := range runs {
		if r.end-r.start > 3*tau {
			for p := r.start; p <= limit && p+3*tau <= r.end; p++ {
				covered[p] = true
			}

			overrides = append(overrides, runExtensionPositions(r.start, r.end, tau, limit)...)
		}
	}

	s := this.slidingWindowSample(limit, covered)
	return mergeSortedUnique(s, overrides)
}

// slidingWindowSample runs the monotone-deque leftmost-minimum scan over
// every non-run-covered window, amortized O(1) per step: each text
// position enters and leaves the deque at most once.
func (this *Sampler) slidingWindowSample(limit int, covered []bool) []int32 {
	tau := this.tau
	deque := make([]int, 0, 2*tau+2)
	var s []int32
	add := 0

	for p := 0; p <= limit; p++ {
		for add <= p+2*tau {
			q := add

			for len(deque) > 0 && this.lessThan(q, deque[len(deque)-1]) {
				deque = deque[:len(deque)-1]
			}

			deque = append(deque, q)
			add++
		}

		for len(deque) > 0 && deque[0] < p {
			deque = deque[1:]
		}

		if covered[p] {
			continue
		}

		oStar := deque[0] - p

		if oStar == 0 || oStar == tau {
			s = append(s, int32(p))
		}
	}

	return s
}

// lessThan reports whether Q_tau(a) strictly precedes Q_tau(b): fingerprint
// first, lexicographic tiebreak. Used to evict deque entries that can never
// again be the leftmost minimum. Ties must NOT evict: on a tie the earlier
// (smaller) position is the one the leftmost-minimum rule wants to keep, so
// only a strictly smaller candidate pops the back of the deque.
func (this *Sampler) lessThan(a, b int) bool {
	tau := this.tau
	fa := this.kr.Fingerprint(a, a+tau)
	fb := this.kr.Fingerprint(b, b+tau)

	if fa != fb {
		return fa < fb
	}

	return bytes.Compare(this.text[a:a+tau], this.text[b:b+tau]) < 0
}

// detectRuns scans text for maximal runs of a single repeated byte.
func detectRuns(text []byte) []run {
	n := len(text)

	if n == 0 {
		return nil
	}

	var runs []run
	start := 0

	for i := 1; i <= n; i++ {
		if i == n || text[i] != text[start] {
			runs = append(runs, run{start: start, end: i})
			start = i
		}
	}

	return runs
}

// runExtensionPositions handles a run longer than 3*tau: left to the
// sliding-window rule it would synchronize at every position inside it
// (every Q_tau window ties, and the leftmost tie is always offset 0),
// blowing up |S| to O(run length). Instead this samples the run endpoints
// and every tau-th position inside, which still leaves every position
// within tau of some synchronizing element.
func runExtensionPositions(start, end, tau, limit int) []int32 {
	var out []int32

	for p := start; p+3*tau <= end && p <= limit; p += tau {
		out = append(out, int32(p))
	}

	last := end - 3*tau

	if last >= start && last <= limit && (len(out) == 0 || int(out[len(out)-1]) != last) {
		out = append(out, int32(last))
	}

	return out
}

// mergeSortedUnique merges two already-sorted-ascending slices, dropping
// duplicates, restoring strictly increasing text order after splicing the
// run-rule overrides back into the sliding-window result.
func mergeSortedUnique(a, b []int32) []int32 {
	if len(b) == 0 {
		return a
	}

	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
