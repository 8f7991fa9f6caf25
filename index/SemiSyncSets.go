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
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/herlez-kurpicz/lce-go/hash"
	"github.com/herlez-kurpicz/lce-go/radix"
	"github.com/herlez-kurpicz/lce-go/rmq"
	"github.com/herlez-kurpicz/lce-go/sais"
	"github.com/herlez-kurpicz/lce-go/sss"
)

// SemiSyncSets is the tau-partitioning synchronizing-set LCE index:
// O(n/tau) space, O(n) construction, O(tau) query (components C3-C9).
//
// Query strategy: any Lce(i,j) < 2*tau is resolved by a direct bounded
// byte scan. Once a match reaches 2*tau, the theory of synchronizing sets
// guarantees i and j have synchronizing points at the SAME offset
// delta in [0, tau]; the remainder of the answer is then exactly delta
// plus the real-suffix LCE between those two synchronizing points, which
// is answered in O(1) via a range-minimum query on the LCP array of the
// suffixes anchored at S.
type SemiSyncSets struct {
	text []byte
	tau  int

	s   []int32 // synchronizing set, strictly increasing positions
	sa  []int32 // SA' : sa[r] = k such that S[k] has suffix-rank r
	isa []int32 // ISA': isa[k] = rank of the suffix starting at S[k]
	lcp []int32 // lcp[r] = Lce(S[sa[r-1]], S[sa[r]]) for r >= 1

	rmqTable *rmq.SparseTable
	succ     *successorIndex
}

// NewSemiSyncSets builds a SemiSyncSets index over text with block size
// tau, reporting construction progress through emit (nil is accepted and
// means "nobody is listening"). Returns nil if 3*tau > len(text): callers
// should fall back to NaiveIndex in that case, since a synchronizing set
// can't be partitioned into windows that fit the text.
func NewSemiSyncSets(text []byte, tau int, base uint64, preferLongQueries bool, emitFn ProgressFunc) *SemiSyncSets {
	n := len(text)

	if 3*tau > n {
		return nil
	}

	emit(emitFn, EvtConstructionStart, -1, int64(n))

	kr := hash.NewKarpRabin(text, base)
	sampler := sss.NewSampler(text, tau, kr)
	s := sampler.Compute()
	emit(emitFn, EvtSSSSampled, -1, int64(len(s)))

	idx := newSemiSyncSetsFromSet(text, tau, kr, s, preferLongQueries, emitFn)
	emit(emitFn, EvtConstructionEnd, -1, int64(n))
	return idx
}

// newSemiSyncSetsFromSet runs the sort/SA-IS/Kasai-LCP/RMQ tail of
// construction given an already-computed synchronizing set s; it is the
// shared continuation for both NewSemiSyncSets and
// NewSemiSyncSetsParallel (whose only difference is how s is sampled).
func newSemiSyncSetsFromSet(text []byte, tau int, kr *hash.KarpRabin, s []int32, preferLongQueries bool, emitFn ProgressFunc) *SemiSyncSets {
	n := len(text)

	perm := radix.Sort(text, tau, s)
	emit(emitFn, EvtSorted, -1, int64(len(perm)))

	ranks, sigma := rankWindows(text, tau, s, perm)
	sa, isa := sais.BuildInduced(ranks, sigma)
	emit(emitFn, EvtSABuilt, -1, int64(len(sa)))

	lcp := kasaiLCP(text, s, sa, isa)
	emit(emitFn, EvtLCPBuilt, -1, int64(len(lcp)))

	var rmqTable *rmq.SparseTable

	if len(lcp) > 1 {
		rmqTable = rmq.NewSparseTable(lcp[1:])
	}

	emit(emitFn, EvtRMQBuilt, -1, int64(len(lcp)))

	succ := newSuccessorIndex(s)

	if preferLongQueries {
		succ.buildDense(n)
	}

	return &SemiSyncSets{
		text: text, tau: tau,
		s: s, sa: sa, isa: isa, lcp: lcp,
		rmqTable: rmqTable, succ: succ,
	}
}

// rankWindows assigns each position in s (in original, ascending order) an
// integer "rank" such that two positions get the same rank iff their
// length-3*tau windows are byte-identical, and rank is otherwise strictly
// increasing in sorted (perm) order. This is the reduced-alphabet string
// that sais.BuildInduced recurses on: its suffix array equals, by the
// synchronizing-set correctness theorem, the real lexicographic order of
// the full text suffixes anchored at s.
func rankWindows(text []byte, tau int, s, perm []int32) ([]int32, int) {
	w := 3 * tau
	posIdx := make(map[int32]int32, len(s))

	for k, p := range s {
		posIdx[p] = int32(k)
	}

	// ranks start at 1, never 0: BuildInduced appends a 0 sentinel that
	// must be strictly smaller than every real symbol.
	ranks := make([]int32, len(s))
	rank := int32(1)

	for i, p := range perm {
		if i > 0 && !bytes.Equal(text[perm[i-1]:int(perm[i-1])+w], text[p:int(p)+w]) {
			rank++
		}

		ranks[posIdx[p]] = rank
	}

	return ranks, int(rank) + 1
}

// kasaiLCP builds the LCP array of the real text suffixes anchored at s,
// in SA' order, with a sparse variant of Kasai's algorithm: moving through
// s in position order, the match length h found for s[k] and its SA'
// predecessor p is carried to s[k+1] = s[k]+gap as h-gap only when p+gap
// is itself in s (then the SA' predecessor of s[k+1] shares at least h-gap
// bytes with it); otherwise the scan for s[k+1] restarts from 0.
func kasaiLCP(text []byte, s, sa, isa []int32) []int32 {
	n := len(text)
	m := len(s)
	lcp := make([]int32, m)
	h := 0

	for k := 0; k < m; k++ {
		r := isa[k]

		if r == 0 {
			h = 0
			continue
		}

		prevPos := int(s[sa[r-1]])
		curPos := int(s[k])

		for curPos+h < n && prevPos+h < n && text[curPos+h] == text[prevPos+h] {
			h++
		}

		lcp[r] = int32(h)

		if k+1 < m {
			gap := int(s[k+1]) - curPos
			next := prevPos + gap
			q := sort.Search(m, func(x int) bool { return int(s[x]) >= next })

			if h > gap && q < m && int(s[q]) == next {
				h -= gap
			} else {
				h = 0
			}
		}
	}

	return lcp
}

// Lce returns the length of the longest common prefix of the suffixes
// starting at i and j.
func (this *SemiSyncSets) Lce(i, j uint64) uint64 {
	n := uint64(len(this.text))

	if i == j {
		return n - i
	}

	cap := uint64(2 * this.tau)
	short := this.naiveBounded(i, j, cap)

	if short < cap {
		return short
	}

	delta, ki, kj, ok := this.alignedSyncPoints(i, j)

	if !ok {
		return short + this.naiveBounded(i+short, j+short, n)
	}

	ra, rb := this.isa[ki], this.isa[kj]

	if ra == rb {
		return delta + n - uint64(this.s[ki])
	}

	lo, hi := ra, rb

	if lo > hi {
		lo, hi = hi, lo
	}

	return delta + uint64(this.rmqTable.Min(int(lo), int(hi-1)))
}

// naiveBounded scans byte by byte from i and j, stopping as soon as limit
// matches are found or the text ends.
func (this *SemiSyncSets) naiveBounded(i, j, limit uint64) uint64 {
	n := uint64(len(this.text))
	k := uint64(0)

	for k < limit && i+k < n && j+k < n && this.text[i+k] == this.text[j+k] {
		k++
	}

	return k
}

// alignedSyncPoints finds the offset delta in [0, tau] such that i+delta
// is the successor of i in S and j+delta also lies in S. ok is false when
// S has no element in [i, i+tau] or when j+delta is not in S; the caller
// then answers with a plain byte-scan fallback.
func (this *SemiSyncSets) alignedSyncPoints(i, j uint64) (delta uint64, ki, kj int, ok bool) {
	ki, found := this.succ.successor(int32(i))

	if !found || uint64(this.s[ki]) > i+uint64(this.tau) {
		return 0, 0, 0, false
	}

	delta = uint64(this.s[ki]) - i
	kj, found = this.succ.contains(int32(j + delta))

	if !found {
		return 0, 0, 0, false
	}

	return delta, ki, kj, true
}

// CharAt returns the byte at text position i.
func (this *SemiSyncSets) CharAt(i uint64) byte {
	return this.text[i]
}

// IsSmallerSuffix reports whether suffix i is lexicographically smaller
// than suffix j.
func (this *SemiSyncSets) IsSmallerSuffix(i, j uint64) bool {
	if i == j {
		return false
	}

	l := this.Lce(i, j)
	n := uint64(len(this.text))

	if i+l == n {
		return true
	}

	if j+l == n {
		return false
	}

	return this.text[i+l] < this.text[j+l]
}

// Checksum hashes the synchronizing set with XXHash64, giving benchmark
// tooling (cmd/lcebench) a cheap way to confirm two construction runs over
// the same text (e.g. serial vs parallel) produced the same S without
// comparing the whole array.
func (this *SemiSyncSets) Checksum() uint64 {
	h, _ := hash.NewXXHash64(0)
	buf := make([]byte, 4*len(this.s))

	for i, p := range this.s {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(p))
	}

	return h.Hash(buf)
}

// SizeInBytes approximates the memory footprint of the synchronizing set,
// SA', ISA', LCP array and RMQ sparse table, excluding the borrowed text.
func (this *SemiSyncSets) SizeInBytes() uint64 {
	words := uint64(len(this.s)) * 3 // s, sa, isa
	words += uint64(len(this.lcp))

	levels := uint64(0)

	if len(this.lcp) > 1 {
		for span := 1; span <= len(this.lcp)-1; span *= 2 {
			levels++
			words += uint64(len(this.lcp) - 1 - span + 1)
		}
	}

	if this.succ.dense != nil {
		words += uint64(len(this.succ.dense))
	}

	return words * 4
}
