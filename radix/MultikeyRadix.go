// Copyright 2014-5 Randall Farmer. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.
//
// Adapted from the byte-table / insertion-cutoff idiom of gophersgang's
// radixsort package into an MSD multikey (three-way) string radix sort
// specialized for fixed-length indexed strings: sort the synchronizing
// set S lexicographically by the length-3*tau substring T[s..s+3*tau) at
// each position s, padding reads past the end of the text with a
// sentinel smaller than any real byte.

// Package radix sorts the synchronizing set positions lexicographically by
// their length-3*tau window in the text.
package radix

import "sort"

// insertionCutoff is the group size below which the multikey quicksort
// bails out to insertion sort.
const insertionCutoff = 32

// sentinel is returned by charAt for reads past the end of text; it is
// strictly smaller than any real byte value (0..255), so strings that run
// off the end of T always sort before any string that does not.
const sentinel = -1

// Sort returns a permutation pi of positions such that
// T[pi[0]..pi[0]+3*tau) <= T[pi[1]..pi[1]+3*tau) <= ..., using an MSD
// multikey radix sort (ternary string quicksort). Ties on the full 3*tau
// window are broken by ascending position, which for a synchronizing set
// fed in increasing text order is equivalent to "stays in input order".
func Sort(text []byte, tau int, positions []int32) []int32 {
	perm := make([]int32, len(positions))
	copy(perm, positions)

	w := 3 * tau
	multikeyQuicksort(perm, 0, len(perm), 0, text, w)
	return perm
}

func charAt(text []byte, pos int32, depth, w int) int {
	if depth >= w {
		return sentinel
	}

	i := int(pos) + depth

	if i >= len(text) {
		return sentinel
	}

	return int(text[i])
}

// multikeyQuicksort ternary-partitions arr[lo:hi] on the byte at (position,
// depth), recursing into the less-than and greater-than partitions at the
// same depth and into the equal partition at depth+1 — the standard
// Bentley-Sedgewick multikey quicksort, which degrades gracefully to plain
// MSD radix behavior on the small (256-symbol) byte alphabet.
func multikeyQuicksort(arr []int32, lo, hi, depth int, text []byte, w int) {
	if hi-lo <= 1 {
		return
	}

	if hi-lo <= insertionCutoff {
		insertionSort(arr[lo:hi], depth, text, w)
		return
	}

	pivot := charAt(text, arr[lo+(hi-lo)/2], depth, w)
	lt, gt := lo, hi-1
	i := lo

	for i <= gt {
		c := charAt(text, arr[i], depth, w)

		switch {
		case c < pivot:
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		case c > pivot:
			arr[i], arr[gt] = arr[gt], arr[i]
			gt--
		default:
			i++
		}
	}

	multikeyQuicksort(arr, lo, lt, depth, text, w)

	if pivot != sentinel {
		multikeyQuicksort(arr, lt, gt+1, depth+1, text, w)
	} else {
		eq := arr[lt : gt+1]
		sort.Slice(eq, func(a, b int) bool { return eq[a] < eq[b] })
	}

	multikeyQuicksort(arr, gt+1, hi, depth, text, w)
}

// insertionSort is the small-group fallback. It compares full remaining
// windows (from depth to w) and breaks exact ties by ascending position,
// giving a total, stable-for-our-input order without needing a separate
// stable-sort pass.
func insertionSort(arr []int32, depth int, text []byte, w int) {
	for i := 1; i < len(arr); i++ {
		v := arr[i]
		j := i - 1

		for j >= 0 && less(text, v, arr[j], depth, w) {
			arr[j+1] = arr[j]
			j--
		}

		arr[j+1] = v
	}
}

func less(text []byte, a, b int32, depth, w int) bool {
	for d := depth; d < w; d++ {
		ca := charAt(text, a, d, w)
		cb := charAt(text, b, d, w)

		if ca != cb {
			return ca < cb
		}
	}

	return a < b
}
