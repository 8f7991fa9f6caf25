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
	"math/bits"

	"github.com/herlez-kurpicz/lce-go/internal"
)

// NaiveMode selects the byte-scan strategy used by NaiveIndex.
type NaiveMode int

const (
	// Plain scans one byte at a time. It is also the implementation used
	// for the "ultra-naive" CLI tag: the spec's "u" algorithm is folded
	// into this mode rather than given its own AlgoKind (see DESIGN.md).
	Plain NaiveMode = iota

	// XorAccelerated compares 8 and 16 bytes at a time via unaligned
	// loads and a XOR + trailing-zero-count resolution, falling back to a
	// byte scan only for the final remainder shorter than one 16-byte block.
	XorAccelerated
)

// NaiveIndex answers every Lce query with a direct scan over the borrowed
// text: O(1) construction, O(lce+1) query, O(1) extra memory (component
// C8). It is the reference implementation every other index is checked
// against in tests.
type NaiveIndex struct {
	text []byte
	mode NaiveMode
}

// NewNaiveIndex wraps text for direct-scan Lce queries using mode.
func NewNaiveIndex(text []byte, mode NaiveMode) *NaiveIndex {
	return &NaiveIndex{text: text, mode: mode}
}

// Lce returns the length of the longest common prefix of the suffixes
// starting at i and j.
func (this *NaiveIndex) Lce(i, j uint64) uint64 {
	n := uint64(len(this.text))

	if i == j {
		return n - i
	}

	if this.mode == XorAccelerated {
		return this.lceXor(i, j)
	}

	return this.lcePlain(i, j)
}

func (this *NaiveIndex) lcePlain(i, j uint64) uint64 {
	n := uint64(len(this.text))
	k := uint64(0)

	for i+k < n && j+k < n && this.text[i+k] == this.text[j+k] {
		k++
	}

	return k
}

// lceXor implements the xor-accelerated scan ported from the original
// naive-xor LCE routine: an 8-byte ultranaive guard to fast-reject
// short/no matches, then a loop of unaligned 16-byte block loads resolved
// via XOR + trailing-zero-count, and a final byte-by-byte remainder.
func (this *NaiveIndex) lceXor(i, j uint64) uint64 {
	n := uint64(len(this.text))
	remaining := n - i

	if n-j < remaining {
		remaining = n - j
	}

	k := uint64(0)

	// 8-byte ultranaive guard: most mismatches occur in the first word.
	if remaining >= 8 {
		a := internal.LoadU64LE(this.text, int(i))
		b := internal.LoadU64LE(this.text, int(j))

		if a != b {
			return uint64(bits.TrailingZeros64(a^b)) / 8
		}

		k = 8
	}

	// 16-byte block loop.
	for k+16 <= remaining {
		aLo, aHi := internal.LoadU128LE(this.text, int(i+k))
		bLo, bHi := internal.LoadU128LE(this.text, int(j+k))

		if aLo != bLo {
			return k + uint64(bits.TrailingZeros64(aLo^bLo))/8
		}

		if aHi != bHi {
			return k + 8 + uint64(bits.TrailingZeros64(aHi^bHi))/8
		}

		k += 16
	}

	// Remaining tail smaller than 16 bytes: finish byte by byte.
	for k < remaining && this.text[i+k] == this.text[j+k] {
		k++
	}

	return k
}

// CharAt returns the byte at text position i.
func (this *NaiveIndex) CharAt(i uint64) byte {
	return this.text[i]
}

// IsSmallerSuffix reports whether suffix i is lexicographically smaller
// than suffix j.
func (this *NaiveIndex) IsSmallerSuffix(i, j uint64) bool {
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

// SizeInBytes returns 0: the naive index has no auxiliary structure beyond
// the borrowed text.
func (this *NaiveIndex) SizeInBytes() uint64 {
	return 0
}
