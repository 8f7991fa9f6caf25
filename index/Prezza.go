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

import "github.com/herlez-kurpicz/lce-go/hash"

// Prezza answers Lce queries with no auxiliary index structure beyond a
// Karp-Rabin fingerprint table: exponential doubling to bound the answer,
// binary search to pin it down to one fingerprint comparison, and a final
// byte-verification pass to rule out a fingerprint collision (component
// C11). Construction is O(n); query is O(log lce) fingerprint comparisons
// plus an O(lce) verification scan.
type Prezza struct {
	text []byte
	kr   *hash.KarpRabin
}

// NewPrezza builds a Prezza index over text, seeding the Karp-Rabin
// polynomial with base (0 selects the library default inside
// hash.NewKarpRabin).
func NewPrezza(text []byte, base uint64) *Prezza {
	return &Prezza{text: text, kr: hash.NewKarpRabin(text, base)}
}

// Lce returns the length of the longest common prefix of the suffixes
// starting at i and j.
func (this *Prezza) Lce(i, j uint64) uint64 {
	n := uint64(len(this.text))

	if i == j {
		return n - i
	}

	maxLen := n - i

	if n-j < maxLen {
		maxLen = n - j
	}

	if maxLen == 0 {
		return 0
	}

	lo := this.exponentialBound(i, j, maxLen)
	lo = this.verify(i, j, lo)
	return lo
}

// exponentialBound doubles a candidate length while the fingerprints of
// the two windows agree, then binary-searches the doubling interval down
// to the exact boundary — the standard Karp-Rabin LCE search.
func (this *Prezza) exponentialBound(i, j, maxLen uint64) uint64 {
	lo, step := uint64(0), uint64(1)

	for step <= maxLen && this.krEqual(i, j, step) {
		lo = step

		if step > maxLen-step {
			step = maxLen
			break
		}

		step *= 2
	}

	hi := step

	if hi > maxLen {
		hi = maxLen
	}

	for lo < hi {
		mid := lo + (hi-lo+1)/2

		if this.krEqual(i, j, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}

func (this *Prezza) krEqual(i, j, length uint64) bool {
	return this.kr.Fingerprint(int(i), int(i+length)) == this.kr.Fingerprint(int(j), int(j+length))
}

// verify re-scans byte by byte up to candidate, catching the rare
// fingerprint collision that would otherwise overstate the LCE. The cost
// is the same order as the answer itself, so this never changes the
// algorithm's asymptotic class.
func (this *Prezza) verify(i, j, candidate uint64) uint64 {
	k := uint64(0)

	for k < candidate && this.text[i+k] == this.text[j+k] {
		k++
	}

	return k
}

// CharAt returns the byte at text position i.
func (this *Prezza) CharAt(i uint64) byte {
	return this.text[i]
}

// IsSmallerSuffix reports whether suffix i is lexicographically smaller
// than suffix j.
func (this *Prezza) IsSmallerSuffix(i, j uint64) bool {
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

// SizeInBytes returns the memory footprint of the Karp-Rabin prefix and
// power tables.
func (this *Prezza) SizeInBytes() uint64 {
	return uint64(2*(len(this.text)+1)) * 8
}
