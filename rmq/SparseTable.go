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

// Package rmq answers range-minimum queries over a fixed array in O(1) time
// after an O(n log n) preprocessing step. It backs the LCP-array lookups
// that turn an SA'/ISA' range into an LCE answer.
package rmq

import "github.com/herlez-kurpicz/lce-go/internal"

// SparseTable is the classic Bender-Farach-Colton sparse table: table[k][i]
// holds the position of the minimum value in values[i : i+2^k). A query
// [l, r] is answered by overlapping two precomputed ranges of the same
// power-of-two length, giving O(1) query time at O(n log n) space.
type SparseTable struct {
	values []int32 // borrowed, never copied or mutated
	table  [][]int32
}

// NewSparseTable builds a sparse table over values, which must outlive the
// SparseTable (it is never copied, only indexed).
func NewSparseTable(values []int32) *SparseTable {
	this := &SparseTable{values: values}
	n := len(values)

	if n == 0 {
		this.table = [][]int32{}
		return this
	}

	levels := internal.Log2NoCheck(uint32(n)) + 1
	this.table = make([][]int32, levels)
	this.table[0] = make([]int32, n)

	for i := 0; i < n; i++ {
		this.table[0][i] = int32(i)
	}

	for k := uint32(1); k < levels; k++ {
		span := 1 << k
		half := span >> 1
		row := make([]int32, n-span+1)
		prev := this.table[k-1]

		for i := 0; i+span <= n; i++ {
			left := prev[i]
			right := prev[i+half]

			if values[left] <= values[right] {
				row[i] = left
			} else {
				row[i] = right
			}
		}

		this.table[k] = row
	}

	return this
}

// ArgMin returns the index of a minimal element in values[l:r+1] (ties
// broken toward the lower index, matching the order the two overlapping
// blocks are compared in). l and r must satisfy 0 <= l <= r < len(values).
func (this *SparseTable) ArgMin(l, r int) int32 {
	if l == r {
		return int32(l)
	}

	k := internal.Log2NoCheck(uint32(r - l + 1))
	row := this.table[k]
	span := 1 << k
	left := row[l]
	right := row[r-span+1]

	if this.values[left] <= this.values[right] {
		return left
	}

	return right
}

// Min returns the minimal value in values[l:r+1].
func (this *SparseTable) Min(l, r int) int32 {
	return this.values[this.ArgMin(l, r)]
}
