/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sais implements the induced-sorting suffix array construction
// algorithm (Nong, Zhang, Chen) over a small integer alphabet. It builds
// the reduced-text suffix array over the rank sequence induced by the
// synchronizing-set radix sort.
//
// Given an integer sequence over alphabet [0, sigma) with a terminating 0
// strictly smaller than every other symbol, it returns the
// lexicographically sorted suffix array in O(n) time. This file is
// adapted from the suffix-array half of kanzi-go's BWT construction
// (transform/SA_IS.go); the BWT-specific bucket-scatter path (computeBWT,
// the isbwt branch) has no use here and was dropped, since an LCE index
// never needs the Burrows-Wheeler permutation, only SA/ISA.
package sais

func getCounts(src []int32, dst []int32, n, k int) {
	for i := 0; i < k; i++ {
		dst[i] = 0
	}

	for i := 0; i < n; i++ {
		dst[src[i]]++
	}
}

func getBuckets(src []int32, dst []int32, k int, end bool) {
	sum := int32(0)

	if end {
		for i := 0; i < k; i++ {
			sum += src[i]
			dst[i] = sum
		}
	} else {
		for i := 0; i < k; i++ {
			tmp := src[i]
			dst[i] = sum
			sum += tmp
		}
	}
}

// sortLMSSuffixes sorts all LMS-type suffixes (stage 1 helper).
func sortLMSSuffixes(src []int32, sa []int32, ptrC *[]int32, ptrB *[]int32, n, k int) {
	if ptrC == ptrB {
		getCounts(src, *ptrC, n, k)
	}

	B := *ptrB
	C := *ptrC

	getBuckets(C, B, k, false)

	j := int32(n - 1)
	c1 := src[j]
	b := B[c1]
	j--

	if src[j] < c1 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}

	b++

	for i := 0; i < n; i++ {
		j = sa[i]

		if j > 0 {
			c0 := src[j]

			if c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}

			j--

			if src[j] < c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}

			b++
			sa[i] = 0
		} else if j < 0 {
			sa[i] = ^j
		}
	}

	if ptrC == ptrB {
		getCounts(src, C, n, k)
	}

	getBuckets(C, B, k, true)
	c1 = 0
	b = B[c1]

	for i := n - 1; i >= 0; i-- {
		j = sa[i]

		if j <= 0 {
			continue
		}

		c0 := src[j]

		if c0 != c1 {
			B[c1] = b
			c1 = c0
			b = B[c1]
		}

		j--
		b--

		if src[j] > c1 {
			sa[b] = ^(j + 1)
		} else {
			sa[b] = j
		}

		sa[i] = 0
	}
}

// postProcessLMS compacts the sorted LMS-substrings and names them,
// returning the number of distinct names found.
func postProcessLMS(src []int32, sa []int32, n, m int) int {
	i := 0
	j := 0

	for p := sa[i]; p < 0; i++ {
		sa[i] = ^p
		p = sa[i+1]
	}

	if i < m {
		j = i
		i++

		for {
			p := sa[i]
			i++

			if p >= 0 {
				continue
			}

			sa[j] = ^p
			sa[i-1] = 0
			j++

			if j == m {
				break
			}
		}
	}

	ii := n - 2
	jj := n - 1
	c0 := src[n-2]
	c1 := src[n-1]

	if ii >= 0 {
		for c0 >= c1 {
			c1 = c0
			ii--

			if ii < 0 {
				break
			}

			c0 = src[ii]
		}
	}

	for ii >= 0 {
		c1 = c0
		ii--

		if ii < 0 {
			break
		}

		c0 = src[ii]

		for c0 <= c1 {
			c1 = c0
			ii--

			if ii < 0 {
				break
			}

			c0 = src[ii]
		}

		if ii < 0 {
			break
		}

		sa[m+((ii+1)>>1)] = int32(jj - ii)
		jj = ii + 1
		c1 = c0
		ii--

		if ii >= 0 {
			c0 = src[ii]

			for c0 >= c1 {
				c1 = c0
				ii--

				if ii < 0 {
					break
				}

				c0 = src[ii]
			}
		}
	}

	name := 0
	q := int32(n)
	qlen := int32(0)

	for k := 0; k < m; k++ {
		p := sa[k]
		plen := sa[m+int(p>>1)]
		diff := true

		if plen == qlen && q+plen < int32(n) {
			jj = 0

			for int32(jj) < plen && src[p+int32(jj)] == src[q+int32(jj)] {
				jj++
			}

			if int32(jj) == plen {
				diff = false
			}
		}

		if diff {
			name++
			q = p
			qlen = plen
		}

		sa[m+int(p>>1)] = int32(name)
	}

	return name
}

// induceSuffixArray performs the induced sort pass (stage 3 helper).
func induceSuffixArray(src []int32, sa []int32, ptrBuf1 *[]int32, ptrBuf2 *[]int32, n int, k int) {
	buf1 := *ptrBuf1
	buf2 := *ptrBuf2

	if ptrBuf1 == ptrBuf2 {
		getCounts(src, buf1, n, k)
	}

	getBuckets(buf1, buf2, k, false)

	j := int32(n - 1)
	c1 := src[j]
	b := buf2[c1]

	if j > 0 && src[j-1] < c1 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}

	b++

	for i := 0; i < n; i++ {
		j = sa[i]
		sa[i] = ^j

		if j <= 0 {
			continue
		}

		j--
		c0 := src[j]

		if c0 != c1 {
			buf2[c1] = b
			c1 = c0
			b = buf2[c1]
		}

		if j > 0 && src[j-1] < c1 {
			sa[b] = ^j
		} else {
			sa[b] = j
		}

		b++
	}

	if ptrBuf1 == ptrBuf2 {
		getCounts(src, buf1, n, k)
	}

	getBuckets(buf1, buf2, k, true)
	c1 = 0
	b = buf2[c1]

	for i := n - 1; i >= 0; i-- {
		j = sa[i]

		if j <= 0 {
			sa[i] = ^j
			continue
		}

		j--
		c0 := src[j]

		if c0 != c1 {
			buf2[c1] = b
			c1 = c0
			b = buf2[c1]
		}

		b--

		if j == 0 || src[j-1] > c1 {
			sa[b] = ^j
		} else {
			sa[b] = j
		}
	}
}

// ComputeSuffixArray computes the suffix array of data[0..n) over alphabet
// [0, k) and writes it into sa. data must be at least n+fs long (fs is
// scratch space reused from the caller's sa buffer); the recursion on the
// reduced problem reuses sa itself as scratch, the classic SA-IS space
// trick, so peak extra memory is O(1) words beyond sa.
func ComputeSuffixArray(data []int32, sa []int32, fs int, n int, k int) {
	var B, C []int32
	var ptrB, ptrC *[]int32
	flags := 0

	if k <= 256 {
		C = make([]int32, k)
		ptrC = &C

		if k <= fs {
			B = sa[n+fs-k:]
			flags = 1
		} else {
			B = make([]int32, k)
			flags = 3
		}

		ptrB = &B
	} else if k <= fs {
		C = sa[n+fs-k:]
		ptrC = &C

		if k <= fs-k {
			B = sa[n+fs-(k+k):]
			ptrB = &B
			flags = 0
		} else if k <= 1024 {
			B = make([]int32, k)
			ptrB = &B
			flags = 2
		} else {
			ptrB = ptrC
			B = *ptrB
			flags = 8
		}
	} else {
		B = make([]int32, k)
		ptrB = &B
		ptrC = ptrB
		C = *ptrC
		flags = 12
	}

	// stage 1: reduce the problem by at least 1/2, sort all LMS-substrings
	getCounts(data, C, n, k)
	getBuckets(C, B, k, true)

	for ii := 0; ii < n; ii++ {
		sa[ii] = 0
	}

	b := int32(-1)
	i := n - 1
	j := n
	m := 0
	c0 := data[n-1]
	c1 := c0

	for c0 >= c1 {
		c1 = c0
		i--

		if i < 0 {
			break
		}

		c0 = data[i]
	}

	for i >= 0 {
		for {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = data[i]

			if c0 > c1 {
				break
			}
		}

		if i < 0 {
			break
		}

		if b >= 0 {
			sa[b] = int32(j)
		}

		B[c1]--
		b = B[c1]
		j = i
		m++

		for {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = data[i]

			if c0 < c1 {
				break
			}
		}
	}

	name := 0

	if m > 1 {
		sortLMSSuffixes(data, sa, ptrC, ptrB, n, k)
		name = postProcessLMS(data, sa, n, m)
	} else if m == 1 {
		sa[b] = int32(j + 1)
		name = 1
	}

	// stage 2: solve the reduced problem, recurse if names are not yet unique
	if name < m {
		newfs := (n + fs) - (m + m)

		if flags&13 == 0 {
			if k+name <= newfs {
				newfs -= k
			} else {
				flags |= 8
			}
		}

		j = m + m + newfs - 1

		for ii := m + (n >> 1) - 1; ii >= m; ii-- {
			if sa[ii] != 0 {
				sa[j] = sa[ii] - 1
				j--
			}
		}

		ComputeSuffixArray(sa[m+newfs:], sa, newfs, m, name)

		i = n - 1
		j = m + m - 1
		c0 = data[i]

		for {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = data[i]

			if c0 < c1 {
				break
			}
		}

		for i >= 0 {
			for {
				c1 = c0
				i--

				if i < 0 {
					break
				}

				c0 = data[i]

				if c0 > c1 {
					break
				}
			}

			if i < 0 {
				break
			}

			sa[j] = int32(i + 1)
			j--

			for {
				c1 = c0
				i--

				if i < 0 {
					break
				}

				c0 = data[i]

				if c0 < c1 {
					break
				}
			}
		}

		for ii := 0; ii < m; ii++ {
			sa[ii] = sa[m+int(sa[ii])]
		}

		if flags&4 != 0 {
			B = make([]int32, k)
			ptrB = &B
			ptrC = ptrB
			C = *ptrC
		} else if flags&2 != 0 {
			B = make([]int32, k)
			ptrB = &B
		}
	}

	// stage 3: induce the result for the original problem
	if flags&8 != 0 {
		getCounts(data, C, n, k)
	}

	if m > 1 {
		getBuckets(C, B, k, true)
		i = m - 1
		j = n
		p := sa[m-1]
		c1 = data[p]

		for {
			c0 = c1
			q := B[c0]

			for q < int32(j) {
				j--
				sa[j] = 0
			}

			for {
				j--
				sa[j] = p
				i--

				if i < 0 {
					break
				}

				p = sa[i]
				c1 = data[p]

				if c1 != c0 {
					break
				}
			}

			if i < 0 {
				break
			}
		}

		for j > 0 {
			j--
			sa[j] = 0
		}
	}

	induceSuffixArray(data, sa, ptrC, ptrB, n, k)
}

// Compute expects r, an integer sequence over alphabet [0, sigma) already
// terminated with a sentinel 0 strictly smaller than every other symbol,
// and returns the lex-sorted suffix array of r (same length as r,
// sentinel suffix included at index 0).
func Compute(r []int32, sigma int) []int32 {
	n := len(r)
	sa := make([]int32, n)

	if n == 0 {
		return sa
	}

	if n == 1 {
		sa[0] = 0
		return sa
	}

	ComputeSuffixArray(r, sa, 0, n, sigma)
	return sa
}

// BuildInduced takes ranks, the rank sequence induced by the radix sort,
// without a sentinel. It appends the sentinel, runs SA-IS, and strips the
// sentinel back out so that the returned SA'/ISA' satisfy
// ISA'[SA'[k]] = k over exactly [0, len(ranks)).
func BuildInduced(ranks []int32, sigma int) (saPrime []int32, isaPrime []int32) {
	withSentinel := make([]int32, len(ranks)+1)
	copy(withSentinel, ranks)
	withSentinel[len(ranks)] = 0

	sa := Compute(withSentinel, sigma+1)

	// sa[0] is always the sentinel's own suffix (value 0 is the unique
	// minimum), so SA' is sa[1:] and ranks shift down by one.
	saPrime = sa[1:]
	isaPrime = make([]int32, len(ranks))

	for k, p := range saPrime {
		isaPrime[p] = int32(k)
	}

	return saPrime, isaPrime
}
