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

package hash

import "math/bits"

// _KR_PRIME is the Mersenne prime 2^61-1 used as the Karp-Rabin modulus.
// Reduction modulo a Mersenne prime folds to a shift-and-add plus one
// conditional subtract, far cheaper than a general modulo.
const _KR_PRIME = uint64(1)<<61 - 1

// KarpRabin is a polynomial (Karp-Rabin) fingerprint table over a borrowed
// text: phi(X) = sum X[i] * B^(|X|-1-i) mod p, p = 2^61-1. It supports O(1)
// fingerprint of any substring once built, and O(1) extend-right/pop-left
// for the streaming sss.Sampler window.
//
// Collisions are possible; this type is a performance hint, never a
// correctness dependency — callers that need an exact answer always fall
// back to a byte comparison when two fingerprints agree.
type KarpRabin struct {
	base   uint64
	prefix []uint64 // prefix[i] = phi(T[0..i)) mod p
	powers []uint64 // powers[i] = B^i mod p
}

// NewKarpRabin builds the prefix-fingerprint and power tables for text,
// using base as the polynomial base (caller-seedable for determinism; 0
// and 1 are rejected because they degenerate the polynomial).
func NewKarpRabin(text []byte, base uint64) *KarpRabin {
	this := &KarpRabin{}
	base %= _KR_PRIME

	if base < 2 {
		base = 2
	}

	this.base = base
	n := len(text)
	this.prefix = make([]uint64, n+1)
	this.powers = make([]uint64, n+1)
	this.powers[0] = 1

	for i := 0; i < n; i++ {
		this.prefix[i+1] = krReduce(krMul(this.prefix[i], base) + uint64(text[i]))
		this.powers[i+1] = krReduce(krMul(this.powers[i], base))
	}

	return this
}

// Base returns the polynomial base used to build this table.
func (this *KarpRabin) Base() uint64 {
	return this.base
}

// Fingerprint returns phi(T[a:b)) in O(1).
func (this *KarpRabin) Fingerprint(a, b int) uint64 {
	if b <= a {
		return 0
	}

	// phi(T[a:b)) = prefix[b] - prefix[a]*B^(b-a) (mod p)
	sub := krMul(this.prefix[a], this.powers[b-a])
	return krSub(this.prefix[b], krReduce(sub))
}

// Extend returns the fingerprint obtained by appending byte c to the
// fingerprint h of a string of length length, in O(1).
func (this *KarpRabin) Extend(h uint64, length int, c byte) uint64 {
	return krReduce(krMul(h, this.base) + uint64(c))
}

// PopLeft returns the fingerprint obtained by removing the leftmost byte c
// from the fingerprint h of a string of length length, in O(1).
func (this *KarpRabin) PopLeft(h uint64, length int, c byte) uint64 {
	lead := krMul(uint64(c), this.powers[length-1])
	return krSub(h, krReduce(lead))
}

// Concat returns phi(X·Y) given phi(X), |Y| and phi(Y), in O(1).
func (this *KarpRabin) Concat(hx uint64, lenY int, hy uint64) uint64 {
	return krReduce(krMul(hx, this.powers[lenY]) + hy)
}

// krMul multiplies two values already reduced mod p, folding the 128-bit
// product with the Mersenne shift-and-add identity: a ≡ (a&p) + (a>>61).
func krMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// (hi:lo) represents hi*2^64 + lo; reduce mod 2^61-1 using
	// 2^64 ≡ 8 (mod 2^61-1), then fold with the shift-and-add identity.
	return krReduce(krReduce(lo) + krReduce(hi*8))
}

// krReduce folds a 64-bit accumulator modulo 2^61-1 using the Mersenne
// shift-and-add identity, followed by one conditional subtract.
func krReduce(a uint64) uint64 {
	a = (a & _KR_PRIME) + (a >> 61)

	if a >= _KR_PRIME {
		a -= _KR_PRIME
	}

	return a
}

// krSub computes (a-b) mod p for already-reduced a, b.
func krSub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}

	return a + _KR_PRIME - b
}
