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

// Package lce defines the top level interfaces and types used by the
// longest-common-extension index library.
//
// The implementations of the Index interface live in sub-packages: index
// (naive, semi-synchronizing-set and Prezza variants), sais (induced
// suffix-array construction), rmq (range-minimum query) and hash
// (Karp-Rabin fingerprinting).
package lce

const (
	ERR_INVALID_PARAM  = 1
	ERR_INPUT_TOO_SMALL = 2
	ERR_OUT_OF_MEMORY  = 3
	ERR_IO             = 4
	ERR_UNKNOWN        = 127
)

// AlgoKind selects which Index implementation Construct builds.
type AlgoKind int

const (
	// Naive answers every query with a direct byte scan.
	Naive AlgoKind = iota

	// NaiveXor answers every query with the xor-accelerated 8/16-byte
	// block scan.
	NaiveXor

	// SemiSyncSets is the tau-synchronizing-set index, serially
	// constructed.
	SemiSyncSets

	// SemiSyncSetsParallel is SemiSyncSets with a fork-join parallel
	// construction over text partitions.
	SemiSyncSetsParallel

	// Prezza answers queries via exponential Karp-Rabin binary search
	// with no auxiliary index structure.
	Prezza
)

// String returns the short CLI algorithm tag used by cmd/lcebench.
func (this AlgoKind) String() string {
	switch this {
	case Naive:
		return "n"
	case NaiveXor:
		return "nx"
	case SemiSyncSets:
		return "s"
	case SemiSyncSetsParallel:
		return "s_par"
	case Prezza:
		return "p"
	default:
		return "unknown"
	}
}

// Index answers longest-common-extension queries over a fixed text.
// Implementations borrow the text; it must outlive the Index and must not
// be mutated for the lifetime of the Index.
type Index interface {
	// Lce returns the length of the longest common prefix of the suffixes
	// starting at text positions i and j. If i == j it returns n-i.
	Lce(i, j uint64) uint64

	// CharAt returns the byte at text position i.
	CharAt(i uint64) byte

	// IsSmallerSuffix reports whether the suffix starting at i is
	// lexicographically smaller than the suffix starting at j.
	IsSmallerSuffix(i, j uint64) bool

	// SizeInBytes returns the approximate memory footprint of the index,
	// excluding the borrowed text itself.
	SizeInBytes() uint64
}

// Options configures Construct. The zero value selects the defaults
// documented per AlgoKind.
type Options struct {
	// KarpRabinBase seeds the Karp-Rabin polynomial base. Zero selects a
	// library default.
	KarpRabinBase uint64

	// Jobs is the number of parallel workers for SemiSyncSetsParallel.
	// Ignored by every other AlgoKind. Zero means runtime.NumCPU().
	Jobs int

	// PreferLongQueries builds the dense O(n) successor array instead of
	// doing an O(log|S|) binary search on every SemiSyncSets(Parallel)
	// query; worthwhile when queries heavily outnumber n.
	PreferLongQueries bool

	// Listener, if non-nil, receives construction progress events.
	Listener Listener
}

// Construct builds an Index over t using the given algorithm and
// tau (ignored by Naive, NaiveXor and Prezza).
func Construct(t []byte, algo AlgoKind, tau int, opts Options) (Index, error) {
	return construct(t, algo, tau, opts)
}
