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

// Package internal holds the domain-agnostic helpers shared by every LCE
// index variant: unaligned block loads for the xor-accelerated scan,
// integer log2, construction job partitioning, and a single-sample
// memory-peak probe.
package internal

import (
	"encoding/binary"
	"errors"
	"runtime"
)

// LOG2 is an array with 256 elements: LOG2[x-1] = int(Math.log2(x)). Used by the RMQ
// sparse table to find the largest power of two spanning a range.
var LOG2 = [...]uint32{
	0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 8,
}

// Log2 returns a fast, integer floor value for log2(x).
func Log2(x uint32) (uint32, error) {
	if x == 0 {
		return 0, errors.New("cannot calculate log of a negative or null value")
	}

	return Log2NoCheck(x), nil
}

// Log2NoCheck does the same as Log2() minus a null check on input value
func Log2NoCheck(x uint32) uint32 {
	var res uint32

	if x >= 1<<16 {
		x >>= 16
		res = 16
	} else {
		res = 0
	}

	if x >= 1<<8 {
		x >>= 8
		res += 8
	}

	return res + LOG2[x-1]
}

// ComputeJobsPerTask computes the number of jobs associated with each task
// given a number of jobs available and a number of tasks to perform.
// The provided 'jobsPerTask' slice is returned as result.
//
// Used by the parallel construction variant to spread worker goroutines
// across text partitions.
func ComputeJobsPerTask(jobsPerTask []uint, jobs, tasks uint) ([]uint, error) {
	if tasks == 0 {
		return jobsPerTask, errors.New("invalid number of tasks provided: 0")
	}

	if jobs == 0 {
		return jobsPerTask, errors.New("invalid number of jobs provided: 0")
	}

	var q, r uint

	if jobs <= tasks {
		q = 1
		r = 0
	} else {
		q = jobs / tasks
		r = jobs - q*tasks
	}

	for i := range jobsPerTask {
		jobsPerTask[i] = q
	}

	n := uint(0)

	for r != 0 {
		jobsPerTask[n]++
		r--
		n++

		if n == tasks {
			n = 0
		}
	}

	return jobsPerTask, nil
}

// LoadU64LE reads 8 bytes starting at offset off as a little-endian uint64.
// Works at any alignment: encoding/binary never assumes a pointer is
// word-aligned.
func LoadU64LE(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// LoadU128LE reads 16 bytes starting at offset off as a pair of
// little-endian uint64s (lo, hi), the Go stand-in for an unaligned 128-bit
// load: lo holds bytes [off, off+8), hi holds bytes [off+8, off+16).
func LoadU128LE(b []byte, off int) (lo, hi uint64) {
	return binary.LittleEndian.Uint64(b[off : off+8]), binary.LittleEndian.Uint64(b[off+8 : off+16])
}

// MemoryProbe samples the Go runtime's heap counters, giving the benchmark
// CLI a single before/after measurement of heap growth per construction
// call.
type MemoryProbe struct {
	before runtime.MemStats
}

// NewMemoryProbe captures the current heap statistics as the baseline.
func NewMemoryProbe() *MemoryProbe {
	this := &MemoryProbe{}
	runtime.ReadMemStats(&this.before)
	return this
}

// CurrentBytes returns heap bytes allocated since the probe was created.
func (this *MemoryProbe) CurrentBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	if m.HeapAlloc < this.before.HeapAlloc {
		return 0
	}

	return m.HeapAlloc - this.before.HeapAlloc
}

// PeakBytes returns the largest heap size observed by the runtime since
// process start (Go does not expose a per-interval peak directly, so this
// is the closest available approximation of spec's malloc_count_peak()).
func (this *MemoryProbe) PeakBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapSys
}
