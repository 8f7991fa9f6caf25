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
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/herlez-kurpicz/lce-go/hash"
	"github.com/herlez-kurpicz/lce-go/internal"
	"github.com/herlez-kurpicz/lce-go/sss"
)

// NewSemiSyncSetsParallel builds a SemiSyncSets index the same way
// NewSemiSyncSets does, except the synchronizing-set sampling pass (the
// only step of construction that is both the most expensive and trivially
// data-parallel: each text partition's sliding window only needs a
// 3*tau-byte overlap with its neighbor) is split across jobs workers and
// run with a fork-join errgroup.Group — first error wins.
//
// jobs <= 0 selects runtime.NumCPU(). Everything after sampling (sorting,
// SA-IS, Kasai LCP, RMQ) runs single-threaded exactly as in
// NewSemiSyncSets, since those steps need the complete, merged
// synchronizing set as input.
func NewSemiSyncSetsParallel(text []byte, tau int, base uint64, jobs int, preferLongQueries bool, emitFn ProgressFunc) (*SemiSyncSets, error) {
	n := len(text)

	if 3*tau > n {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	if jobs < 1 {
		jobs = 1
	}

	emit(emitFn, EvtConstructionStart, -1, int64(n))

	kr := hash.NewKarpRabin(text, base)

	limit := n - 3*tau // last valid window start, inclusive
	jobsPerTask := make([]uint, jobs)

	if _, err := internal.ComputeJobsPerTask(jobsPerTask, uint(limit+1), uint(jobs)); err != nil {
		return nil, err
	}

	s, err := parallelSample(text, tau, kr, limit, jobsPerTask, emitFn)

	if err != nil {
		return nil, err
	}

	emit(emitFn, EvtSSSSampled, -1, int64(len(s)))

	idx := finishSerialConstruction(text, tau, kr, s, preferLongQueries, emitFn)
	emit(emitFn, EvtConstructionEnd, -1, int64(n))
	return idx, nil
}

// parallelSample partitions [0, limit] into len(jobsPerTask) contiguous
// ranges sized per jobsPerTask, runs sss.Sampler.Compute over each
// (extended by 3*tau bytes of lookahead past the partition end so no window
// is truncated at a partition boundary) concurrently, and merges the per-partition results
// back into one ascending, deduplicated synchronizing set.
func parallelSample(text []byte, tau int, kr *hash.KarpRabin, limit int, jobsPerTask []uint, emitFn ProgressFunc) ([]int32, error) {
	partitions := make([][2]int, 0, len(jobsPerTask))
	start := 0

	for _, width := range jobsPerTask {
		if width == 0 {
			continue
		}

		end := start + int(width) // exclusive, over window-start positions [start, end)
		partitions = append(partitions, [2]int{start, end})
		start = end
	}

	results := make([][]int32, len(partitions))
	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())

	for idx, part := range partitions {
		idx, part := idx, part

		g.Go(func() error {
			lo, hi := part[0], part[1]
			textEnd := hi - 1 + 3*tau + 1 // one byte past the end of the last window [hi-1, hi-1+3tau)

			if textEnd > len(text) {
				textEnd = len(text)
			}

			sub := text[lo:textEnd]
			localKr := hash.NewKarpRabin(sub, kr.Base())
			sampler := sss.NewSampler(sub, tau, localKr)
			local := sampler.Compute()

			offset := int32(lo)
			out := make([]int32, 0, len(local))

			for _, p := range local {
				pos := p + offset

				if int(pos) >= lo && int(pos) < hi {
					out = append(out, pos)
				}
			}

			// Event delivery is serialized through the same mutex that
			// guards results, so a Listener attached to a parallel
			// construction never sees interleaved partial writes.
			mu.Lock()
			results[idx] = out
			emit(emitFn, EvtPartitionDone, idx, int64(len(out)))
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []int32

	for _, r := range results {
		merged = append(merged, r...)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })
	return merged, nil
}

// finishSerialConstruction runs the sort/SA-IS/LCP/RMQ tail of
// construction shared by both the serial and parallel entry points.
func finishSerialConstruction(text []byte, tau int, kr *hash.KarpRabin, s []int32, preferLongQueries bool, emitFn ProgressFunc) *SemiSyncSets {
	return newSemiSyncSetsFromSet(text, tau, kr, s, preferLongQueries, emitFn)
}
