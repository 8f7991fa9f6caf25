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

import "golang.org/x/sys/cpu"

// cpuBlockHint reports which unaligned-load stride best fits the host:
// 32 bytes when the CPU has AVX2 (two 16-byte block-loop iterations could
// be fused by the compiler into one wider load), 16 otherwise. This is a
// diagnostic only: lceXor always resolves matches at byte granularity via
// TrailingZeros64 regardless of the hint, so a wrong guess never affects
// correctness, only the self-reported stride in benchmark output.
func cpuBlockHint() int {
	if cpu.X86.HasAVX2 {
		return 32
	}

	return 16
}

// BlockHint reports the diagnostic block stride for this index's host, for
// display in benchmark output (e.g. cmd/lcebench's RESULT lines).
func (this *NaiveIndex) BlockHint() int {
	return cpuBlockHint()
}
