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

import "testing"

func TestBlockHintIsOneOfTheKnownStrides(t *testing.T) {
	idx := NewNaiveIndex([]byte("irrelevant"), XorAccelerated)
	hint := idx.BlockHint()

	if hint != 16 && hint != 32 {
		t.Fatalf("BlockHint() = %d, want 16 or 32", hint)
	}
}
