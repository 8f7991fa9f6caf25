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

package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/herlez-kurpicz/lce-go"
)

// infoPrinter is a lce.Listener that prints one line per construction
// event to stderr, guarded by a mutex so concurrent SemiSyncSetsParallel
// workers never interleave partial writes.
type infoPrinter struct {
	mu sync.Mutex
}

func newInfoPrinter() *infoPrinter {
	return &infoPrinter{}
}

func (this *infoPrinter) ProcessEvent(evt *lce.Event) {
	this.mu.Lock()
	defer this.mu.Unlock()
	fmt.Fprintln(os.Stderr, evt.String())
}
