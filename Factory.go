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

package lce

import (
	"time"

	"github.com/herlez-kurpicz/lce-go/index"
)

// construct dispatches to the concrete Index implementation named by algo:
// one case per enum value, no fallthrough, unknown values rejected
// explicitly rather than silently defaulting.
func construct(t []byte, algo AlgoKind, tau int, opts Options) (Index, error) {
	if len(t) == 0 {
		return nil, NewError(ERR_INPUT_TOO_SMALL, "text must not be empty")
	}

	progress := adaptListener(opts.Listener)

	switch algo {
	case Naive:
		return index.NewNaiveIndex(t, index.Plain), nil

	case NaiveXor:
		return index.NewNaiveIndex(t, index.XorAccelerated), nil

	case Prezza:
		return index.NewPrezza(t, opts.KarpRabinBase), nil

	case SemiSyncSets:
		if tau <= 0 {
			return nil, NewError(ERR_INVALID_PARAM, "tau must be positive")
		}

		if 3*tau > len(t) {
			return nil, NewError(ERR_INPUT_TOO_SMALL, "3*tau must not exceed len(text)")
		}

		idx := index.NewSemiSyncSets(t, tau, opts.KarpRabinBase, opts.PreferLongQueries, progress)
		return idx, nil

	case SemiSyncSetsParallel:
		if tau <= 0 {
			return nil, NewError(ERR_INVALID_PARAM, "tau must be positive")
		}

		if 3*tau > len(t) {
			return nil, NewError(ERR_INPUT_TOO_SMALL, "3*tau must not exceed len(text)")
		}

		idx, err := index.NewSemiSyncSetsParallel(t, tau, opts.KarpRabinBase, opts.Jobs, opts.PreferLongQueries, progress)

		if err != nil {
			return nil, NewError(ERR_UNKNOWN, err.Error())
		}

		return idx, nil

	default:
		return nil, NewError(ERR_INVALID_PARAM, "unknown algorithm kind")
	}
}

// adaptListener wraps an lce.Listener as an index.ProgressFunc so the
// index package never needs to import the root package (avoiding an
// import cycle: the root package's Factory imports index).
func adaptListener(l Listener) index.ProgressFunc {
	if l == nil {
		return nil
	}

	return func(evt index.ProgressEvent) {
		l.ProcessEvent(NewEvent(evt.Type, evt.ID, evt.Size, time.Now()))
	}
}
