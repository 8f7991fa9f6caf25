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
	"time"

	"github.com/herlez-kurpicz/lce-go"
	"github.com/herlez-kurpicz/lce-go/internal"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])

	if err != nil {
		usage()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "lcebench:", err)
		os.Exit(1)
	}
}

func run(cfg *config) error {
	text, err := loadText(cfg.file, cfg.prefixLength)

	if err != nil {
		return err
	}

	algo, err := resolveAlgo(cfg.algorithm)

	if err != nil {
		return err
	}

	out := os.Stdout

	if cfg.outputPath != "" {
		f, err := os.OpenFile(cfg.outputPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)

		if err != nil {
			return fmt.Errorf("opening output path: %w", err)
		}

		defer f.Close()
		out = f
	}

	opts := lce.Options{
		Jobs:              cfg.jobs,
		PreferLongQueries: cfg.preferLongQueries,
		Listener:          newInfoPrinter(),
	}

	probe := internal.NewMemoryProbe()
	start := time.Now()
	idx, err := lce.Construct(text, algo, cfg.tau, opts)

	if err != nil {
		return fmt.Errorf("constructing index: %w", err)
	}

	constructMs := time.Since(start).Milliseconds()

	fmt.Fprintf(out, "RESULT type=construct algorithm=%s tau=%d n=%d time_ms=%d index_bytes=%d peak_bytes=%d%s\n",
		algo, cfg.tau, len(text), constructMs, idx.SizeInBytes(), probe.PeakBytes(), diagnosticFields(idx))

	if cfg.queries == "" {
		return nil
	}

	bins, err := readQuerySet(cfg.queries)

	if err != nil {
		return err
	}

	var reference lce.Index

	if cfg.check {
		reference, err = lce.Construct(text, lce.NaiveXor, 0, lce.Options{})

		if err != nil {
			return fmt.Errorf("constructing reference index: %w", err)
		}
	}

	return runQueries(out, idx, reference, bins, cfg)
}

func runQueries(out *os.File, idx, reference lce.Index, bins []queryBin, cfg *config) error {
	for binIdx, bin := range bins {
		if binIdx < cfg.from {
			continue
		}

		if cfg.to >= 0 && binIdx > cfg.to {
			break
		}

		for run := 0; run < cfg.runs; run++ {
			start := time.Now()
			mismatches := 0

			for _, pair := range bin.pairs {
				l := idx.Lce(pair[0], pair[1])

				if reference != nil && l != reference.Lce(pair[0], pair[1]) {
					mismatches++
				}
			}

			elapsed := time.Since(start).Microseconds()

			fmt.Fprintf(out, "RESULT type=query bin=%s run=%d queries=%d time_us=%d mismatches=%d\n",
				bin.label, run, len(bin.pairs), elapsed, mismatches)
		}
	}

	return nil
}

// checksummer is implemented by index.SemiSyncSets; asserted optionally so
// main.go never needs to import the index package just for this field.
type checksummer interface {
	Checksum() uint64
}

// blockHinter is implemented by index.NaiveIndex.
type blockHinter interface {
	BlockHint() int
}

func diagnosticFields(idx lce.Index) string {
	if c, ok := idx.(checksummer); ok {
		return fmt.Sprintf(" sss_checksum=%x", c.Checksum())
	}

	if b, ok := idx.(blockHinter); ok {
		return fmt.Sprintf(" block_hint=%d", b.BlockHint())
	}

	return ""
}

func resolveAlgo(tag string) (lce.AlgoKind, error) {
	switch tag {
	case "u", "n":
		return lce.Naive, nil
	case "nx":
		return lce.NaiveXor, nil
	case "p":
		return lce.Prezza, nil
	case "s":
		return lce.SemiSyncSets, nil
	case "s_par":
		return lce.SemiSyncSetsParallel, nil
	default:
		return lce.Naive, fmt.Errorf("unknown --algorithm %q", tag)
	}
}
