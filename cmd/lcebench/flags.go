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

// Command lcebench builds an LCE index over a file and benchmarks it
// against a query-set file: file, output_path, prefix_length, algorithm,
// prefer_long_queries, check, queries, runs, from and to control what gets
// built and measured.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// config holds the parsed command-line flags.
type config struct {
	file              string
	outputPath        string
	prefixLength      int64
	algorithm         string
	tau               int
	preferLongQueries bool
	check             bool
	queries           string
	runs              int
	from              int
	to                int
	jobs              int
}

func parseFlags(args []string) (*config, error) {
	fs := pflag.NewFlagSet("lcebench", pflag.ContinueOnError)
	cfg := &config{}

	fs.StringVar(&cfg.file, "file", "", "input text file (required)")
	fs.StringVar(&cfg.outputPath, "output_path", "", "path to append RESULT lines to (default: stdout)")
	fs.Int64Var(&cfg.prefixLength, "prefix_length", 0, "truncate the input to this many bytes (0 = whole file)")
	fs.StringVar(&cfg.algorithm, "algorithm", "s", "u|n|nx|p|s{256,512,1024,2048}[_par]")
	fs.BoolVar(&cfg.preferLongQueries, "prefer_long_queries", false, "build the dense successor array instead of binary search")
	fs.BoolVar(&cfg.check, "check", false, "cross-check results against the naive index")
	fs.StringVar(&cfg.queries, "queries", "", "query-set file (lce_k / lce_X format)")
	fs.IntVar(&cfg.runs, "runs", 1, "number of repetitions per query set")
	fs.IntVar(&cfg.from, "from", 0, "first query-set bin to run (inclusive)")
	fs.IntVar(&cfg.to, "to", -1, "last query-set bin to run, inclusive (-1 = all)")
	fs.IntVar(&cfg.jobs, "jobs", 0, "parallel construction workers for *_par algorithms (0 = NumCPU)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.file == "" {
		return nil, fmt.Errorf("--file is required")
	}

	cfg.tau, cfg.algorithm = parseAlgorithmTag(cfg.algorithm)
	return cfg, nil
}

// parseAlgorithmTag splits the "s{tau}[_par]" family of tags into a tau
// value and a bare algorithm tag; every other tag is returned unchanged
// with tau defaulting to 0 (ignored by non-synchronizing-set algorithms).
func parseAlgorithmTag(tag string) (tau int, bare string) {
	suffix := ""
	base := tag

	if len(tag) > 4 && tag[len(tag)-4:] == "_par" {
		suffix = "_par"
		base = tag[:len(tag)-4]
	}

	if len(base) > 1 && base[0] == 's' {
		switch base {
		case "s256":
			return 256, "s" + suffix
		case "s512":
			return 512, "s" + suffix
		case "s1024":
			return 1024, "s" + suffix
		case "s2048":
			return 2048, "s" + suffix
		}
	}

	return 0, tag
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lcebench --file PATH [--algorithm TAG] [--queries PATH] ...")
}
