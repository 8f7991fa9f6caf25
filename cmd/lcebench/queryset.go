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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// queryBin is one length-binned group of (i, j) query pairs. A query-set
// file holds lines of the form "k i j" where k identifies which length
// bin the pair belongs to ("lce_k" naming), or a single global "lce_X"
// section with no k column.
type queryBin struct {
	label string
	pairs [][2]uint64
}

// readQuerySet parses a query-set file into its length bins, in file
// order. Blank lines and lines starting with '#' are skipped.
func readQuerySet(path string) ([]queryBin, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("opening query set: %w", err)
	}

	defer f.Close()

	bins := map[string]*queryBin{}
	var order []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		var label string
		var i, j uint64

		switch len(fields) {
		case 2:
			label = "lce_X"
			i, err = strconv.ParseUint(fields[0], 10, 64)

			if err == nil {
				j, err = strconv.ParseUint(fields[1], 10, 64)
			}

		case 3:
			label = "lce_" + fields[0]
			i, err = strconv.ParseUint(fields[1], 10, 64)

			if err == nil {
				j, err = strconv.ParseUint(fields[2], 10, 64)
			}

		default:
			return nil, fmt.Errorf("malformed query-set line: %q", line)
		}

		if err != nil {
			return nil, fmt.Errorf("malformed query-set line %q: %w", line, err)
		}

		b, ok := bins[label]

		if !ok {
			b = &queryBin{label: label}
			bins[label] = b
			order = append(order, label)
		}

		b.pairs = append(b.pairs, [2]uint64{i, j})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading query set: %w", err)
	}

	out := make([]queryBin, 0, len(order))

	for _, label := range order {
		out = append(out, *bins[label])
	}

	return out, nil
}
