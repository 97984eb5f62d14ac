// Package dictionary loads the candidate-key file that feeds every
// axis-bearing stage with a list of strings to try.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Load reads one candidate key per line from path, trimming surrounding
// whitespace and skipping blank lines, and NFC-normalizing each entry
// (mirroring the normalization the keyed stages apply to the key they
// read back out of the dictionary, so equality comparisons in tests are
// meaningful). A line whose normalized form duplicates one already kept
// is skipped, so the result is an ordered list of distinct keys (spec.md
// §3: "an ordered list of distinct non-empty keys") and axis cardinality
// never counts the same key twice. If limit > 0, only the first limit
// distinct keys are kept.
func Load(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()

	var keys []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	// Dictionary files may contain long lines; grow the buffer past the
	// default 64KiB token size rather than truncating entries.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(norm.NFC.String(scanner.Text()))
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		keys = append(keys, line)
		if limit > 0 && len(keys) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return keys, nil
}
