// Package scoring measures how plausibly a decoded payload reads as
// English, producing a float in [0.0, 2.0] that the worker compares
// against a threshold (spec section 4.5).
package scoring

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed assets/english_freq.txt
var embeddedFreqTable string

//go:embed assets/common_words.txt
var embeddedWordList string

// chiSquaredNormalizer is the constant C in max(0, 1 - chi2/C). Chosen
// empirically against the embedded reference table so that a few
// paragraphs of natural English land around chi2/C ~= 0.1 (freq ~= 0.9)
// and a uniform-random printable-ASCII sample of a few hundred characters
// or more lands around chi2/C >= 1 (freq ~= 0). Shorter random samples
// score higher, since chi2 grows with the number of letters counted.
const chiSquaredNormalizer = 1200.0

// Table holds the reference data scoring needs, loaded once and shared
// read-only across workers.
type Table struct {
	freq  [26]float64 // expected percentage per letter, A=0..Z=25
	words map[string]struct{}
}

// Load parses the embedded reference frequency table and common-word
// list into a Table. It never fails: both resources are compiled into
// the binary and validated by the tests in this package.
func Load() Table {
	var t Table
	for _, line := range strings.Split(embeddedFreqTable, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 {
			continue
		}
		idx := int(fields[0][0] - 'A')
		if idx < 0 || idx > 25 {
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err == nil {
			t.freq[idx] = v
		}
	}

	t.words = make(map[string]struct{}, 700)
	for _, line := range strings.Split(embeddedWordList, "\n") {
		w := strings.ToUpper(strings.TrimSpace(line))
		if w != "" {
			t.words[w] = struct{}{}
		}
	}
	return t
}

// Score implements spec section 4.5 over raw bytes.
func (t Table) Score(data []byte) float64 {
	printable := printableRatio(data)
	if printable < 1.0 {
		return printable
	}

	freq := t.freqScore(data)
	words := t.wordScore(data)
	bonus := spaceBonus(data)

	english := 0.7*freq + 0.3*words + bonus
	if english < 0 {
		english = 0
	}
	if english > 1 {
		english = 1
	}
	return 1.0 + english
}

func printableRatio(data []byte) float64 {
	if len(data) == 0 {
		return 1.0
	}
	count := 0
	for _, b := range data {
		if (b >= 32 && b <= 126) || b == '\t' || b == '\n' || b == '\r' {
			count++
		}
	}
	return float64(count) / float64(len(data))
}

func (t Table) freqScore(data []byte) float64 {
	var observed [26]int
	total := 0
	for _, b := range data {
		c := b
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			observed[c-'A']++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	chi2 := 0.0
	for i := 0; i < 26; i++ {
		expected := t.freq[i] / 100.0 * float64(total)
		if expected <= 0 {
			continue
		}
		diff := float64(observed[i]) - expected
		chi2 += diff * diff / expected
	}

	score := 1.0 - chi2/chiSquaredNormalizer
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

func (t Table) wordScore(data []byte) float64 {
	tokens := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(tokens) == 0 {
		return 0
	}
	hits := 0
	for _, tok := range tokens {
		stripped := strings.ToUpper(strings.TrimFunc(tok, isPunct))
		if stripped == "" {
			continue
		}
		if _, ok := t.words[stripped]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(tokens))
}

func isPunct(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return false
	case r >= 'a' && r <= 'z':
		return false
	case r >= '0' && r <= '9':
		return false
	default:
		return true
	}
}

// spaceBonus is a triangular function of the space ratio: 0 outside
// [0.05, 0.35], rising linearly to 0.2 at 0.15, flat through 0.20, then
// falling linearly back to 0 at 0.35.
func spaceBonus(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	spaces := 0
	for _, b := range data {
		if b == ' ' {
			spaces++
		}
	}
	ratio := float64(spaces) / float64(len(data))

	switch {
	case ratio < 0.05 || ratio > 0.35:
		return 0
	case ratio < 0.15:
		return 0.2 * (ratio - 0.05) / 0.10
	case ratio <= 0.20:
		return 0.2
	default:
		return 0.2 * (0.35 - ratio) / 0.15
	}
}
