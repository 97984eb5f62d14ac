package scoring

import (
	"math/rand"
	"testing"
)

func TestPrintableRatioBelowOneShortCircuits(t *testing.T) {
	tbl := Load()
	data := []byte{0x00, 0x01, 'A', 'B'}
	got := tbl.Score(data)
	if got >= 1.0 {
		t.Fatalf("expected printable-ratio branch (<1.0), got %v", got)
	}
	want := 2.0 / 4.0
	if got != want {
		t.Fatalf("Score(%v) = %v, want %v", data, got, want)
	}
}

func TestScoreFullyPrintableIsAtLeastOne(t *testing.T) {
	tbl := Load()
	got := tbl.Score([]byte("the quick brown fox jumps over the lazy dog"))
	if got < 1.0 {
		t.Fatalf("fully printable input should score >= 1.0, got %v", got)
	}
}

func TestScoreNaturalEnglishOutscoresGibberish(t *testing.T) {
	tbl := Load()
	english := []byte("the quick brown fox jumps over the lazy dog and then runs into the deep forest near the river")
	gibberish := []byte("zzxqjkvwpbfhgmcyxzqjkvwpbfhgmcyzzxqjkvwpbfhgmcyxzqjkvwpbfhgmcyz")

	eScore := tbl.Score(english)
	gScore := tbl.Score(gibberish)
	if eScore <= gScore {
		t.Fatalf("expected english score (%v) > gibberish score (%v)", eScore, gScore)
	}
}

func TestScoreIsBoundedByTwo(t *testing.T) {
	tbl := Load()
	got := tbl.Score([]byte("the and that with have this from they were when word what some time very about"))
	if got > 2.0 {
		t.Fatalf("score %v exceeds upper bound 2.0", got)
	}
}

func TestScoreEmptyInput(t *testing.T) {
	tbl := Load()
	got := tbl.Score(nil)
	if got != 1.0 {
		t.Fatalf("empty input: got %v, want 1.0 (fully printable, no english signal)", got)
	}
}

func TestSpaceBonusTriangularShape(t *testing.T) {
	cases := []struct {
		ratio float64
		want  float64
	}{
		{0.0, 0},
		{0.05, 0},
		{0.10, 0.1},
		{0.15, 0.2},
		{0.175, 0.2},
		{0.20, 0.2},
		{0.275, 0.1},
		{0.35, 0},
		{0.5, 0},
	}
	for _, c := range cases {
		n := 1000
		spaces := int(c.ratio * float64(n))
		data := make([]byte, n)
		for i := range data {
			if i < spaces {
				data[i] = ' '
			} else {
				data[i] = 'x'
			}
		}
		got := spaceBonus(data)
		if diff := got - c.want; diff > 0.01 || diff < -0.01 {
			t.Errorf("spaceBonus at ratio %.3f = %v, want ~%v", c.ratio, got, c.want)
		}
	}
}

func TestWordScoreCountsKnownWords(t *testing.T) {
	tbl := Load()
	got := tbl.wordScore([]byte("the, fox! jumps over qzxqzx"))
	if got <= 0 || got >= 1 {
		t.Fatalf("wordScore = %v, want strictly between 0 and 1 for a mixed token set", got)
	}
}

// TestScoreBoundsProperty checks 0.0 <= Score(x) <= 2.0 for any byte
// input (spec section 8, property 3) over randomly generated byte
// slices spanning the full byte range, not just printable ASCII.
func TestScoreBoundsProperty(t *testing.T) {
	tbl := Load()
	rng := rand.New(rand.NewSource(20260115))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(200)
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(rng.Intn(256))
		}
		got := tbl.Score(data)
		if got < 0.0 || got > 2.0 {
			t.Fatalf("trial %d: Score(%v) = %v, out of bounds [0,2]", trial, data, got)
		}
	}
}

// TestScoreBoundaryMonotonicityProperty checks the printable/non-printable
// boundary (spec section 8, property 4): any non-printable byte caps the
// score below 1.0, and fully printable input never scores below 1.0.
func TestScoreBoundaryMonotonicityProperty(t *testing.T) {
	tbl := Load()
	rng := rand.New(rand.NewSource(20260115))
	printable := "the quick brown fox jumps over lazy dog ETAOIN SHRDLU "
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(60)
		data := make([]byte, n)
		for i := range data {
			data[i] = printable[rng.Intn(len(printable))]
		}
		if got := tbl.Score(data); got < 1.0 {
			t.Fatalf("trial %d: fully printable %q scored %v, want >= 1.0", trial, data, got)
		}

		nonPrintable := []byte{0x00, 0x01, 0x07, 0x08, 0x0B, 0x0C, 0x1B, 0x7F, 0xFF}
		spoiled := append([]byte{}, data...)
		spoiled[rng.Intn(len(spoiled))] = nonPrintable[rng.Intn(len(nonPrintable))]
		if got := tbl.Score(spoiled); got >= 1.0 {
			t.Fatalf("trial %d: %q with a non-printable byte scored %v, want < 1.0", trial, spoiled, got)
		}
	}
}

func TestLoadPopulatesAllLetters(t *testing.T) {
	tbl := Load()
	for i := 0; i < 26; i++ {
		if tbl.freq[i] <= 0 {
			t.Errorf("letter %c has non-positive reference frequency %v", 'A'+rune(i), tbl.freq[i])
		}
	}
	if len(tbl.words) < 500 {
		t.Errorf("word list too small: got %d entries", len(tbl.words))
	}
}
