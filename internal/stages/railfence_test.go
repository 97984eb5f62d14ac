package stages

import (
	"testing"

	"github.com/cipherpipe/solver/internal/payload"
)

// railfenceEncrypt is the forward zigzag transposition: write runes down and
// up across rails rows, then read each rail left to right. It mirrors
// railfenceDecrypt's zigzag assignment so the two are inverses.
func railfenceEncrypt(plaintext string, rails int) string {
	runes := []rune(plaintext)
	n := len(runes)
	if n == 0 {
		return ""
	}
	railOf := make([]int, n)
	rail, dir := 0, 1
	for i := 0; i < n; i++ {
		railOf[i] = rail
		if rail == 0 {
			dir = 1
		} else if rail == rails-1 {
			dir = -1
		}
		rail += dir
	}
	out := make([]rune, 0, n)
	for r := 0; r < rails; r++ {
		for i, rr := range railOf {
			if rr == r {
				out = append(out, runes[i])
			}
		}
	}
	return string(out)
}

func TestRailfenceRoundTrip(t *testing.T) {
	plain := "THE MAN WAS HERE"
	stage := railfenceStage{}
	for rails := 2; rails <= 8; rails++ {
		cipher := railfenceEncrypt(plain, rails)
		out, label, value, ok := stage.Apply(payload.Text(cipher), rails-2, nil, RunParams{})
		if !ok {
			t.Fatalf("rails %d: Apply returned ok=false", rails)
		}
		got, _ := out.AsText()
		if got != plain {
			t.Errorf("rails %d: got %q, want %q", rails, got, plain)
		}
		if label != "railfence_rails" || value.Int() != rails {
			t.Errorf("rails %d: metadata = %s:%v", rails, label, value)
		}
	}
}

func TestRailfenceEmptyInput(t *testing.T) {
	stage := railfenceStage{}
	out, _, _, ok := stage.Apply(payload.Text(""), 0, nil, RunParams{})
	if !ok {
		t.Fatal("Apply returned ok=false")
	}
	got, _ := out.AsText()
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
