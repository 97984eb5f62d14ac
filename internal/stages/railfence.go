package stages

import (
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

// railfenceStage reverses a zigzag rail-fence transposition. Axis value
// 0..28 maps to rail counts 2..30.
type railfenceStage struct{}

func (railfenceStage) Name() string          { return "railfence" }
func (railfenceStage) Accepts(k payload.Kind) bool         { return k == payload.KindText }
func (railfenceStage) ResultKind(k payload.Kind) payload.Kind { return payload.KindText }
func (railfenceStage) HasAxis() bool         { return true }

func (railfenceStage) Apply(p payload.Payload, axisValue int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	text, ok := p.AsText()
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	rails := axisValue + 2

	out, ok := railfenceDecrypt(text, rails)
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	return payload.Text(out), "railfence_rails", metadata.Int(rails), true
}

func railfenceDecrypt(ciphertext string, rails int) (string, bool) {
	if rails < 2 {
		return "", false
	}
	runes := []rune(ciphertext)
	n := len(runes)
	if n == 0 {
		return "", true
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

	counts := make([]int, rails)
	for _, r := range railOf {
		counts[r]++
	}

	railData := make([][]rune, rails)
	pos := 0
	for r := 0; r < rails; r++ {
		railData[r] = runes[pos : pos+counts[r]]
		pos += counts[r]
	}

	cursor := make([]int, rails)
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		r := railOf[i]
		out[i] = railData[r][cursor[r]]
		cursor[r]++
	}
	return string(out), true
}
