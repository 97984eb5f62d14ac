package stages

import (
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

// caesarStage reverses a Caesar shift: text -> text, 26 candidate shifts.
type caesarStage struct{}

func (caesarStage) Name() string          { return "caesar" }
func (caesarStage) Accepts(k payload.Kind) bool         { return k == payload.KindText }
func (caesarStage) ResultKind(k payload.Kind) payload.Kind { return payload.KindText }
func (caesarStage) HasAxis() bool         { return true }

func (caesarStage) Apply(p payload.Payload, shift int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	text, ok := p.AsText()
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}

	out := make([]rune, 0, len(text))
	for _, c := range text {
		if isASCIILetter(c) {
			u := toUpperASCII(c)
			shifted := ((int(u)-'A'-shift)%26 + 26) % 26
			out = append(out, rune('A'+shifted))
		} else {
			out = append(out, c)
		}
	}

	return payload.Text(string(out)), "caesar_shift", metadata.Int(shift), true
}
