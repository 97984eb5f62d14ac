package stages

import (
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

// reverseStage byte-reverses (or character-reverses, for text) its input. It
// is the one stage that preserves whichever kind it was given rather than
// declaring a single fixed input/output kind, and it takes no parameter.
type reverseStage struct{}

func (reverseStage) Name() string { return "reverse" }

func (reverseStage) Accepts(k payload.Kind) bool {
	return k == payload.KindText || k == payload.KindBytes
}

func (reverseStage) ResultKind(k payload.Kind) payload.Kind {
	return k
}

func (reverseStage) HasAxis() bool { return false }

func (reverseStage) Apply(p payload.Payload, axisValue int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	switch p.Kind() {
	case payload.KindText:
		text, _ := p.AsText()
		runes := []rune(text)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return payload.Text(string(runes)), "", metadata.Value{}, true
	case payload.KindBytes:
		b, _ := p.AsBytes()
		out := make([]byte, len(b))
		for i, v := range b {
			out[len(b)-1-i] = v
		}
		return payload.Bytes(out), "", metadata.Value{}, true
	default:
		return payload.Payload{}, "", metadata.Value{}, false
	}
}
