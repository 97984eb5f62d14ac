package stages

import (
	"encoding/base64"

	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

// b64Stage decodes standard Base64: Text -> Bytes. It never auto-detects
// whether upstream text happens to look base64-like; it is always applied
// as a strict decode step (spec section 9, Open Questions).
type b64Stage struct{}

func (b64Stage) Name() string          { return "b64" }
func (b64Stage) Accepts(k payload.Kind) bool         { return k == payload.KindText }
func (b64Stage) ResultKind(k payload.Kind) payload.Kind { return payload.KindBytes }
func (b64Stage) HasAxis() bool         { return false }

func (b64Stage) Apply(p payload.Payload, axisValue int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	text, ok := p.AsText()
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	return payload.Bytes(decoded), "", metadata.Value{}, true
}
