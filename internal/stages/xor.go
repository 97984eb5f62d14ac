package stages

import (
	"strings"

	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

// xorStage applies repeating-key XOR, one candidate key per dictionary
// entry. It accepts either Text or Bytes (UTF-8 encoding Text on the
// way in) because a preceding stage such as caesar always produces
// Text, and xor is commonly the last stage before scoring coerces the
// result to bytes anyway; it always produces Bytes, since XORing text
// against an arbitrary key rarely yields valid UTF-8.
type xorStage struct{}

func (xorStage) Name() string                           { return "xor" }
func (xorStage) Accepts(k payload.Kind) bool             { return k == payload.KindText || k == payload.KindBytes }
func (xorStage) ResultKind(k payload.Kind) payload.Kind  { return payload.KindBytes }
func (xorStage) HasAxis() bool                           { return true }

func (xorStage) Apply(p payload.Payload, keyIndex int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	in := p.ToBytes()
	if keyIndex < 0 || keyIndex >= len(dict) {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	// spec section 4.3: "repeating-key XOR using the UTF-8 encoding of
	// key_string (invalid bytes dropped)".
	key := []byte(strings.ToValidUTF8(dict[keyIndex], ""))
	if len(key) == 0 {
		return payload.Payload{}, "", metadata.Value{}, false
	}

	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = b ^ key[i%len(key)]
	}
	return payload.Bytes(out), "xor_key", metadata.Str(dict[keyIndex]), true
}
