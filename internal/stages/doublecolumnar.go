package stages

import (
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

// doubleColumnarStage reverses a two-round columnar transposition: the
// combined axis index factors into (keyIndex1, keyIndex2) = (idx/n, idx%n)
// over an n-key dictionary, and decryption applies columnar decryption with
// key2 first, then key1 (undoing the rounds in reverse order).
type doubleColumnarStage struct{}

func (doubleColumnarStage) Name() string          { return "double_columnar" }
func (doubleColumnarStage) Accepts(k payload.Kind) bool         { return k == payload.KindText }
func (doubleColumnarStage) ResultKind(k payload.Kind) payload.Kind { return payload.KindText }
func (doubleColumnarStage) HasAxis() bool         { return true }

func (doubleColumnarStage) Apply(p payload.Payload, idx int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	text, ok := p.AsText()
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	n := len(dict)
	if n == 0 {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	i1, i2 := idx/n, idx%n
	if i1 < 0 || i1 >= n || i2 < 0 || i2 >= n {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	key1, key2 := dict[i1], dict[i2]

	stage1, ok := columnarDecrypt(text, key2)
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	stage2, ok := columnarDecrypt(stage1, key1)
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}

	return payload.Text(stage2), "double_columnar_keys", metadata.StrPair(key1, key2), true
}
