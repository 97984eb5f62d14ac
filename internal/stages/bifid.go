package stages

import (
	"golang.org/x/text/unicode/norm"

	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

const (
	bifidAlphabetStandard = "standard"
	bifidAlphabetBase64   = "base64"

	standardAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ" // 25 letters, J merged into I
	base64Alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

type bifidStage struct{}

func (bifidStage) Name() string          { return "bifid" }
func (bifidStage) Accepts(k payload.Kind) bool         { return k == payload.KindText }
func (bifidStage) ResultKind(k payload.Kind) payload.Kind { return payload.KindText }
func (bifidStage) HasAxis() bool         { return true }

func (bifidStage) Apply(p payload.Payload, keyIndex int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	text, ok := p.AsText()
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	if keyIndex < 0 || keyIndex >= len(dict) {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	key := norm.NFC.String(dict[keyIndex])

	variant := params.BifidAlphabet
	if variant == "" {
		variant = bifidAlphabetStandard
	}

	alphabet := standardAlphabet
	size := 5
	if variant == bifidAlphabetBase64 {
		alphabet = base64Alphabet
		size = 8
	}

	normalize := func(r rune) (rune, bool) {
		if variant == bifidAlphabetBase64 {
			for _, a := range alphabet {
				if a == r {
					return r, true
				}
			}
			return 0, false
		}
		if !isASCIILetter(r) {
			return 0, false
		}
		u := toUpperASCII(r)
		if u == 'J' {
			u = 'I'
		}
		return u, true
	}

	square := buildPolybiusSquare(key, alphabet, normalize)
	if len(square) != size*size {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	index := make(map[rune][2]int, len(square))
	for i, r := range square {
		index[r] = [2]int{i / size, i % size}
	}

	filtered := make([]rune, 0, len(text))
	for _, c := range text {
		if n, ok := normalize(c); ok {
			filtered = append(filtered, n)
		}
	}
	n := len(filtered)
	if n == 0 {
		return payload.Text(""), "bifid_key", metadata.Str(dict[keyIndex]), true
	}

	flat := make([]int, 2*n)
	for i, c := range filtered {
		rc, ok := index[c]
		if !ok {
			return payload.Payload{}, "", metadata.Value{}, false
		}
		flat[2*i] = rc[0]
		flat[2*i+1] = rc[1]
	}

	out := make([]rune, n)
	for i := 0; i < n; i++ {
		row := flat[i]
		col := flat[n+i]
		out[i] = square[row*size+col]
	}

	return payload.Text(string(out)), "bifid_key", metadata.Str(dict[keyIndex]), true
}

// buildPolybiusSquare lists the unique normalized key runes in order, then
// appends the remaining alphabet runes not already present.
func buildPolybiusSquare(key string, alphabet string, normalize func(rune) (rune, bool)) []rune {
	seen := make(map[rune]bool, len(alphabet))
	square := make([]rune, 0, len(alphabet))

	for _, c := range key {
		n, ok := normalize(c)
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		square = append(square, n)
	}
	for _, a := range alphabet {
		if seen[a] {
			continue
		}
		seen[a] = true
		square = append(square, a)
	}
	return square
}
