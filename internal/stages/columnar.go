package stages

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
)

type columnarStage struct{}

func (columnarStage) Name() string          { return "columnar" }
func (columnarStage) Accepts(k payload.Kind) bool         { return k == payload.KindText }
func (columnarStage) ResultKind(k payload.Kind) payload.Kind { return payload.KindText }
func (columnarStage) HasAxis() bool         { return true }

func (columnarStage) Apply(p payload.Payload, keyIndex int, dict []string, params RunParams) (payload.Payload, string, metadata.Value, bool) {
	text, ok := p.AsText()
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	if keyIndex < 0 || keyIndex >= len(dict) {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	key := dict[keyIndex]

	out, ok := columnarDecrypt(text, key)
	if !ok {
		return payload.Payload{}, "", metadata.Value{}, false
	}
	return payload.Text(out), "columnar_key", metadata.Str(key), true
}

// strippedKeyOrder strips non-letters from key, uppercases it, and returns
// the column-read order: order[rank] is the original column index whose
// stripped key character has that rank, ties broken by left-to-right
// position (a stable sort achieves this).
func strippedKeyOrder(key string) []int {
	key = norm.NFC.String(key)
	letters := make([]rune, 0, len(key))
	for _, c := range key {
		if isASCIILetter(c) {
			letters = append(letters, toUpperASCII(c))
		}
	}
	n := len(letters)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return letters[order[i]] < letters[order[j]]
	})
	return order
}

// columnHeights computes, for nCols columns and an L-rune ciphertext, how
// many rows each original column holds: the first `numLong` columns (in
// original left-to-right order) get ceil(L/nCols) rows, the rest get one
// fewer.
func columnHeights(nCols, total int) (heights []int, numRows int) {
	if nCols == 0 {
		return nil, 0
	}
	numRows = (total + nCols - 1) / nCols
	numLong := total - (numRows-1)*nCols
	heights = make([]int, nCols)
	for c := 0; c < nCols; c++ {
		if c < numLong {
			heights[c] = numRows
		} else {
			heights[c] = numRows - 1
		}
	}
	return heights, numRows
}

func columnarDecrypt(ciphertext, key string) (string, bool) {
	order := strippedKeyOrder(key)
	nCols := len(order)
	if nCols == 0 {
		return "", false
	}

	runes := []rune(ciphertext)
	total := len(runes)
	if total == 0 {
		return "", true
	}

	heights, numRows := columnHeights(nCols, total)
	columns := make([][]rune, nCols)
	pos := 0
	for _, col := range order {
		h := heights[col]
		if pos+h > total {
			return "", false
		}
		columns[col] = runes[pos : pos+h]
		pos += h
	}

	out := make([]rune, 0, total)
	for row := 0; row < numRows; row++ {
		for col := 0; col < nCols; col++ {
			if row < heights[col] {
				out = append(out, columns[col][row])
			}
		}
	}
	return string(out), true
}
