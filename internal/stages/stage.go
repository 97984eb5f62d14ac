// Package stages implements the cipher stage catalog: one pure transform per
// supported classical cipher, each declaring the payload kind it accepts and
// produces (spec section 4.3).
package stages

import (
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
	"github.com/cipherpipe/solver/internal/pipeline"
)

// RunParams carries the run-wide (non-enumerated) options a stage may need,
// such as the bifid alphabet variant chosen once for the whole run via
// --bifid_alphabet rather than searched over.
type RunParams struct {
	BifidAlphabet string
}

// Stage is a single cipher transform. Apply receives the axis value decoded
// for this stage (0 if the stage has no axis), the full key dictionary, and
// the run parameters; it returns the transformed payload plus the metadata
// label/value to record. ok is false on stage-internal failure (e.g. a
// malformed base64 string), signalling the executor to abort this tuple.
//
// Accepts/ResultKind model the input/output kind contract: most stages
// accept exactly one kind and always produce one fixed kind, but reverse
// accepts either kind and preserves it, so the contract is expressed as
// predicates rather than two fixed constants.
type Stage interface {
	Name() string
	Accepts(k payload.Kind) bool
	ResultKind(k payload.Kind) payload.Kind
	HasAxis() bool
	Apply(p payload.Payload, axisValue int, dict []string, params RunParams) (out payload.Payload, label string, value metadata.Value, ok bool)
}

// registry maps a stage name to its implementation. Built once at package
// init; pipeline.Parse has already rejected any name not present here.
var registry = map[string]Stage{
	pipeline.StageCaesar:         caesarStage{},
	pipeline.StageBifid:          bifidStage{},
	pipeline.StageColumnar:       columnarStage{},
	pipeline.StageDoubleColumnar: doubleColumnarStage{},
	pipeline.StageRailfence:      railfenceStage{},
	pipeline.StageB64:            b64Stage{},
	pipeline.StageXOR:            xorStage{},
	pipeline.StageReverse:        reverseStage{},
}

// Lookup returns the Stage implementation for a validated stage name.
func Lookup(name string) (Stage, bool) {
	s, ok := registry[name]
	return s, ok
}

// isASCIILetter reports whether r is an ASCII letter, independent of locale.
func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
