// Package pipeline parses and validates cipher stage chains and computes
// the per-stage parameter axes that together define a run's search space.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Stage names recognized anywhere a pipeline is parsed.
const (
	StageCaesar         = "caesar"
	StageBifid          = "bifid"
	StageColumnar       = "columnar"
	StageDoubleColumnar = "double_columnar"
	StageB64            = "b64"
	StageXOR            = "xor"
	StageRailfence      = "railfence"
	StageReverse        = "reverse"
)

// validStages is the fixed set a parsed pipeline's stage names must be drawn
// from (spec section 4.1).
var validStages = map[string]bool{
	StageCaesar:         true,
	StageBifid:          true,
	StageColumnar:       true,
	StageDoubleColumnar: true,
	StageB64:            true,
	StageXOR:            true,
	StageRailfence:      true,
	StageReverse:        true,
}

// Sentinel errors for the usage-error taxonomy (spec section 7).
var (
	ErrInvalidPipeline = errors.New("invalid pipeline")
	ErrEmptyDictionary = errors.New("dictionary required but empty")
	ErrSpaceTooLarge   = errors.New("parameter space too large")
)

// railfenceCardinality is the number of rail counts tried: 2..=30 inclusive.
const railfenceCardinality = 29

// caesarCardinality is the number of shifts tried: 0..25 inclusive.
const caesarCardinality = 26

// Parse splits pipelineStr on '>', trims each segment, rejects empty
// segments, and rejects names outside validStages.
func Parse(pipelineStr string) ([]string, error) {
	raw := strings.Split(pipelineStr, ">")
	stages := make([]string, 0, len(raw))
	for _, seg := range raw {
		name := strings.TrimSpace(seg)
		if name == "" {
			return nil, fmt.Errorf("%w: empty stage name in %q", ErrInvalidPipeline, pipelineStr)
		}
		if !validStages[name] {
			return nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidPipeline, name)
		}
		stages = append(stages, name)
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: pipeline must name at least one stage", ErrInvalidPipeline)
	}
	return stages, nil
}

// StageAxis is a single dimension of a pipeline's parameter space: the stage
// that contributes it and the number of distinct values it can take.
type StageAxis struct {
	Stage       string
	Cardinality int
}

// isKeyStage reports whether stage needs a non-empty key dictionary to have
// any axis at all.
func isKeyStage(stage string) bool {
	switch stage {
	case StageBifid, StageColumnar, StageXOR, StageDoubleColumnar:
		return true
	default:
		return false
	}
}

// Axes computes the ordered list of stage axes for a parsed pipeline given
// the number of keys available in the dictionary. Stages without a
// parameter (b64, reverse) contribute no axis.
func Axes(stages []string, nKeys int) ([]StageAxis, error) {
	axes := make([]StageAxis, 0, len(stages))
	for _, stage := range stages {
		if isKeyStage(stage) && nKeys == 0 {
			return nil, fmt.Errorf("%w: stage %q requires at least one dictionary key", ErrEmptyDictionary, stage)
		}
		switch stage {
		case StageCaesar:
			axes = append(axes, StageAxis{Stage: stage, Cardinality: caesarCardinality})
		case StageRailfence:
			axes = append(axes, StageAxis{Stage: stage, Cardinality: railfenceCardinality})
		case StageBifid, StageColumnar, StageXOR:
			axes = append(axes, StageAxis{Stage: stage, Cardinality: nKeys})
		case StageDoubleColumnar:
			axes = append(axes, StageAxis{Stage: stage, Cardinality: nKeys * nKeys})
		case StageB64, StageReverse:
			// no axis contributed
		}
	}
	return axes, nil
}

// RadixVector extracts the cardinalities from an axis list, in order.
func RadixVector(axes []StageAxis) []int {
	radix := make([]int, len(axes))
	for i, a := range axes {
		radix[i] = a.Cardinality
	}
	return radix
}

// TotalSpace computes the product of a radix vector (1 if it is empty),
// returning ErrSpaceTooLarge if the product overflows a reasonable int64
// budget before it finishes multiplying.
const maxSpace = int64(1) << 48

func TotalSpace(radix []int) (int64, error) {
	total := int64(1)
	for _, r := range radix {
		if r <= 0 {
			return 0, fmt.Errorf("%w: non-positive radix %d", ErrInvalidPipeline, r)
		}
		total *= int64(r)
		if total > maxSpace {
			return 0, fmt.Errorf("%w: parameter space exceeds %d tuples", ErrSpaceTooLarge, maxSpace)
		}
	}
	return total, nil
}
