// Package executor threads a payload and its metadata through one parsed
// pipeline for a single decoded parameter tuple (spec section 4.4).
package executor

import (
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
	"github.com/cipherpipe/solver/internal/pipeline"
	"github.com/cipherpipe/solver/internal/stages"
)

// Executor runs a fixed, parsed pipeline against a starting payload for
// many parameter tuples. It holds no per-run mutable state of its own: the
// dictionary, stage list, and run parameters are supplied once at
// construction and never altered, so one Executor value can be shared
// read-only across goroutines.
type Executor struct {
	stageList []stages.Stage
	// axisStage[i] is true when the i-th entry of stageList consumes one
	// slot of the parameter tuple.
	axisStage []bool
	dict      []string
	params    stages.RunParams
}

// New builds an Executor for a parsed pipeline. stageNames must already be
// validated by pipeline.Parse.
func New(stageNames []string, dict []string, params stages.RunParams) (*Executor, error) {
	list := make([]stages.Stage, 0, len(stageNames))
	axis := make([]bool, 0, len(stageNames))
	for _, name := range stageNames {
		s, ok := stages.Lookup(name)
		if !ok {
			return nil, pipeline.ErrInvalidPipeline
		}
		list = append(list, s)
		axis = append(axis, s.HasAxis())
	}
	return &Executor{stageList: list, axisStage: axis, dict: dict, params: params}, nil
}

// Run executes the pipeline for one decoded parameter tuple. ok is false if
// any stage kind-mismatches or fails internally (an Abort, in spec terms);
// no metadata or output payload is meaningful in that case.
func (e *Executor) Run(start payload.Payload, tuple []int) (out payload.Payload, meta metadata.Metadata, ok bool) {
	current := start
	meta = metadata.New()
	cursor := 0

	for i, stage := range e.stageList {
		if !stage.Accepts(current.Kind()) {
			return payload.Payload{}, metadata.Metadata{}, false
		}

		axisValue := 0
		if e.axisStage[i] {
			if cursor >= len(tuple) {
				return payload.Payload{}, metadata.Metadata{}, false
			}
			axisValue = tuple[cursor]
			cursor++
		}

		next, label, value, applied := stage.Apply(current, axisValue, e.dict, e.params)
		if !applied {
			return payload.Payload{}, metadata.Metadata{}, false
		}
		if next.Kind() != stage.ResultKind(current.Kind()) {
			return payload.Payload{}, metadata.Metadata{}, false
		}
		if e.axisStage[i] {
			meta = meta.Put(label, value)
		}
		current = next
	}

	return current, meta, true
}
