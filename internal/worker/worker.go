// Package worker processes one chunk of the parameter space at a time:
// decode an index, run the pipeline, score the result, and keep it if
// it clears the threshold (spec section 4.6).
package worker

import (
	"github.com/cipherpipe/solver/internal/enumerator"
	"github.com/cipherpipe/solver/internal/executor"
	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/payload"
	"github.com/cipherpipe/solver/internal/scoring"
)

// Hit is one parameter tuple whose decoded payload scored at or above
// the run's threshold.
type Hit struct {
	Index int64
	Score float64
	Meta  metadata.Metadata
}

// ChunkResult is everything a chunk of work produces: its hits (in
// ascending index order) plus the counters the orchestrator folds into
// the run totals.
type ChunkResult struct {
	Hits     []Hit
	Attempts int64
}

// Worker holds the immutable state a run needs to process any chunk of
// its parameter space. One Worker is built once per run and shared
// read-only: ProcessChunk never mutates it, so many goroutines may call
// it concurrently on disjoint ranges.
type Worker struct {
	exec      *executor.Executor
	enum      *enumerator.Enumerator
	start     payload.Payload
	table     scoring.Table
	threshold float64
}

// New builds a Worker from the pieces a run assembles once at startup.
func New(exec *executor.Executor, enum *enumerator.Enumerator, start payload.Payload, table scoring.Table, threshold float64) *Worker {
	return &Worker{exec: exec, enum: enum, start: start, table: table, threshold: threshold}
}

// ProcessChunk runs indices [lo, hi) through the pipeline and scores
// each resulting payload, keeping hits that meet the threshold. Hits
// are returned in ascending index order, matching the order attempts
// were made within the chunk.
func (w *Worker) ProcessChunk(lo, hi int64) ChunkResult {
	result := ChunkResult{Attempts: hi - lo}
	if hi <= lo {
		return result
	}

	tuple := make([]int, w.enum.Len())
	for idx := lo; idx < hi; idx++ {
		w.enum.Decode(idx, tuple)

		out, meta, ok := w.exec.Run(w.start, tuple)
		if !ok {
			continue
		}

		score := w.table.Score(out.ToBytes())
		if score >= w.threshold {
			result.Hits = append(result.Hits, Hit{Index: idx, Score: score, Meta: meta})
		}
	}
	return result
}
