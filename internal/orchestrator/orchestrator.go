// Package orchestrator fans a run's parameter space out across a pool of
// goroutines, collects hits as chunks complete, and produces the final
// ranked result (spec section 4.7).
package orchestrator

import (
	"sort"
	"time"

	"github.com/cipherpipe/solver/internal/worker"
)

// Task is one unit of dispatch: the half-open index range [Lo, Hi) a
// single ProcessChunk call covers. A task is never subdivided further.
type Task struct {
	Lo, Hi int64
}

// BuildTasks covers [0, total) with consecutive chunks of at most
// chunkSize indices each.
func BuildTasks(total int64, chunkSize int64) []Task {
	if chunkSize <= 0 {
		chunkSize = total
	}
	tasks := make([]Task, 0, (total+chunkSize-1)/chunkSize)
	for lo := int64(0); lo < total; lo += chunkSize {
		hi := lo + chunkSize
		if hi > total {
			hi = total
		}
		tasks = append(tasks, Task{Lo: lo, Hi: hi})
	}
	return tasks
}

// Progress is emitted every progressEvery completed tasks, and once more
// at the end of the run.
type Progress struct {
	TasksDone  int
	TasksTotal int
	Attempts   int64
	HitsFound  int
	Elapsed    time.Duration
}

// Result is a run's final, ordered output.
type Result struct {
	Hits        []worker.Hit
	Attempts    int64
	Elapsed     time.Duration
	FailedTasks int
}

// Options configures one run of the orchestrator.
type Options struct {
	Workers       int
	ChunkSize     int64
	ProgressEvery int
	// MaxHits caps how many ranked hits are reported; 0 reports none
	// (the run still completes and counts attempts normally).
	MaxHits int
	// OnProgress, if non-nil, is called on the orchestrator's own
	// goroutine (never concurrently) after every progressEvery completed
	// tasks and once after the final task.
	OnProgress func(Progress)
}

// safeProcessChunk runs ProcessChunk and recovers from a panic inside it,
// yielding a zero-hit result instead of taking down the whole run: one
// malformed tuple anywhere in the search space must not abort every
// other chunk. ok is false when a panic was recovered.
func safeProcessChunk(w *worker.Worker, t Task) (res worker.ChunkResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			res = worker.ChunkResult{Attempts: t.Hi - t.Lo}
			ok = false
		}
	}()
	return w.ProcessChunk(t.Lo, t.Hi), true
}

// Run dispatches every task in BuildTasks(total, opts.ChunkSize) against w,
// merges the hits from completed chunks, and returns them sorted by
// descending score (stable on ties, so equal-score hits keep ascending
// index order), truncated to MaxHits.
//
// workers == 1 runs every task synchronously on the calling goroutine, as
// a correctness baseline and to keep single-worker runs free of any
// goroutine scheduling nondeterminism. workers > 1 spawns a fixed pool of
// goroutines reading tasks from a shared channel and writing results to
// a second channel; there is no shared mutable state between them beyond
// those two channels and the read-only Worker.
func Run(w *worker.Worker, total int64, opts Options) Result {
	start := time.Now()
	tasks := BuildTasks(total, opts.ChunkSize)

	var allHits []worker.Hit
	var attempts int64
	done := 0
	failed := 0

	report := func() {
		if opts.OnProgress == nil {
			return
		}
		opts.OnProgress(Progress{
			TasksDone:  done,
			TasksTotal: len(tasks),
			Attempts:   attempts,
			HitsFound:  len(allHits),
			Elapsed:    time.Since(start),
		})
	}

	record := func(res worker.ChunkResult, ok bool) {
		attempts += res.Attempts
		allHits = append(allHits, res.Hits...)
		done++
		if !ok {
			failed++
		}
		if opts.ProgressEvery > 0 && done%opts.ProgressEvery == 0 {
			report()
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	if workers == 1 || len(tasks) <= 1 {
		for _, t := range tasks {
			res, ok := safeProcessChunk(w, t)
			record(res, ok)
		}
	} else {
		type outcome struct {
			res worker.ChunkResult
			ok  bool
		}
		taskCh := make(chan Task)
		resultCh := make(chan outcome)

		for i := 0; i < workers; i++ {
			go func() {
				for t := range taskCh {
					res, ok := safeProcessChunk(w, t)
					resultCh <- outcome{res: res, ok: ok}
				}
			}()
		}
		go func() {
			for _, t := range tasks {
				taskCh <- t
			}
			close(taskCh)
		}()
		for range tasks {
			o := <-resultCh
			record(o.res, o.ok)
		}
	}

	report()

	// Chunks can complete in any order when workers > 1, so ties are
	// broken explicitly by ascending index (= ascending (chunk_lo,
	// in_chunk_index), since tasks partition the space in that order)
	// rather than by relying on insertion order being deterministic.
	sort.Slice(allHits, func(i, j int) bool {
		if allHits[i].Score != allHits[j].Score {
			return allHits[i].Score > allHits[j].Score
		}
		return allHits[i].Index < allHits[j].Index
	})
	if opts.MaxHits >= 0 && len(allHits) > opts.MaxHits {
		allHits = allHits[:opts.MaxHits]
	}

	return Result{Hits: allHits, Attempts: attempts, Elapsed: time.Since(start), FailedTasks: failed}
}
