package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cipherpipe/solver/internal/cli"
	"github.com/cipherpipe/solver/internal/config"
	"github.com/cipherpipe/solver/internal/dictionary"
	"github.com/cipherpipe/solver/internal/enumerator"
	"github.com/cipherpipe/solver/internal/executor"
	"github.com/cipherpipe/solver/internal/orchestrator"
	"github.com/cipherpipe/solver/internal/payload"
	"github.com/cipherpipe/solver/internal/pipeline"
	"github.com/cipherpipe/solver/internal/scoring"
	"github.com/cipherpipe/solver/internal/stages"
	"github.com/cipherpipe/solver/internal/utils"
	"github.com/cipherpipe/solver/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("error loading configuration: %v\n", err)
		os.Exit(1)
	}

	display := cli.NewConsoleDisplay(os.Stdout)

	opts, err := cli.Parse(os.Args[1:], cfg)
	if err != nil {
		display.ShowError(err)
		os.Exit(1)
	}

	if err := run(opts, display); err != nil {
		display.ShowError(err)
		os.Exit(usageErrorExitCode(err))
	}
}

// usageErrorExitCode maps a run error to an exit code, all non-zero per
// spec section 7 ("Usage errors... non-zero exit"), but distinguished
// so scripts driving this binary can tell a bad pipeline apart from a
// missing dictionary without parsing stderr text.
func usageErrorExitCode(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrInvalidPipeline):
		return 2
	case errors.Is(err, pipeline.ErrEmptyDictionary):
		return 3
	case errors.Is(err, pipeline.ErrSpaceTooLarge):
		return 4
	default:
		return 1
	}
}

func run(opts cli.Options, display *cli.ConsoleDisplay) error {
	stageNames, err := pipeline.Parse(opts.Pipeline)
	if err != nil {
		return err
	}

	var dict []string
	if pipelineNeedsDictionary(stageNames) {
		dict, err = dictionary.Load(opts.Dictionary, opts.KeyLimit)
		if err != nil {
			return err
		}
	}

	axes, err := pipeline.Axes(stageNames, len(dict))
	if err != nil {
		return err
	}
	radix := pipeline.RadixVector(axes)
	total, err := pipeline.TotalSpace(radix)
	if err != nil {
		return err
	}

	if opts.DryRun {
		display.ShowDryRun(opts.Pipeline, len(dict), axes, total)
		return nil
	}

	fingerprint := utils.Fingerprint(opts.Pipeline, opts.Ciphertext, dict)
	display.ShowBanner(opts.Pipeline, len(dict), axes, total, fingerprint)

	exec, err := executor.New(stageNames, dict, stages.RunParams{BifidAlphabet: opts.BifidAlphabet})
	if err != nil {
		return err
	}
	enum := enumerator.New(radix)
	table := scoring.Load()
	w := worker.New(exec, enum, payload.Text(opts.Ciphertext), table, opts.Threshold)

	result := orchestrator.Run(w, total, orchestrator.Options{
		Workers:       opts.Workers,
		ChunkSize:     int64(opts.ChunkSize),
		ProgressEvery: opts.ProgressEvery,
		MaxHits:       opts.MaxHits,
		OnProgress:    display.ShowProgress,
	})

	for _, hit := range result.Hits {
		display.ShowHit(hit)
	}
	display.ShowHitTable(result.Hits)
	display.ShowDone(result)
	return nil
}

// pipelineNeedsDictionary reports whether any stage in the pipeline
// consumes dictionary keys, so a --dictionary that doesn't exist isn't
// an error for purely keyless pipelines (e.g. "reverse>b64").
func pipelineNeedsDictionary(stageNames []string) bool {
	for _, name := range stageNames {
		switch name {
		case pipeline.StageBifid, pipeline.StageColumnar, pipeline.StageXOR, pipeline.StageDoubleColumnar:
			return true
		}
	}
	return false
}
