// Package cli implements the external interface the spec's core
// consumes: flag parsing and console output for one solver run.
package cli

import (
	"flag"
	"fmt"

	"github.com/cipherpipe/solver/internal/config"
)

// sampleCiphertext is the built-in ciphertext used when --ciphertext is
// not given (spec section 6: "built-in sample").
const sampleCiphertext = "WKLV LV D VDPSOH FLSKHUWHAW IRU WHVWLQJ SXUSRVHV"

// Options is the fully-resolved set of run parameters: flags override
// config defaults, and config defaults fill in anything left unset.
type Options struct {
	Pipeline      string
	Ciphertext    string
	Dictionary    string
	KeyLimit      int
	Threshold     float64
	MaxHits       int
	Workers       int
	ChunkSize     int
	ProgressEvery int
	BifidAlphabet string
	DryRun        bool
}

// Parse parses args (typically os.Args[1:]) against cfg's defaults.
// Flags the caller didn't pass keep cfg's values; --pipeline has no
// config-file default and must always be supplied.
func Parse(args []string, cfg *config.Config) (Options, error) {
	fs := flag.NewFlagSet("cipherpipe", flag.ContinueOnError)

	opts := Options{}
	fs.StringVar(&opts.Pipeline, "pipeline", "", "chain of stage names separated by '>'")
	fs.StringVar(&opts.Ciphertext, "ciphertext", sampleCiphertext, "input to decrypt")
	fs.StringVar(&opts.Dictionary, "dictionary", cfg.Run.Dictionary, "candidate-keys file, one key per line")
	fs.IntVar(&opts.KeyLimit, "key_limit", cfg.Run.KeyLimit, "truncate dictionary to first N keys (0 = unlimited)")
	fs.Float64Var(&opts.Threshold, "threshold", cfg.Run.Threshold, "minimum score to record a hit")
	fs.IntVar(&opts.MaxHits, "max_hits", cfg.Run.MaxHits, "cap on reported hits")
	fs.IntVar(&opts.Workers, "workers", cfg.Run.Workers, "worker goroutine count")
	fs.IntVar(&opts.ChunkSize, "chunk_size", cfg.Run.ChunkSize, "indices per task")
	fs.IntVar(&opts.ProgressEvery, "progress_every", cfg.Run.ProgressEvery, "tasks between progress lines")
	fs.StringVar(&opts.BifidAlphabet, "bifid_alphabet", cfg.Run.BifidAlphabet, "standard (5x5, I=J) or base64 (8x8)")
	fs.BoolVar(&opts.DryRun, "dry_run", false, "print parameter-space sizing and exit")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if opts.Pipeline == "" {
		return Options{}, fmt.Errorf("--pipeline is required")
	}
	if opts.BifidAlphabet != "standard" && opts.BifidAlphabet != "base64" {
		return Options{}, fmt.Errorf("--bifid_alphabet must be 'standard' or 'base64', got %q", opts.BifidAlphabet)
	}
	return opts, nil
}
