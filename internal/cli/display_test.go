package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cipherpipe/solver/internal/metadata"
	"github.com/cipherpipe/solver/internal/orchestrator"
	"github.com/cipherpipe/solver/internal/pipeline"
	"github.com/cipherpipe/solver/internal/worker"
)

func TestShowBannerLinesMatchRequiredFormat(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	axes := []pipeline.StageAxis{{Stage: "caesar", Cardinality: 26}}
	d.ShowBanner("caesar", 0, axes, 26, "deadbeef")

	out := buf.String()
	for _, want := range []string{
		"[pipeline] caesar",
		"[keys] 0",
		"[axes] caesar=26",
		"[estimate] param_tuples=26",
		"[run] fingerprint=deadbeef",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("banner output missing %q, got:\n%s", want, out)
		}
	}
}

func TestShowBannerPrintsTerminalWidthRule(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	axes := []pipeline.StageAxis{{Stage: "caesar", Cardinality: 26}}
	d.ShowBanner("caesar", 0, axes, 26, "")

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "-") {
		t.Fatalf("expected a dash separator rule as the second banner line, got:\n%s", buf.String())
	}
}

func TestBannerRuleWidthIsBounded(t *testing.T) {
	w := bannerRuleWidth()
	if w < 10 || w > 80 {
		t.Fatalf("bannerRuleWidth() = %d, want in [10,80]", w)
	}
}

func TestShowProgressFormat(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	d.ShowProgress(orchestrator.Progress{TasksDone: 3, TasksTotal: 10, Attempts: 300, HitsFound: 2, Elapsed: time.Second})

	out := buf.String()
	if !strings.HasPrefix(out, "[progress] tasks=3/10 attempts=300 hits=2 rate=") {
		t.Errorf("unexpected progress line: %q", out)
	}
}

func TestShowHitFormat(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	meta := metadata.New().Put("caesar_shift", metadata.Int(7))
	d.ShowHit(worker.Hit{Index: 7, Score: 1.523, Meta: meta})

	want := "1.523 meta={caesar_shift: 7}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestShowDoneFormat(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	d.ShowDone(orchestrator.Result{Attempts: 26, Hits: nil, Elapsed: 2 * time.Second, FailedTasks: 0})
	if !strings.Contains(buf.String(), "[done] attempts=26 hits=0 time=2.000s") {
		t.Errorf("unexpected done line: %q", buf.String())
	}
}

func TestShowDoneWarnsOnFailedTasks(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	d.ShowDone(orchestrator.Result{Attempts: 10, FailedTasks: 2})
	if !strings.Contains(buf.String(), "2 task(s) failed") {
		t.Errorf("expected a failed-task warning, got %q", buf.String())
	}
}

func TestShowHitTableIncludesIndexColumn(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	meta := metadata.New().Put("caesar_shift", metadata.Int(3))
	d.ShowHitTable([]worker.Hit{{Index: 3, Score: 1.2, Meta: meta}})

	out := buf.String()
	for _, want := range []string{"RANK", "SCORE", "METADATA", "INDEX", "3"} {
		if !strings.Contains(strings.ToUpper(out), want) {
			t.Errorf("hit table missing %q, got:\n%s", want, out)
		}
	}
}

func TestShowHitTableEmptyHitsPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	d.ShowHitTable(nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty hits, got %q", buf.String())
	}
}

func TestShowDryRunRecommendsWorkerCount(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)
	axes := []pipeline.StageAxis{{Stage: "caesar", Cardinality: 26}}
	d.ShowDryRun("caesar", 0, axes, 26)

	out := buf.String()
	if !strings.Contains(out, "[recommend] workers=") {
		t.Errorf("expected a worker-count recommendation, got:\n%s", out)
	}
	if !strings.Contains(out, "dry run") {
		t.Errorf("expected a dry-run notice, got:\n%s", out)
	}
}
