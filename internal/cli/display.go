package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cipherpipe/solver/internal/orchestrator"
	"github.com/cipherpipe/solver/internal/pipeline"
	"github.com/cipherpipe/solver/internal/utils"
	"github.com/cipherpipe/solver/internal/worker"

	"github.com/olekukonko/tablewriter"
)

// ConsoleDisplay renders a run's stdout format (spec section 6) to an
// io.Writer, with ANSI styling on top via utils.Theme the way the
// teacher's ConsoleDisplay styles its own menu output.
type ConsoleDisplay struct {
	out   io.Writer
	theme utils.Theme
}

// NewConsoleDisplay creates a display writing to out.
func NewConsoleDisplay(out io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{out: out, theme: utils.DefaultTheme}
}

var titleCaser = cases.Title(language.English)

// bannerRuleWidth sizes the banner's separator rule to the terminal,
// the way the teacher's fixed 40-dash separator
// ("----------------------------------------") divides its own sections,
// capped so a very wide terminal doesn't print an absurdly long rule.
func bannerRuleWidth() int {
	w := utils.GetTerminalWidth()
	if w > 80 {
		w = 80
	}
	if w < 10 {
		w = 10
	}
	return w
}

// ShowBanner prints the fixed-format lines that open every run, plus a
// title-cased one-line summary and a fingerprint for quick comparison
// across runs.
func (d *ConsoleDisplay) ShowBanner(pipelineChain string, nKeys int, axes []pipeline.StageAxis, total int64, fingerprint string) {
	fmt.Fprintf(d.out, "%s\n", d.theme.Format(titleCaser.String("cipher pipeline solver"), "bold brightCyan"))
	fmt.Fprintf(d.out, "%s\n", d.theme.Format(strings.Repeat("-", bannerRuleWidth()), "dim blue"))
	fmt.Fprintf(d.out, "[pipeline] %s\n", pipelineChain)
	fmt.Fprintf(d.out, "[keys] %d\n", nKeys)

	var axisParts []string
	for _, a := range axes {
		axisParts = append(axisParts, fmt.Sprintf("%s=%d", a.Stage, a.Cardinality))
	}
	fmt.Fprintf(d.out, "[axes] %s\n", strings.Join(axisParts, " "))
	fmt.Fprintf(d.out, "[estimate] param_tuples=%d\n", total)
	if fingerprint != "" {
		fmt.Fprintf(d.out, "%s\n", d.theme.Format(fmt.Sprintf("[run] fingerprint=%s", fingerprint), "dim"))
	}
}

// ShowProgress prints one progress tick.
func (d *ConsoleDisplay) ShowProgress(p orchestrator.Progress) {
	rate := 0.0
	if p.Elapsed > 0 {
		rate = float64(p.Attempts) / p.Elapsed.Seconds()
	}
	fmt.Fprintf(d.out, "[progress] tasks=%d/%d attempts=%d hits=%d rate=%.0f/s\n",
		p.TasksDone, p.TasksTotal, p.Attempts, p.HitsFound, rate)
}

// ShowHit prints one ranked hit in the required `<score> meta={...}`
// format. No decrypted plaintext is ever printed here (spec section 7):
// the caller reruns with the reported parameters to see it.
func (d *ConsoleDisplay) ShowHit(h worker.Hit) {
	fmt.Fprintf(d.out, "%.3f meta=%s\n", h.Score, h.Meta.String())
}

// ShowHitTable renders the same hits as a table, a readability layer on
// top of the required per-hit lines (grounded on the teacher's
// tablewriter usage in its own result display).
func (d *ConsoleDisplay) ShowHitTable(hits []worker.Hit) {
	if len(hits) == 0 {
		return
	}
	table := tablewriter.NewWriter(d.out)
	table.Header([]string{"rank", "score", "metadata", "index"})
	for i, h := range hits {
		table.Append([]string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%.3f", h.Score), h.Meta.String(), fmt.Sprintf("%d", h.Index)})
	}
	table.Render()
}

// ShowDone prints the final summary line, plus a warning if any chunk
// failed (spec section 7: "emits a final warning with the failed-chunk
// count").
func (d *ConsoleDisplay) ShowDone(res orchestrator.Result) {
	fmt.Fprintf(d.out, "[done] attempts=%d hits=%d time=%.3fs\n", res.Attempts, len(res.Hits), res.Elapsed.Seconds())
	fmt.Fprintf(d.out, "%s\n", d.theme.Format(utils.FormatDuration(res.Elapsed), "dim"))
	if res.FailedTasks > 0 {
		fmt.Fprintf(d.out, "%s\n", d.theme.Format(fmt.Sprintf("warning: %d task(s) failed and were skipped", res.FailedTasks), "brightYellow"))
	}
}

// ShowError prints a usage error to the display's writer, styled red.
func (d *ConsoleDisplay) ShowError(err error) {
	fmt.Fprintf(d.out, "%s %s\n", d.theme.Format("error:", "bold brightRed"), d.theme.Format(err.Error(), "red"))
}

// ShowDryRun prints the sizing-only output for --dry_run (spec section
// 6: "Print parameter-space sizing and exit"), plus a worker-count
// recommendation based on the host's CPU count, the way the teacher's
// benchmark package reports platform info (runtime.NumCPU(), stdlib —
// the teacher itself reaches for runtime here, not a third-party
// package, so this component follows suit).
func (d *ConsoleDisplay) ShowDryRun(pipelineChain string, nKeys int, axes []pipeline.StageAxis, total int64) {
	d.ShowBanner(pipelineChain, nKeys, axes, total, "")
	fmt.Fprintf(d.out, "[recommend] workers=%d (runtime.NumCPU)\n", runtime.NumCPU())
	fmt.Fprintf(d.out, "%s\n", d.theme.Format("dry run: no work performed", "dim"))
}
