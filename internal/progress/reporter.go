package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback during site generation and catalog
// imports.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set. The label names the
// task, e.g. "Generating site".
func NewReporter(label string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return NewCIReporter(label, os.Stderr)
	}
	return &TerminalReporter{label: label}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	label string
	bar   *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(r.label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per step, prefixed with the task label, and a
// summary with the elapsed time when finished.
type CIReporter struct {
	label   string
	out     io.Writer
	total   int
	last    int
	started time.Time
}

// NewCIReporter returns a CIReporter writing to out.
func NewCIReporter(label string, out io.Writer) *CIReporter {
	return &CIReporter{label: label, out: out}
}

func (r *CIReporter) Start(total int) {
	r.total = total
	r.last = 0
	r.started = time.Now()
	fmt.Fprintf(r.out, "%s: %d steps\n", r.label, total)
}

// Update prints the step. Repeated or out-of-order step numbers are ignored.
func (r *CIReporter) Update(current int, message string) {
	if current <= r.last {
		return
	}
	r.last = current
	fmt.Fprintf(r.out, "%s [%d/%d] %s\n", r.label, current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out, "%s: %d/%d done in %s\n", r.label, r.last, r.total,
		time.Since(r.started).Round(time.Millisecond))
}

// Discard is a Reporter that prints nothing.
type Discard struct{}

func (Discard) Start(int)          {}
func (Discard) Update(int, string) {}
func (Discard) Finish()            {}
