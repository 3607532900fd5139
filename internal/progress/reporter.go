// Package progress reports the steps of a static site build.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per generated file, bracketed by Start and
// Finish.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// Discard ignores every step.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Start(int)          {}
func (discard) Update(int, string) {}
func (discard) Finish()            {}

var ciVars = []string{"CI", "GITHUB_ACTIONS"}

func inCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// NewReporter picks plain log lines under CI and an animated bar otherwise.
func NewReporter() Reporter {
	if inCI() {
		return &LineReporter{Out: os.Stderr}
	}
	return &BarReporter{}
}

// BarReporter redraws a single bar naming the last file written.
type BarReporter struct {
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Building site"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(current int, message string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe("Wrote " + message)
	_ = r.bar.Set(current)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter writes one "[i/n] file" line per step. A nil Out means
// stderr.
type LineReporter struct {
	Out   io.Writer
	total int
}

func (r *LineReporter) printf(format string, args ...any) {
	w := r.Out
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format, args...)
}

func (r *LineReporter) Start(total int) {
	r.total = total
	r.printf("Building site: %d files\n", total)
}

func (r *LineReporter) Update(current int, message string) {
	r.printf("[%d/%d] %s\n", current, r.total, message)
}

func (r *LineReporter) Finish() { r.printf("Site build complete\n") }
