package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Stage is one step of a site build.
type Stage string

const (
	StageMarkdown Stage = "markdown" // book converted to HTML
	StagePage     Stage = "page"     // page template executed
	StageManifest Stage = "manifest" // chapters.json encoded
	StageWrite    Stage = "write"    // generated files written
	StageAsset    Stage = "asset"    // one static asset copied
)

// Reporter receives build steps as they complete.
type Reporter interface {
	Start(steps int)
	Step(stage Stage, detail string)
	Finish()
}

// NewReporter returns a CIReporter when running under CI, or a
// TerminalReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter draws a progress bar on stderr, described by the stage
// that just finished.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(steps int) {
	r.bar = progressbar.NewOptions(steps,
		progressbar.OptionSetDescription("Building book"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(stage Stage, detail string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("%-8s %s", stage, detail))
	_ = r.bar.Add(1)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per step with the time it took.
type CIReporter struct {
	Out io.Writer
	// Now defaults to time.Now.
	Now func() time.Time

	steps int
	done  int
	began time.Time
	last  time.Time
}

func (r *CIReporter) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *CIReporter) Start(steps int) {
	r.steps, r.done = steps, 0
	r.began = r.now()
	r.last = r.began
	fmt.Fprintf(r.Out, "Building book: %d steps\n", steps)
}

func (r *CIReporter) Step(stage Stage, detail string) {
	now := r.now()
	r.done++
	fmt.Fprintf(r.Out, "[%d/%d] %-8s %s (%s)\n", r.done, r.steps, stage, detail, now.Sub(r.last).Round(time.Millisecond))
	r.last = now
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Build complete: %d/%d steps in %s\n", r.done, r.steps, r.now().Sub(r.began).Round(time.Millisecond))
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Step(Stage, string) {}
func (Nop) Finish()            {}
