package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"video-enhancer/internal/jobs"
	"video-enhancer/internal/logging"
)

// progressReporter renders run events: a bar on terminals, sampled lines elsewhere.
type progressReporter struct {
	mu      sync.Mutex
	out     io.Writer
	bar     *progressbar.ProgressBar
	sampler *logging.ProgressSampler
}

func newProgressReporter(out io.Writer) *progressReporter {
	r := &progressReporter{out: out}
	if isTerminal(out) {
		r.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("Rendering"),
			progressbar.OptionSetWidth(32),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	} else {
		r.sampler = logging.NewProgressSampler(25)
	}
	return r
}

func (r *progressReporter) handle(event jobs.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch event.Type {
	case jobs.EventTypeProgress:
		if r.bar != nil {
			_ = r.bar.Set(int(event.Progress))
			return
		}
		if r.sampler.ShouldLog(event.RunID, event.Progress) {
			fmt.Fprintf(r.out, "Rendering · %d%%\n", int(event.Progress))
		}
	case jobs.EventTypeRecord:
		if event.Record == nil {
			return
		}
		if r.bar != nil {
			r.bar.Describe("Rendering " + event.Record.FileName)
			return
		}
		fmt.Fprintf(r.out, "Completed %s (%s)\n", event.Record.FileName, event.Record.Duration)
	}
}

func (r *progressReporter) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
