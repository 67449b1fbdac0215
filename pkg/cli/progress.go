package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ProgressReporter reports progress over a batch of files.
type ProgressReporter interface {
	Start(total int)
	Advance(name string, err error)
	Finish() (ok, failed int)
}

// SimpleProgress implements a text progress bar. It counts failures so the
// caller can print a summary.
type SimpleProgress struct {
	mu      sync.Mutex
	total   int
	current int
	failed  int
	writer  io.Writer
}

// NewProgressReporter creates a new progress reporter that writes to w.
// If w is nil, it defaults to os.Stderr.
func NewProgressReporter(w io.Writer) *SimpleProgress {
	if w == nil {
		w = os.Stderr
	}
	return &SimpleProgress{
		writer: w,
	}
}

// Start initializes the progress reporter with the total number of items.
func (p *SimpleProgress) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.failed = 0
	p.render()
}

// Advance marks one item as processed.
func (p *SimpleProgress) Advance(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	if err != nil {
		p.failed++
		fmt.Fprintf(p.writer, "\r✗ %s: %v\n", name, err)
	}
	p.render()
}

// Finish completes the bar and returns the success and failure counts.
func (p *SimpleProgress) Finish() (ok, failed int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total > 0 {
		fmt.Fprintln(p.writer)
	}
	return p.current - p.failed, p.failed
}

func (p *SimpleProgress) render() {
	if p.total == 0 {
		return
	}

	percent := float64(p.current) / float64(p.total) * 100
	barWidth := 40
	filled := int(float64(barWidth) * percent / 100)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Fprintf(p.writer, "\rValidating: [%s] %.1f%% (%d/%d files, %d failed)",
		bar, percent, p.current, p.total, p.failed)
}
