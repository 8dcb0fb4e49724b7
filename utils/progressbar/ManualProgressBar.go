// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implements progress bar functionality that must be
// manually managed. That is, Display must be called whenever an updated
// progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out       io.Writer
	width     int
	max       int
	progress  int
	startTime time.Time
	now       func() time.Time
}

// NewManualProgressBar returns a new ManualProgressBar which writes to out,
// is width characters wide and reaches 100% after max calls to Increment
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	if max < 1 {
		max = 1
	}
	return &ManualProgressBar{
		out:       out,
		width:     width,
		max:       max,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// Increment increments the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.progress < p.max {
		p.progress++
	}
}

// Progress returns the fraction of iterations completed
func (p *ManualProgressBar) Progress() float64 {
	return float64(p.progress) / float64(p.max)
}

// String renders the bar on a single line
func (p *ManualProgressBar) String() string {
	filled := p.progress * p.width / p.max

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(&bar, "| [%.2f%% | elapsed: %v]", p.Progress()*100,
		p.now().Sub(p.startTime).Truncate(time.Second))
	return bar.String()
}

// Display redraws the progress bar over the current terminal line
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p)
}

// Close finishes the bar by moving to the next line
func (p *ManualProgressBar) Close() {
	fmt.Fprintln(p.out)
}
