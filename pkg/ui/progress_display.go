package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"influencerfinder/pkg/finder"
)

// ProgressDisplay renders search progress on a single updating line, or
// one line per event in verbose mode.
type ProgressDisplay struct {
	mu        sync.Mutex
	w         io.Writer
	startTime time.Time
	done      int
	total     int
	last      string
	verbose   bool
}

// NewProgressDisplay creates a new progress display
func NewProgressDisplay(w io.Writer, verbose bool) *ProgressDisplay {
	return &ProgressDisplay{
		w:         w,
		startTime: time.Now(),
		verbose:   verbose,
	}
}

// Update is a finder.ProgressFunc.
func (p *ProgressDisplay) Update(ev finder.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Stage {
	case finder.StageFilter:
		p.total = ev.Total
	case finder.StageProfile:
		p.done = ev.Done
		p.total = ev.Total
		if ev.Profile != nil {
			p.last = "@" + ev.Profile.Username
		}
	}

	if p.verbose {
		fmt.Fprintf(p.w, "%s %s\n", Magenta("→"), ev.Message)
		return
	}
	if ev.Stage == finder.StageProfile {
		p.printProgress()
	}
}

// printProgress prints the minimal progress line
func (p *ProgressDisplay) printProgress() {
	const barWidth = 20
	filled := 0
	if p.total > 0 {
		filled = p.done * barWidth / p.total
	}
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)

	line := fmt.Sprintf("%s [%s] %d/%d", Cyan("analyzing"), bar, p.done, p.total)
	if p.last != "" {
		line += " • " + p.last
	}

	// Clear line and print
	fmt.Fprintf(p.w, "\r%s\r%s", strings.Repeat(" ", 80), line)
}

// Complete prints the summary line.
func (p *ProgressDisplay) Complete(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.verbose && p.done > 0 {
		fmt.Fprintln(p.w)
	}
	fmt.Fprintf(p.w, "%s Found %d influencers in %s\n", Green("✓"), count, formatDuration(time.Since(p.startTime)))
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}
