package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/whirl-cli/whirl/internal/spinner"
	"github.com/whirl-cli/whirl/internal/stringutil"
)

// LineRenderer is a minimal inline spinner display. It redraws one line
// with \r on every tick and works on dumb terminals and in CI logs.
type LineRenderer struct {
	sp  spinner.Spinner
	out io.Writer

	mu        sync.Mutex
	message   string
	tick      int
	lastWidth int

	noColor bool
	stopCh  chan struct{}
	done    chan struct{}
}

// NewLineRenderer creates a line renderer writing to out.
func NewLineRenderer(sp spinner.Spinner, message string, out io.Writer, noColor bool) *LineRenderer {
	return &LineRenderer{
		sp:      sp,
		out:     out,
		message: message,
		noColor: noColor,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation.
func (r *LineRenderer) Start() {
	go r.run()
}

// Stop finalizes the line and waits for the animation goroutine.
func (r *LineRenderer) Stop(ok bool) {
	close(r.stopCh)
	<-r.done
	r.printFinal(ok)
}

// SetMessage replaces the text shown next to the spinner.
func (r *LineRenderer) SetMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message = msg
}

func (r *LineRenderer) run() {
	defer close(r.done)

	r.render()

	ticker := time.NewTicker(r.sp.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.render()
		}
	}
}

func (r *LineRenderer) render() {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame := r.sp.Frame(r.tick)
	r.tick++

	r.redraw(frame + " " + r.message)
}

func (r *LineRenderer) printFinal(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon := "✓"
	c := color.New(color.FgGreen)
	if !ok {
		icon = "✗"
		c = color.New(color.FgRed)
	}
	if r.noColor {
		c.DisableColor()
	}

	// Pad against the plain text width; the color escapes occupy no cells.
	line := c.Sprint(icon) + " " + r.message
	if pad := r.lastWidth - stringutil.DisplayWidth(icon+" "+r.message); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	_, _ = fmt.Fprintf(r.out, "\r%s\n", line)
}

// redraw overwrites the current line, padding with spaces so a shorter
// line leaves no residue from the previous one.
func (r *LineRenderer) redraw(line string) {
	width := stringutil.DisplayWidth(line)
	if width < r.lastWidth {
		line = stringutil.PadRight(line, r.lastWidth)
	}
	r.lastWidth = width
	_, _ = fmt.Fprintf(r.out, "\r%s", line)
}
