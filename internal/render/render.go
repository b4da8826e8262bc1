// Package render animates spinner definitions on a terminal. Two
// implementations are provided: a plain line renderer that redraws a single
// line with carriage returns, and a Bubble Tea renderer for interactive
// terminals.
package render

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/whirl-cli/whirl/internal/spinner"
)

// Renderer drives a spinner animation. Start begins the animation on a
// background goroutine; Stop finalizes the line with a success or failure
// mark and blocks until the animation has shut down.
type Renderer interface {
	Start()
	Stop(ok bool)
	SetMessage(msg string)
}

// Options selects and configures a renderer.
type Options struct {
	// Out is the animation target. Defaults to stderr, keeping stdout
	// clean for the wrapped command's output.
	Out io.Writer

	// Fancy enables the Bubble Tea renderer when Out is a terminal.
	Fancy bool

	// NoColor disables colored output.
	NoColor bool
}

// New picks a renderer for the spinner: Bubble Tea when fancy rendering is
// requested and the target is a terminal, the plain line renderer
// otherwise.
func New(sp spinner.Spinner, message string, opts Options) Renderer {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Fancy && isTerminal(out) {
		return NewTeaRenderer(sp, message, out)
	}
	return NewLineRenderer(sp, message, out, opts.NoColor)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
