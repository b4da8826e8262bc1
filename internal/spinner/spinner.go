// Package spinner defines terminal spinner definitions, the registry that
// holds them, and the decoder that reads definition files.
package spinner

import (
	"errors"
	"fmt"
	"time"

	"github.com/rivo/uniseg"
	"github.com/whirl-cli/whirl/internal/stringutil"
)

// DefaultInterval is the frame period used when a definition does not
// specify one.
const DefaultInterval = 100 * time.Millisecond

// Spinner is a named animation frame cycle. Characters holds the frames in
// display order; each frame is a single display glyph (one grapheme
// cluster), possibly multi-byte and double-width.
type Spinner struct {
	Name       string   `json:"name"`
	Characters []string `json:"characters"`

	// IntervalMS is the frame period in milliseconds. Zero means
	// DefaultInterval.
	IntervalMS int `json:"interval,omitempty"`
}

// Interval returns the frame period as a duration.
func (s Spinner) Interval() time.Duration {
	if s.IntervalMS <= 0 {
		return DefaultInterval
	}
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// Width returns the display width of the spinner's frames. All frames of a
// valid spinner share the same width.
func (s Spinner) Width() int {
	if len(s.Characters) == 0 {
		return 0
	}
	return stringutil.DisplayWidth(s.Characters[0])
}

// Frame returns the frame for the given tick, cycling through Characters.
func (s Spinner) Frame(tick int) string {
	if len(s.Characters) == 0 {
		return ""
	}
	return s.Characters[tick%len(s.Characters)]
}

var (
	// ErrMissingName is returned when a definition has no name.
	ErrMissingName = errors.New("spinner definition has no name")

	// ErrNoCharacters is returned when a definition has no frames.
	ErrNoCharacters = errors.New("spinner definition has no characters")
)

// Validate checks the definition invariants: a non-empty name, at least one
// frame, every frame exactly one glyph, and a uniform display width across
// frames.
func (s Spinner) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if len(s.Characters) == 0 {
		return fmt.Errorf("spinner %q: %w", s.Name, ErrNoCharacters)
	}

	width := stringutil.DisplayWidth(s.Characters[0])
	for i, c := range s.Characters {
		if n := uniseg.GraphemeClusterCount(c); n != 1 {
			return fmt.Errorf("spinner %q: character %d (%q) must be a single glyph, got %d", s.Name, i, c, n)
		}
		if w := stringutil.DisplayWidth(c); w != width {
			return fmt.Errorf("spinner %q: character %d (%q) has width %d, want %d", s.Name, i, c, w, width)
		}
	}
	if s.IntervalMS < 0 {
		return fmt.Errorf("spinner %q: interval must not be negative", s.Name)
	}
	return nil
}
