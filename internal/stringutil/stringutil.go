package stringutil

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// TruncString truncates the string to at most max display cells, never
// splitting a multi-byte glyph.
func TruncString(val string, max int) string {
	return runewidth.Truncate(val, max, "")
}

// DisplayWidth returns the number of terminal cells the string occupies.
// Double-width glyphs (CJK, many emoji) count as two cells.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads the string with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// FormatDuration renders a duration in a compact human-readable form,
// e.g. "80ms", "1.2s", "3m42s".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
