package render

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whirl-cli/whirl/internal/spinner"
)

// syncBuffer guards a bytes.Buffer so the renderer goroutine and the test
// can both touch it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testSpinner() spinner.Spinner {
	return spinner.Spinner{Name: "line", Characters: []string{"-", "|"}, IntervalMS: 10}
}

func TestLineRenderer_Success(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	r := NewLineRenderer(testSpinner(), "working", &out, true)

	r.Start()
	time.Sleep(50 * time.Millisecond)
	r.Stop(true)

	got := out.String()
	assert.Contains(t, got, "\r")
	assert.Contains(t, got, "- working")
	assert.Contains(t, got, "✓ working")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestLineRenderer_Failure(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	r := NewLineRenderer(testSpinner(), "working", &out, true)

	r.Start()
	r.Stop(false)

	assert.Contains(t, out.String(), "✗ working")
}

func TestLineRenderer_SetMessage(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	r := NewLineRenderer(testSpinner(), "first", &out, true)

	r.Start()
	time.Sleep(30 * time.Millisecond)
	r.SetMessage("second")
	time.Sleep(30 * time.Millisecond)
	r.Stop(true)

	got := out.String()
	assert.Contains(t, got, "first")
	assert.Contains(t, got, "second")
	assert.Contains(t, got, "✓ second")
}

func TestLineRenderer_ClearsResidue(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	r := NewLineRenderer(testSpinner(), "a rather long message", &out, true)

	r.Start()
	time.Sleep(30 * time.Millisecond)
	r.SetMessage("short")
	time.Sleep(30 * time.Millisecond)
	r.Stop(true)

	// The line after the message switch must be padded past the longer
	// previous line so no residue is left on screen.
	lines := strings.Split(out.String(), "\r")
	var found bool
	for _, line := range lines {
		if strings.Contains(line, "short") && len(line) >= len("a rather long message") {
			found = true
			break
		}
	}
	require.True(t, found, "expected a padded redraw after the message shrank")
}
