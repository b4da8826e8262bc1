package render

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	spindef "github.com/whirl-cli/whirl/internal/spinner"
)

// Message types for Bubble Tea.
type (
	// messageMsg replaces the text next to the spinner.
	messageMsg string

	// finalizeMsg stops the animation with the given outcome.
	finalizeMsg struct {
		ok bool
	}
)

// teaModel is the Bubble Tea model for the spinner display.
type teaModel struct {
	spinner   spinner.Model
	message   string
	finalized bool
	ok        bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func newTeaModel(def spindef.Spinner, message string) teaModel {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: def.Characters,
		FPS:    def.Interval(),
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return teaModel{
		spinner:      s,
		message:      message,
		successStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Init initializes the model.
func (m teaModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messageMsg:
		m.message = string(msg)
		return m, nil

	case finalizeMsg:
		m.finalized = true
		m.ok = msg.ok
		// Quit after a short delay to ensure the final frame renders.
		return m, tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
			return tea.Quit()
		})

	case spinner.TickMsg:
		if m.finalized {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.finalized = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the display.
func (m teaModel) View() string {
	if m.finalized {
		icon := m.successStyle.Render("✓")
		if !m.ok {
			icon = m.errorStyle.Render("✗")
		}
		return icon + " " + m.message + "\n"
	}
	return m.spinner.View() + " " + m.message
}

// TeaRenderer animates a spinner with Bubble Tea on interactive terminals.
type TeaRenderer struct {
	program *tea.Program
	done    chan struct{}
}

// NewTeaRenderer creates a Bubble Tea renderer writing to out.
func NewTeaRenderer(def spindef.Spinner, message string, out io.Writer) *TeaRenderer {
	program := tea.NewProgram(
		newTeaModel(def, message),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)
	return &TeaRenderer{
		program: program,
		done:    make(chan struct{}),
	}
}

// Start runs the program on a background goroutine.
func (r *TeaRenderer) Start() {
	go func() {
		defer close(r.done)
		_, _ = r.program.Run()
	}()
}

// Stop finalizes the display and waits for the program to exit.
func (r *TeaRenderer) Stop(ok bool) {
	r.program.Send(finalizeMsg{ok: ok})
	<-r.done
}

// SetMessage replaces the text shown next to the spinner.
func (r *TeaRenderer) SetMessage(msg string) {
	r.program.Send(messageMsg(msg))
}
