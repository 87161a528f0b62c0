// Package progress shows a spinner while the tool blocks on a slow gcloud
// operation. The spinner is a bubbletea program repainting a single status
// line; the wrapped function runs in a goroutine and its result ends the
// program. When stdout is not a terminal the spinner degrades to one plain
// status line so piped and test output stays clean.
package progress

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// doneMsg carries the wrapped function's result into the program.
type doneMsg struct {
	err error
}

type model struct {
	spinner spinner.Model
	text    string
	done    bool
	err     error
}

func newModel(text string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return model{spinner: s, text: text}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m model) View() string {
	// Render nothing once done so the status line is cleared on exit.
	if m.done {
		return ""
	}
	return m.spinner.View() + m.text
}

// Run executes fn while displaying text with an animated spinner, and
// returns fn's error. The status line is removed on every exit path.
func Run(text string, fn func() error) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(text)
		return fn()
	}

	p := tea.NewProgram(newModel(text), tea.WithInput(nil))

	result := make(chan error, 1)
	go func() {
		err := fn()
		result <- err
		p.Send(doneMsg{err: err})
	}()

	// A program failure only loses the animation; the operation itself
	// still finishes and its error is what matters.
	_, _ = p.Run()
	return <-result
}

// Success prints a green check with the given message.
func Success(msg string) {
	fmt.Println(okStyle.Render("✔") + " " + msg)
}

// Failure prints a red cross with the given message.
func Failure(msg string) {
	fmt.Println(failStyle.Render("✖") + " " + msg)
}
