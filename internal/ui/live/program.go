package live

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizclock/internal/session"
)

// Run drives a live quiz until the user quits or ctx is cancelled and
// returns the last session state.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (session.State, error) {
	model := NewModel(opts)
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if finished, ok := final.(Model); ok {
		return finished.State(), err
	}
	return model.State(), err
}
