package live

import (
	"github.com/charmbracelet/bubbles/key"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

// keyMap lists the bindings the quiz screens respond to.
type keyMap struct {
	Reveal    key.Binding
	Correct   key.Binding
	Incorrect key.Binding
	Option    key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reveal: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "show answer"),
		),
		Correct: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "got it"),
		),
		Incorrect: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "needs review"),
		),
		Option: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap. Disabled bindings are hidden by the help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Correct, k.Incorrect, k.Option, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// forState enables only the bindings that apply to the current screen.
func (k keyMap) forState(state session.State) keyMap {
	active := state.Status == session.StatusActive
	open := state.Variant() == question.VariantOpen
	k.Reveal.SetEnabled(active && open && state.Phase == session.PhaseQuestion)
	k.Correct.SetEnabled(active && open && state.Phase == session.PhaseAnswer)
	k.Incorrect.SetEnabled(active && open && state.Phase == session.PhaseAnswer)
	k.Option.SetEnabled(active && state.Variant() == question.VariantChoice)
	k.Restart.SetEnabled(state.Status != session.StatusActive)
	return k
}
