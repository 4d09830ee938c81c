package live

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

// Model renders a quiz session using Bubble Tea.
type Model struct {
	state    session.State
	loader   question.Loader
	newID    func() string
	keys     keyMap
	help     help.Model
	progress progress.Model
	table    table.Model
	log      logrus.FieldLogger
	noColor  bool
	width    int
}

// Options configures the live UI model.
type Options struct {
	Session session.Options
	Loader  question.Loader
	NoColor bool
	Logger  logrus.FieldLogger
	NewID   func() string
}

// NewModel constructs a live UI model in the loading state.
func NewModel(opts Options) Model {
	newID := opts.NewID
	if newID == nil {
		newID = session.NewSessionID
	}
	log := opts.Logger
	if log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		log = logger
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	state := session.New(opts.Session, newID())
	return Model{
		state:    state,
		loader:   opts.Loader,
		newID:    newID,
		keys:     defaultKeyMap().forState(state),
		help:     help.New(),
		progress: newProgress(opts.NoColor),
		table:    t,
		log:      log,
		noColor:  opts.NoColor,
	}
}

// State returns the current session state.
func (m Model) State() session.State {
	return m.state
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return m.effects(session.State{}, m.state)
}

// Update routes key presses, load results, and countdown ticks into the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.progress.Width = progressWidth(typed.Width)
		m.help.Width = typed.Width
		m.table.SetWidth(typed.Width)
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case loadedMsg:
		return m.apply(typed.event)
	case tickMsg:
		return m.applyTick(typed)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// View renders the screen for the current state.
func (m Model) View() string {
	return renderScreen(m)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reveal):
		return m.apply(session.Reveal())
	case key.Matches(msg, m.keys.Correct):
		return m.apply(session.JudgeAnswer(true))
	case key.Matches(msg, m.keys.Incorrect):
		return m.apply(session.JudgeAnswer(false))
	case key.Matches(msg, m.keys.Option):
		option, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		return m.apply(session.Select(option - 1))
	case key.Matches(msg, m.keys.Restart):
		return m.apply(session.Restart(m.newID()))
	}
	return m, nil
}

// applyTick advances the countdown. Ticks from a superseded timer are
// dropped without rescheduling, which ends their chain.
func (m Model) applyTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.timerID != m.state.TimerID || !m.state.Ticking() {
		return m, nil
	}
	model, cmd := m.apply(session.Tick(msg.timerID))
	next := model.(Model)
	if next.state.Ticking() && next.state.TimerID == msg.timerID {
		cmd = tea.Batch(cmd, tick(msg.timerID))
	}
	return next, cmd
}

// apply reduces an event and schedules the resulting effects.
func (m Model) apply(event session.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	m.state = session.Reduce(prev, event)
	session.LogTransition(m.log, prev, m.state)
	m.keys = m.keys.forState(m.state)
	if m.state.Finished() && !prev.Finished() {
		m.table.SetRows(rowsForState(m.state))
	}
	return m, m.effects(prev, m.state)
}

// effects turns a session plan into commands. Stopping a timer needs no
// command: its pending tick carries an old TimerID and is dropped.
func (m Model) effects(prev, next session.State) tea.Cmd {
	plan := session.Plan(prev, next)
	var cmds []tea.Cmd
	if plan.Load {
		cmds = append(cmds, loadDeck(m.loader, next.SessionID))
	}
	if plan.StartTimer {
		cmds = append(cmds, tick(next.TimerID))
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

var errNoLoader = errors.New("no question loader configured")

// loadedMsg carries a load result tagged with its generation.
type loadedMsg struct {
	event session.Event
}

// tickMsg carries one countdown step for a timer.
type tickMsg struct {
	timerID uint64
}

// loadDeck resolves the deck off the update loop.
func loadDeck(loader question.Loader, sessionID string) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return loadedMsg{event: session.LoadFailed(sessionID, errNoLoader)}
		}
		deck, err := loader(context.Background())
		if err != nil {
			return loadedMsg{event: session.LoadFailed(sessionID, err)}
		}
		return loadedMsg{event: session.Loaded(sessionID, deck)}
	}
}

// tick emits one countdown step after session.Step.
func tick(timerID uint64) tea.Cmd {
	return tea.Tick(session.Step, func(time.Time) tea.Msg { return tickMsg{timerID: timerID} })
}
