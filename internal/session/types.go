package session

import (
	"fmt"
	"strings"
	"time"

	"quizclock/internal/question"
)

// Status is the top-level lifecycle state of a session.
type Status int

const (
	// StatusLoading waits for the deck of the current load generation.
	StatusLoading Status = iota
	// StatusActive iterates questions.
	StatusActive
	// StatusFinished is terminal until a restart.
	StatusFinished
)

// String returns the status label.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Phase distinguishes the question screen from the revealed answer.
type Phase int

const (
	// PhaseQuestion shows the prompt with the countdown running.
	PhaseQuestion Phase = iota
	// PhaseAnswer shows the answer and waits for a judgment.
	PhaseAnswer
)

// String returns the phase label.
func (p Phase) String() string {
	if p == PhaseAnswer {
		return "answer"
	}
	return "question"
}

// TimeoutPolicy decides what an expired countdown does in an open deck.
type TimeoutPolicy string

const (
	// TimeoutReveal switches to the answer phase when time runs out.
	TimeoutReveal TimeoutPolicy = "reveal"
	// TimeoutWrap silently restarts the countdown and stays on the question.
	TimeoutWrap TimeoutPolicy = "wrap"
)

// ParseTimeoutPolicy converts user input into a TimeoutPolicy.
func ParseTimeoutPolicy(value string) (TimeoutPolicy, error) {
	switch TimeoutPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", TimeoutReveal:
		return TimeoutReveal, nil
	case TimeoutWrap:
		return TimeoutWrap, nil
	default:
		return "", fmt.Errorf("invalid timeout policy %q (expected reveal|wrap)", value)
	}
}

// DefaultTimeLimit is the per-question countdown.
const DefaultTimeLimit = 10 * time.Second

// Options configures a session.
type Options struct {
	TimeLimit     time.Duration
	TimeoutPolicy TimeoutPolicy
}

// Result records how one question was judged.
type Result struct {
	Index   int
	Outcome Outcome
	Correct bool
}

// State is the complete mutable state of a quiz session. It is only changed
// through Reduce.
type State struct {
	SessionID string
	Status    Status
	Deck      question.Deck
	Index     int
	Score     int
	Phase     Phase
	Results   []Result
	LoadErr   string
	TimerID   uint64

	remaining int
	limit     int
	policy    TimeoutPolicy
}

// New returns a loading session for the given load generation.
func New(opts Options, sessionID string) State {
	limit := tenthsFor(opts.TimeLimit)
	policy := opts.TimeoutPolicy
	if policy == "" {
		policy = TimeoutReveal
	}
	return State{
		SessionID: sessionID,
		Status:    StatusLoading,
		Phase:     PhaseQuestion,
		remaining: limit,
		limit:     limit,
		policy:    policy,
	}
}

// Options returns the options the session was created with.
func (s State) Options() Options {
	return Options{TimeLimit: time.Duration(s.limit) * Step, TimeoutPolicy: s.policy}
}

// Total returns the number of questions in the deck.
func (s State) Total() int {
	return s.Deck.Len()
}

// Variant returns the variant of the loaded deck.
func (s State) Variant() question.Variant {
	return s.Deck.Variant
}

// Current returns the record on screen. It reports false while loading.
func (s State) Current() (question.Record, bool) {
	if s.Status == StatusLoading || s.Index < 0 || s.Index >= s.Deck.Len() {
		return question.Record{}, false
	}
	return s.Deck.Records[s.Index], true
}

// Finished reports whether the session reached its terminal state.
func (s State) Finished() bool {
	return s.Status == StatusFinished
}

// TimeLeft returns the remaining countdown in seconds.
func (s State) TimeLeft() float64 {
	return seconds(s.remaining)
}

// Limit returns the full countdown in seconds.
func (s State) Limit() float64 {
	return seconds(s.limit)
}

// Remaining returns the remaining countdown in steps.
func (s State) Remaining() int {
	return s.remaining
}

// Ticking reports whether the countdown should be running.
func (s State) Ticking() bool {
	if s.Status != StatusActive {
		return false
	}
	if s.Deck.Variant == question.VariantChoice {
		return true
	}
	return s.Phase == PhaseQuestion
}
