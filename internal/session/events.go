package session

import "quizclock/internal/question"

// EventKind identifies the type of session event.
type EventKind int

const (
	// EventLoaded delivers a deck for a load generation.
	EventLoaded EventKind = iota
	// EventLoadFailed reports a failed load for a load generation.
	EventLoadFailed
	// EventTick advances the countdown armed under TimerID.
	EventTick
	// EventReveal shows the answer.
	EventReveal
	// EventJudge records a self-assessment.
	EventJudge
	// EventSelect picks an option.
	EventSelect
	// EventRestart starts a new load generation.
	EventRestart
)

// Event is a timer signal, load result, or user intent.
type Event struct {
	Kind      EventKind
	SessionID string
	Deck      question.Deck
	Err       error
	TimerID   uint64
	Correct   bool
	Option    int
}

// Loaded builds a load completion event.
func Loaded(sessionID string, deck question.Deck) Event {
	return Event{Kind: EventLoaded, SessionID: sessionID, Deck: deck}
}

// LoadFailed builds a load failure event.
func LoadFailed(sessionID string, err error) Event {
	return Event{Kind: EventLoadFailed, SessionID: sessionID, Err: err}
}

// Tick builds a countdown event for a timer.
func Tick(timerID uint64) Event {
	return Event{Kind: EventTick, TimerID: timerID}
}

// Reveal builds a reveal intent.
func Reveal() Event {
	return Event{Kind: EventReveal}
}

// JudgeAnswer builds a self-assessment intent.
func JudgeAnswer(correct bool) Event {
	return Event{Kind: EventJudge, Correct: correct}
}

// Select builds an option selection intent.
func Select(option int) Event {
	return Event{Kind: EventSelect, Option: option}
}

// Restart builds a restart intent for a new load generation.
func Restart(sessionID string) Event {
	return Event{Kind: EventRestart, SessionID: sessionID}
}
