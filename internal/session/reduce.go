package session

import "quizclock/internal/question"

// Reduce applies an event to the session state and returns the new state.
// Events that do not apply to the current state leave it unchanged.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventLoaded:
		return applyLoaded(state, event)
	case EventLoadFailed:
		return applyLoadFailed(state, event)
	case EventTick:
		return applyTick(state, event.TimerID)
	case EventReveal:
		return applyReveal(state)
	case EventJudge:
		if state.Status != StatusActive || state.Variant() != question.VariantOpen || state.Phase != PhaseAnswer {
			return state
		}
		return judgeAndAdvance(state, SelfAssessed(event.Correct))
	case EventSelect:
		return applySelect(state, event.Option)
	case EventRestart:
		return applyRestart(state, event.SessionID)
	default:
		return state
	}
}

// applyLoaded activates the session when the deck belongs to this generation.
func applyLoaded(state State, event Event) State {
	if state.Status != StatusLoading || event.SessionID != state.SessionID {
		return state
	}
	if event.Deck.Len() == 0 {
		state.LoadErr = "no questions loaded"
		return state
	}
	state.Status = StatusActive
	state.Deck = event.Deck
	state.Index = 0
	state.Score = 0
	state.Phase = PhaseQuestion
	state.Results = nil
	state.LoadErr = ""
	state.remaining = state.limit
	state.TimerID++
	return state
}

// applyLoadFailed records the failure and stays in loading.
func applyLoadFailed(state State, event Event) State {
	if state.Status != StatusLoading || event.SessionID != state.SessionID {
		return state
	}
	if event.Err != nil {
		state.LoadErr = event.Err.Error()
	} else {
		state.LoadErr = "load failed"
	}
	return state
}

// applyTick counts down one step and handles expiry.
func applyTick(state State, timerID uint64) State {
	if !state.Ticking() || timerID != state.TimerID {
		return state
	}
	state.remaining = countDown(state.remaining)
	if state.remaining > 0 {
		return state
	}
	if state.Variant() == question.VariantChoice {
		return judgeAndAdvance(state, TimedOut())
	}
	if state.policy == TimeoutWrap {
		state.remaining = state.limit
		return state
	}
	state.Phase = PhaseAnswer
	return state
}

func applyReveal(state State) State {
	if state.Status != StatusActive || state.Variant() != question.VariantOpen || state.Phase != PhaseQuestion {
		return state
	}
	state.Phase = PhaseAnswer
	return state
}

func applySelect(state State, option int) State {
	if state.Status != StatusActive || state.Variant() != question.VariantChoice {
		return state
	}
	record, ok := state.Current()
	if !ok || option < 0 || option >= len(record.Options) {
		return state
	}
	return judgeAndAdvance(state, Selected(option))
}

// judgeAndAdvance scores the current record, then moves on.
func judgeAndAdvance(state State, outcome Outcome) State {
	record, ok := state.Current()
	if !ok {
		return state
	}
	delta := Judge(record, outcome)
	state.Score += delta
	state.Results = append(state.Results[:len(state.Results):len(state.Results)], Result{
		Index:   state.Index,
		Outcome: outcome,
		Correct: delta == 1,
	})
	return advance(state)
}

// advance moves to the next question or finishes the session.
func advance(state State) State {
	if state.Index+1 < state.Total() {
		state.Index++
		state.Phase = PhaseQuestion
		state.remaining = state.limit
		state.TimerID++
		return state
	}
	state.Status = StatusFinished
	return state
}

// applyRestart discards the session and starts a new load generation.
func applyRestart(state State, sessionID string) State {
	if state.Status == StatusActive || sessionID == "" || sessionID == state.SessionID {
		return state
	}
	next := New(state.Options(), sessionID)
	next.TimerID = state.TimerID
	return next
}
