package session

import "quizclock/internal/question"

// OutcomeKind identifies how a question was answered.
type OutcomeKind int

const (
	// OutcomeSelf is the player's own verdict after seeing the answer.
	OutcomeSelf OutcomeKind = iota
	// OutcomeOption is a selected option index.
	OutcomeOption
	// OutcomeTimeout means the countdown ran out first.
	OutcomeTimeout
)

// Outcome is the input to Judge.
type Outcome struct {
	Kind    OutcomeKind
	Correct bool
	Option  int
}

// SelfAssessed returns a self-graded outcome.
func SelfAssessed(correct bool) Outcome {
	return Outcome{Kind: OutcomeSelf, Correct: correct}
}

// Selected returns an option-selection outcome.
func Selected(option int) Outcome {
	return Outcome{Kind: OutcomeOption, Option: option}
}

// TimedOut returns the timeout outcome.
func TimedOut() Outcome {
	return Outcome{Kind: OutcomeTimeout, Option: -1}
}

// Judge returns the score delta, 0 or 1, for an outcome on a record.
func Judge(record question.Record, outcome Outcome) int {
	switch outcome.Kind {
	case OutcomeSelf:
		if outcome.Correct {
			return 1
		}
	case OutcomeOption:
		if outcome.Option == record.CorrectIndex && outcome.Option >= 0 && outcome.Option < len(record.Options) {
			return 1
		}
	}
	return 0
}
