package session

import (
	"time"

	"quizclock/internal/question"
)

// openDeck builds an open-response deck with n records.
func openDeck(n int) question.Deck {
	records := make([]question.Record, n)
	for i := range records {
		records[i] = question.Record{Prompt: "Q", Answer: "A"}
	}
	return question.Deck{Variant: question.VariantOpen, Records: records}
}

// choiceDeck builds a three-option deck with the given answer key.
func choiceDeck(correct ...int) question.Deck {
	records := make([]question.Record, len(correct))
	for i, index := range correct {
		records[i] = question.Record{
			Prompt:       "Q",
			Options:      []string{"a", "b", "c"},
			CorrectIndex: index,
		}
	}
	return question.Deck{Variant: question.VariantChoice, Records: records}
}

// activeState returns a session that has loaded deck under a fixed id.
func activeState(deck question.Deck, policy TimeoutPolicy) State {
	state := New(Options{TimeLimit: 10 * time.Second, TimeoutPolicy: policy}, "gen-1")
	return Reduce(state, Loaded("gen-1", deck))
}

// tickN delivers n ticks for the currently armed timer.
func tickN(state State, n int) State {
	for i := 0; i < n; i++ {
		state = Reduce(state, Tick(state.TimerID))
	}
	return state
}
