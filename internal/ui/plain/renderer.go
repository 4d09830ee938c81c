package plain

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

// warnSteps are the remaining step counts announced in plain output
// (5.0s, 3.0s, 2.0s, 1.0s).
var warnSteps = map[int]bool{50: true, 30: true, 20: true, 10: true}

// Renderer writes a line-oriented transcript of a session. It implements
// session.Observer and only prints when something visible changes.
type Renderer struct {
	mu   sync.Mutex
	out  io.Writer
	last session.State
	seen bool
}

// NewRenderer returns a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// OnState renders the difference between the previous and current state.
func (r *Renderer) OnState(state session.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.last
	first := !r.seen
	r.last = state
	r.seen = true

	if len(state.Results) > len(prev.Results) && state.SessionID == prev.SessionID {
		r.printVerdict(state, state.Results[len(state.Results)-1])
	}

	switch state.Status {
	case session.StatusLoading:
		if first || prev.SessionID != state.SessionID {
			r.println("Loading questions...")
		}
		if state.LoadErr != "" && state.LoadErr != prev.LoadErr {
			r.println("Could not load questions: " + state.LoadErr)
			r.println("Type restart to try again or q to quit.")
		}
	case session.StatusActive:
		r.renderActive(prev, state)
	case session.StatusFinished:
		if prev.Status != session.StatusFinished {
			r.renderFinished(state)
		}
	}
}

func (r *Renderer) renderActive(prev, state session.State) {
	newQuestion := prev.Status != session.StatusActive || prev.SessionID != state.SessionID || prev.Index != state.Index
	if newQuestion {
		r.renderQuestion(state)
		return
	}
	if prev.Phase == session.PhaseQuestion && state.Phase == session.PhaseAnswer {
		if state.Remaining() == 0 {
			r.println("Time's up.")
		}
		r.renderAnswer(state)
		return
	}
	if state.Remaining() > prev.Remaining() {
		r.println("Time's up. Countdown restarted.")
		return
	}
	if state.Ticking() && state.Remaining() < prev.Remaining() && warnSteps[state.Remaining()] {
		r.println(fmt.Sprintf("  %.1fs left", state.TimeLeft()))
	}
}

func (r *Renderer) renderQuestion(state session.State) {
	record, ok := state.Current()
	if !ok {
		return
	}
	r.println("")
	r.println(fmt.Sprintf("Question %d / %d | Score: %d | %.1fs", state.Index+1, state.Total(), state.Score, state.TimeLeft()))
	r.println(record.Prompt)
	if state.Variant() == question.VariantChoice {
		for i, option := range record.Options {
			r.println(fmt.Sprintf("  %d) %s", i+1, option))
		}
		r.println("Type an option number and press enter.")
		return
	}
	r.println("Press enter to show the answer.")
}

func (r *Renderer) renderAnswer(state session.State) {
	record, ok := state.Current()
	if !ok {
		return
	}
	r.println("Answer: " + record.Answer)
	if record.HasInfo() {
		r.println("Info: " + record.Info)
	}
	r.println("Did you get it? (y/n)")
}

func (r *Renderer) printVerdict(state session.State, result session.Result) {
	switch {
	case result.Outcome.Kind == session.OutcomeTimeout:
		r.println("Time's up.")
	case result.Correct:
		r.println("Correct!")
	case result.Outcome.Kind == session.OutcomeSelf:
		r.println("Marked for review.")
	default:
		if result.Index < state.Deck.Len() {
			record := state.Deck.Records[result.Index]
			if record.CorrectIndex >= 0 && record.CorrectIndex < len(record.Options) {
				r.println("Incorrect. Answer: " + record.Options[record.CorrectIndex])
				return
			}
		}
		r.println("Incorrect.")
	}
}

func (r *Renderer) renderFinished(state session.State) {
	r.println("")
	r.println(fmt.Sprintf("Finished! Score: %d / %d", state.Score, state.Total()))
	for _, result := range state.Results {
		if result.Index >= state.Deck.Len() {
			continue
		}
		prompt := strings.Join(strings.Fields(state.Deck.Records[result.Index].Prompt), " ")
		r.println(fmt.Sprintf("  %d. %s: %s", result.Index+1, prompt, verdict(result)))
	}
	r.println("Type restart to play again or q to quit.")
}

func (r *Renderer) println(line string) {
	fmt.Fprintln(r.out, line)
}

func verdict(result session.Result) string {
	switch {
	case result.Outcome.Kind == session.OutcomeTimeout:
		return "timed out"
	case result.Correct:
		return "correct"
	case result.Outcome.Kind == session.OutcomeSelf:
		return "needs review"
	default:
		return "incorrect"
	}
}
