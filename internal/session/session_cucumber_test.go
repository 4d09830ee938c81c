//go:build cucumber

package session

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"quizclock/internal/question"
)

// TestSessionScenarios runs the quiz session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "quiz-session", "session.feature")
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	s := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s.reset()
		return ctx, nil
	})

	ctx.Step(`^a multiple choice deck with answer key "([^"]*)"$`, s.givenChoiceDeck)
	ctx.Step(`^an open response deck with (\d+) questions?$`, s.givenOpenDeck)
	ctx.Step(`^the timeout policy is "([^"]*)"$`, s.givenPolicy)
	ctx.Step(`^the deck finishes loading$`, s.whenLoaded)
	ctx.Step(`^I select option (\d+)$`, s.whenSelect)
	ctx.Step(`^I reveal the answer$`, s.whenReveal)
	ctx.Step(`^I judge my answer (correct|incorrect)$`, s.whenJudge)
	ctx.Step(`^the countdown ticks (\d+) times$`, s.whenTicks)
	ctx.Step(`^I restart$`, s.whenRestart)
	ctx.Step(`^the score is (\d+)$`, s.thenScore)
	ctx.Step(`^the session is finished$`, s.thenFinished)
	ctx.Step(`^the current question is (\d+)$`, s.thenQuestion)
	ctx.Step(`^the phase is "([^"]*)"$`, s.thenPhase)
	ctx.Step(`^the time left is ([\d.]+) seconds$`, s.thenTimeLeft)
}

type sessionScenarioState struct {
	deck       question.Deck
	policy     TimeoutPolicy
	state      State
	started    bool
	generation int
}

// reset clears scenario state.
func (s *sessionScenarioState) reset() {
	*s = sessionScenarioState{policy: TimeoutReveal}
}

// apply reduces an event and checks the score bound after every transition.
func (s *sessionScenarioState) apply(event Event) error {
	s.state = Reduce(s.state, event)
	if s.state.Score < 0 || s.state.Score > s.state.Total() {
		return fmt.Errorf("score %d out of bounds for %d questions", s.state.Score, s.state.Total())
	}
	return nil
}

func (s *sessionScenarioState) givenChoiceDeck(key string) error {
	var correct []int
	for _, part := range strings.Split(key, ",") {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		correct = append(correct, value)
	}
	s.deck = choiceDeck(correct...)
	return nil
}

func (s *sessionScenarioState) givenOpenDeck(count int) error {
	s.deck = openDeck(count)
	return nil
}

func (s *sessionScenarioState) givenPolicy(value string) error {
	policy, err := ParseTimeoutPolicy(value)
	if err != nil {
		return err
	}
	s.policy = policy
	return nil
}

// whenLoaded starts the session if needed and delivers the deck for the current generation.
func (s *sessionScenarioState) whenLoaded() error {
	if !s.started {
		s.generation++
		s.state = New(Options{TimeoutPolicy: s.policy}, fmt.Sprintf("gen-%d", s.generation))
		s.started = true
	}
	return s.apply(Loaded(s.state.SessionID, s.deck))
}

func (s *sessionScenarioState) whenSelect(option int) error {
	return s.apply(Select(option))
}

func (s *sessionScenarioState) whenReveal() error {
	return s.apply(Reveal())
}

func (s *sessionScenarioState) whenJudge(verdict string) error {
	return s.apply(JudgeAnswer(verdict == "correct"))
}

func (s *sessionScenarioState) whenTicks(count int) error {
	for i := 0; i < count; i++ {
		if err := s.apply(Tick(s.state.TimerID)); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionScenarioState) whenRestart() error {
	s.generation++
	return s.apply(Restart(fmt.Sprintf("gen-%d", s.generation)))
}

func (s *sessionScenarioState) thenScore(score int) error {
	if s.state.Score != score {
		return fmt.Errorf("expected score %d, got %d", score, s.state.Score)
	}
	return nil
}

func (s *sessionScenarioState) thenFinished() error {
	if !s.state.Finished() {
		return fmt.Errorf("expected finished session, got %s", s.state.Status)
	}
	return nil
}

func (s *sessionScenarioState) thenQuestion(number int) error {
	if s.state.Index+1 != number {
		return fmt.Errorf("expected question %d, got %d", number, s.state.Index+1)
	}
	return nil
}

func (s *sessionScenarioState) thenPhase(phase string) error {
	if s.state.Phase.String() != phase {
		return fmt.Errorf("expected phase %s, got %s", phase, s.state.Phase)
	}
	return nil
}

func (s *sessionScenarioState) thenTimeLeft(value string) error {
	expected, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	if s.state.TimeLeft() != expected {
		return fmt.Errorf("expected %.1fs left, got %.1fs", expected, s.state.TimeLeft())
	}
	return nil
}
