package plain

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

func openDeck() question.Deck {
	return question.Deck{
		Variant: question.VariantOpen,
		Records: []question.Record{
			{Prompt: "Q1", Answer: "A1", Info: "extra detail"},
			{Prompt: "Q2", Answer: "A2"},
		},
	}
}

func choiceDeck() question.Deck {
	return question.Deck{
		Variant: question.VariantChoice,
		Records: []question.Record{
			{Prompt: "2+2?", Options: []string{"3", "4"}, CorrectIndex: 1},
			{Prompt: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectIndex: 0},
		},
	}
}

// replay feeds each reduced state to a renderer and returns its output.
func replay(start session.State, events ...session.Event) string {
	var out bytes.Buffer
	renderer := NewRenderer(&out)
	state := start
	renderer.OnState(state)
	for _, event := range events {
		state = session.Reduce(state, event)
		renderer.OnState(state)
	}
	return out.String()
}

func ticks(timerID uint64, n int) []session.Event {
	events := make([]session.Event, n)
	for i := range events {
		events[i] = session.Tick(timerID)
	}
	return events
}

func TestRendererOpenFlow(t *testing.T) {
	start := session.New(session.Options{}, "gen-1")
	output := replay(start,
		session.Loaded("gen-1", openDeck()),
		session.Reveal(),
		session.JudgeAnswer(true),
		session.Reveal(),
		session.JudgeAnswer(false),
	)
	for _, want := range []string{
		"Loading questions...",
		"Question 1 / 2 | Score: 0 | 10.0s",
		"Answer: A1",
		"Info: extra detail",
		"Correct!",
		"Question 2 / 2 | Score: 1",
		"Marked for review.",
		"Finished! Score: 1 / 2",
		"1. Q1: correct",
		"2. Q2: needs review",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Count(output, "Info:") != 1 {
		t.Fatalf("info should only print for records that have it:\n%s", output)
	}
}

func TestRendererChoiceTimeout(t *testing.T) {
	start := session.Reduce(session.New(session.Options{}, "gen-1"), session.Loaded("gen-1", choiceDeck()))
	events := ticks(start.TimerID, 100)
	events = append(events, session.Select(1))
	output := replay(start, events...)
	for _, want := range []string{"1) 3", "2) 4", "3.0s left", "1.0s left", "Time's up.", "Question 2 / 2", "Incorrect. Answer: Paris"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "9.0s left") {
		t.Fatalf("only late countdown marks should print:\n%s", output)
	}
}

func TestRendererWrapPolicy(t *testing.T) {
	opts := session.Options{TimeLimit: session.Step * 5, TimeoutPolicy: session.TimeoutWrap}
	start := session.Reduce(session.New(opts, "gen-1"), session.Loaded("gen-1", openDeck()))
	output := replay(start, ticks(start.TimerID, 5)...)
	if !strings.Contains(output, "Countdown restarted.") {
		t.Fatalf("expected wrap notice:\n%s", output)
	}
	if strings.Contains(output, "Answer:") {
		t.Fatalf("wrap policy must not reveal the answer:\n%s", output)
	}
}

func TestRendererRevealPolicyOnTimeout(t *testing.T) {
	opts := session.Options{TimeLimit: session.Step * 5}
	start := session.Reduce(session.New(opts, "gen-1"), session.Loaded("gen-1", openDeck()))
	output := replay(start, ticks(start.TimerID, 5)...)
	if !strings.Contains(output, "Time's up.\nAnswer: A1") {
		t.Fatalf("expected timeout reveal:\n%s", output)
	}
}

func TestRendererLoadError(t *testing.T) {
	start := session.New(session.Options{}, "gen-1")
	output := replay(start, session.LoadFailed("gen-1", errors.New("missing file")))
	if !strings.Contains(output, "Could not load questions: missing file") {
		t.Fatalf("expected load error:\n%s", output)
	}
}
