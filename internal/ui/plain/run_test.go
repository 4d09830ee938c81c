package plain

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"quizclock/internal/question"
	"quizclock/internal/session"
	"quizclock/internal/testutil"
)

type runHarness struct {
	t       *testing.T
	out     *testutil.SyncBuffer
	input   *io.PipeWriter
	tickers *testutil.FakeTickers
	done    chan session.State
}

func startRun(t *testing.T, deck question.Deck) *runHarness {
	t.Helper()
	ctx := testutil.Context(t, 0)
	reader, writer := io.Pipe()
	h := &runHarness{
		t:       t,
		out:     &testutil.SyncBuffer{},
		input:   writer,
		tickers: &testutil.FakeTickers{},
		done:    make(chan session.State, 1),
	}
	go func() {
		state, _ := Run(ctx, reader, h.out, Options{
			Loader: question.StaticLoader(deck),
			NewTicker: func(interval time.Duration) session.Ticker {
				return h.tickers.New(interval)
			},
		})
		h.done <- state
	}()
	t.Cleanup(func() { _ = writer.Close() })
	return h
}

func (h *runHarness) waitFor(text string) {
	h.t.Helper()
	testutil.Eventually(h.t, 0, func() bool {
		return strings.Contains(h.out.String(), text)
	}, "expected output to contain "+text+":\n"+h.out.String())
}

func (h *runHarness) send(line string) {
	h.t.Helper()
	if _, err := io.WriteString(h.input, line+"\n"); err != nil {
		h.t.Fatalf("write input: %v", err)
	}
}

func (h *runHarness) result() session.State {
	h.t.Helper()
	var state session.State
	testutil.RunWithTimeout(h.t, 0, func() { state = <-h.done })
	return state
}

func TestRunChoiceSession(t *testing.T) {
	h := startRun(t, choiceDeck())
	h.waitFor("Question 1 / 2")
	h.send("2")
	h.waitFor("Question 2 / 2")
	h.send("1")
	h.waitFor("Finished! Score: 2 / 2")
	h.send("q")
	state := h.result()
	if !state.Finished() || state.Score != 2 {
		t.Fatalf("expected finished with score 2, got %+v", state)
	}
}

func TestRunCountdownTimesOut(t *testing.T) {
	h := startRun(t, choiceDeck())
	h.waitFor("Question 1 / 2")
	ctx := testutil.Context(t, 0)
	active := h.tickers.Active()
	if len(active) != 1 {
		t.Fatalf("expected one active ticker, got %d", len(active))
	}
	for i := 0; i < 100; i++ {
		if !active[0].Fire(ctx) {
			t.Fatalf("tick %d not delivered", i)
		}
	}
	h.waitFor("Question 2 / 2")
	if !strings.Contains(h.out.String(), "Time's up.") {
		t.Fatalf("expected timeout notice:\n%s", h.out.String())
	}
	_ = h.input.Close()
	state := h.result()
	if state.Index != 1 || state.Score != 0 {
		t.Fatalf("expected second question unscored, got %+v", state)
	}
}

// TestRunReturnsOnCancelWithOpenInput verifies cancellation ends the session
// even while the input reader is still blocked.
func TestRunReturnsOnCancelWithOpenInput(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })
	done := make(chan error, 1)
	out := &testutil.SyncBuffer{}
	go func() {
		_, err := Run(ctx, reader, out, Options{
			Loader:    question.StaticLoader(openDeck()),
			NewTicker: func(interval time.Duration) session.Ticker { return (&testutil.FakeTickers{}).New(interval) },
		})
		done <- err
	}()
	testutil.Eventually(t, 0, func() bool {
		return strings.Contains(out.String(), "Question 1 / 2")
	}, "session never became active")
	cancel()
	var err error
	testutil.RunWithTimeout(t, 0, func() { err = <-done })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
