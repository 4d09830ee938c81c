package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quizclock/internal/question"
)

var errNoLoader = errors.New("no question loader configured")

// Ticker delivers countdown signals until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker for an interval.
type TickerFactory func(interval time.Duration) Ticker

// Observer receives every state the loop settles on.
type Observer interface {
	OnState(state State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(state State)

// OnState calls f.
func (f ObserverFunc) OnState(state State) {
	f(state)
}

// LoopConfig configures a scheduler loop.
type LoopConfig struct {
	Options   Options
	Loader    question.Loader
	NewTicker TickerFactory
	Observer  Observer
	Logger    logrus.FieldLogger
	NewID     func() string
}

// Loop owns a session and drives it from intents, load results, and a
// single countdown ticker.
type Loop struct {
	opts      Options
	loader    question.Loader
	newTicker TickerFactory
	observer  Observer
	log       logrus.FieldLogger
	newID     func() string
}

// NewLoop builds a loop, filling in real tickers and UUID generation identities.
func NewLoop(cfg LoopConfig) *Loop {
	loop := &Loop{
		opts:      cfg.Options,
		loader:    cfg.Loader,
		newTicker: cfg.NewTicker,
		observer:  cfg.Observer,
		log:       cfg.Logger,
		newID:     cfg.NewID,
	}
	if loop.newTicker == nil {
		loop.newTicker = NewTicker
	}
	if loop.observer == nil {
		loop.observer = ObserverFunc(func(State) {})
	}
	if loop.log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		loop.log = logger
	}
	if loop.newID == nil {
		loop.newID = NewSessionID
	}
	return loop
}

// NewSessionID returns a fresh load generation identity.
func NewSessionID() string {
	return uuid.NewString()
}

// Run processes events until ctx is cancelled or intents is closed. It
// returns the last state.
func (l *Loop) Run(ctx context.Context, intents <-chan Event) (State, error) {
	done := make(chan struct{})
	defer close(done)
	loads := make(chan Event, 1)

	var ticker Ticker
	var ticks <-chan time.Time
	stopTicker := func() {
		if ticker == nil {
			return
		}
		ticker.Stop()
		ticker = nil
		ticks = nil
	}
	defer stopTicker()

	var state State
	apply := func(next State) {
		effects := Plan(state, next)
		if effects.StopTimer {
			stopTicker()
		}
		if effects.StartTimer {
			stopTicker()
			ticker = l.newTicker(Step)
			ticks = ticker.C()
		}
		if effects.Load {
			l.startLoad(ctx, done, next.SessionID, loads)
		}
		LogTransition(l.log, state, next)
		state = next
		l.observer.OnState(state)
	}

	apply(New(l.opts, l.newID()))
	for {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case event, ok := <-intents:
			if !ok {
				return state, nil
			}
			if event.Kind == EventRestart && event.SessionID == "" {
				event.SessionID = l.newID()
			}
			apply(Reduce(state, event))
		case event := <-loads:
			apply(Reduce(state, event))
		case <-ticks:
			apply(Reduce(state, Tick(state.TimerID)))
		}
	}
}

// startLoad resolves the deck off the loop and reports back tagged with its generation.
func (l *Loop) startLoad(ctx context.Context, done <-chan struct{}, sessionID string, loads chan<- Event) {
	loader := l.loader
	go func() {
		var event Event
		if loader == nil {
			event = LoadFailed(sessionID, errNoLoader)
		} else if deck, err := loader(ctx); err != nil {
			event = LoadFailed(sessionID, err)
		} else {
			event = Loaded(sessionID, deck)
		}
		select {
		case loads <- event:
		case <-done:
		}
	}()
}

// LogTransition records lifecycle changes at debug level and load failures at warn.
func LogTransition(log logrus.FieldLogger, prev, next State) {
	if prev.Status == next.Status && prev.Index == next.Index && prev.Phase == next.Phase &&
		prev.Score == next.Score && prev.LoadErr == next.LoadErr && prev.SessionID == next.SessionID {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"session_id": next.SessionID,
		"status":     next.Status.String(),
		"index":      next.Index,
		"phase":      next.Phase.String(),
		"score":      next.Score,
	})
	if next.LoadErr != "" && next.LoadErr != prev.LoadErr {
		entry.WithField("error", next.LoadErr).Warn("Question deck failed to load")
		return
	}
	entry.Debug("Session transition")
}

// realTicker adapts time.Ticker to Ticker.
type realTicker struct {
	ticker *time.Ticker
}

// NewTicker returns a wall-clock ticker.
func NewTicker(interval time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
