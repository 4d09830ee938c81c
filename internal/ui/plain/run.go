package plain

import (
	"bufio"
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

// Options configures a plain session.
type Options struct {
	Session   session.Options
	Loader    question.Loader
	Logger    logrus.FieldLogger
	NewTicker session.TickerFactory
	NewID     func() string
}

// Run drives a session from line input until the user quits, input ends, or
// ctx is cancelled. It returns the last state. On cancellation the input
// reader goroutine stays blocked in Scan until in yields or closes; callers
// that reuse in must close it themselves.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (session.State, error) {
	loop := session.NewLoop(session.LoopConfig{
		Options:   opts.Session,
		Loader:    opts.Loader,
		NewTicker: opts.NewTicker,
		Observer:  NewRenderer(out),
		Logger:    opts.Logger,
		NewID:     opts.NewID,
	})
	intents := make(chan session.Event)
	go readCommands(ctx, in, intents)
	return loop.Run(ctx, intents)
}

// readCommands forwards parsed lines and closes intents on quit or EOF.
// A blocked read is not interruptible by ctx.
func readCommands(ctx context.Context, in io.Reader, intents chan<- session.Event) {
	defer close(intents)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := ParseCommand(scanner.Text())
		if cmd.Quit {
			return
		}
		if !cmd.Valid {
			continue
		}
		select {
		case intents <- cmd.Event:
		case <-ctx.Done():
			return
		}
	}
}
