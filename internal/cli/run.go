package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"

	"quizclock/internal/config"
	"quizclock/internal/question"
	"quizclock/internal/session"
	"quizclock/internal/ui/live"
	"quizclock/internal/ui/plain"
)

// runInput allows tests to override stdin for run sessions.
var runInput io.Reader = os.Stdin

// Session drivers, swapped in tests.
var (
	runLive  = live.Run
	runPlain = plain.Run
)

// runOverrides holds flag values that take precedence over the config file.
type runOverrides struct {
	file          string
	variant       string
	timeLimit     float64
	timeoutPolicy string
	uiMode        string
	noColor       bool
	logFile       string
	logLevel      string
}

func (o runOverrides) apply(cfg *config.Config) {
	if o.file != "" {
		cfg.Quiz.File = o.file
	}
	if o.variant != "" {
		cfg.Quiz.Variant = o.variant
	}
	if o.timeLimit != 0 {
		cfg.Quiz.TimeLimitSeconds = o.timeLimit
	}
	if o.timeoutPolicy != "" {
		cfg.Quiz.TimeoutPolicy = o.timeoutPolicy
	}
	if o.uiMode != "" {
		cfg.UI.Mode = o.uiMode
	}
	if o.noColor {
		cfg.UI.NoColor = true
	}
	if o.logFile != "" {
		cfg.Log.Path = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizclock/config.yml)")
		var overrides runOverrides
		flags.StringVar(&overrides.file, "file", "", "Question deck (.csv, .yml, .json)")
		flags.StringVar(&overrides.variant, "variant", "", "Deck variant: auto|open|choice")
		flags.Float64Var(&overrides.timeLimit, "time-limit", 0, "Seconds per question")
		flags.StringVar(&overrides.timeoutPolicy, "timeout-policy", "", "Open question timeout: reveal|wrap")
		flags.StringVar(&overrides.uiMode, "ui", "", "UI mode: auto|live|plain")
		flags.BoolVar(&overrides.noColor, "no-color", false, "Disable colors in the live UI")
		flags.StringVar(&overrides.logFile, "log-file", "", "Write structured logs to this file")
		flags.StringVar(&overrides.logLevel, "log-level", "", "Log level: debug|info|warn|error")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		overrides.apply(&cfg)
		config.Normalize(&cfg, "")
		if err := config.Validate(cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options:\n%v\n", err)
			return ExitUsage
		}

		decision, err := resolveUIMode(cfg.UI.Mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := newLogger(cfg.Log)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		state, err := runSession(ctx, cfg, decision.useLive, stdout, logger)
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		printSummary(stdout, state)
		return ExitOK
	}
}

// runSession starts the chosen driver against the configured deck.
func runSession(ctx context.Context, cfg config.Config, useLive bool, stdout io.Writer, logger *logrus.Logger) (session.State, error) {
	variant, err := question.ParseVariant(cfg.Quiz.Variant)
	if err != nil {
		return session.State{}, err
	}
	policy, err := session.ParseTimeoutPolicy(cfg.Quiz.TimeoutPolicy)
	if err != nil {
		return session.State{}, err
	}
	opts := session.Options{TimeLimit: cfg.Quiz.TimeLimit(), TimeoutPolicy: policy}
	loader := question.FileLoader(cfg.Quiz.File, variant)
	log := logger.WithField("deck", cfg.Quiz.File)
	log.WithFields(logrus.Fields{
		"variant":    variant,
		"time_limit": opts.TimeLimit.String(),
		"policy":     policy,
		"live":       useLive,
	}).Info("starting session")

	if useLive {
		return runLive(ctx, runInput, stdout, live.Options{
			Session: opts,
			Loader:  loader,
			NoColor: cfg.UI.NoColor,
			Logger:  log,
		})
	}
	return runPlain(ctx, runInput, stdout, plain.Options{
		Session: opts,
		Loader:  loader,
		Logger:  log,
	})
}

// printSummary reports the final score once the UI has exited.
func printSummary(w io.Writer, state session.State) {
	if state.Status == session.StatusLoading {
		if state.LoadErr != "" {
			fmt.Fprintf(w, "No questions loaded: %s\n", state.LoadErr)
		}
		return
	}
	if state.Finished() {
		fmt.Fprintf(w, "Final score: %d / %d\n", state.Score, state.Total())
		return
	}
	fmt.Fprintf(w, "Stopped at question %d / %d with score %d\n", state.Index+1, state.Total(), state.Score)
}
