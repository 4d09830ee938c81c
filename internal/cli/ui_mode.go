package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// UI modes accepted by --ui and ui.mode.
const (
	uiModeAuto  = "auto"
	uiModeLive  = "live"
	uiModePlain = "plain"
)

// liveFallbackWarning is printed when the countdown screen cannot be drawn.
const liveFallbackWarning = "The live quiz screen needs a terminal; stdout is not a TTY, so questions will be printed as a plain transcript."

// uiModeDecision records which quiz driver to start.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = writerIsTerminal

// resolveUIMode picks the live countdown screen or the plain transcript.
// Auto uses the live screen only when stdout is a terminal.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", uiModeAuto:
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case uiModeLive:
		if isTerminal(stdout) {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{warning: liveFallbackWarning}, nil
	case uiModePlain:
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", mode, uiModeAuto, uiModeLive, uiModePlain)
	}
}

func writerIsTerminal(w io.Writer) bool {
	fder, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
