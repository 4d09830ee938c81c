package live

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

const maxProgressWidth = 60

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionNumber renders the 1-based position in the deck.
func formatQuestionNumber(index, total int) string {
	return "Question " + fmtInt(index+1) + " / " + fmtInt(total)
}

// formatScore renders score over total.
func formatScore(score, total int) string {
	return fmtInt(score) + " / " + fmtInt(total)
}

// formatTimeLeft renders seconds with one decimal.
func formatTimeLeft(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

// formatQuestionText truncates question text for display.
func formatQuestionText(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return ""
	}
	const limit = 60
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// formatAnswer describes what was answered for a result row.
func formatAnswer(record question.Record, result session.Result) string {
	switch result.Outcome.Kind {
	case session.OutcomeTimeout:
		return "(no answer)"
	case session.OutcomeOption:
		if result.Outcome.Option >= 0 && result.Outcome.Option < len(record.Options) {
			return formatQuestionText(record.Options[result.Outcome.Option])
		}
		return "option " + fmtInt(result.Outcome.Option+1)
	default:
		return formatQuestionText(record.Answer)
	}
}

// formatVerdict labels a result row.
func formatVerdict(result session.Result) string {
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

// timeFraction is the share of the countdown still remaining.
func timeFraction(state session.State) float64 {
	limit := state.Limit()
	if limit <= 0 {
		return 0
	}
	return state.TimeLeft() / limit
}

func progressWidth(termWidth int) int {
	width := termWidth - 4
	if width > maxProgressWidth {
		return maxProgressWidth
	}
	if width < 10 {
		return 10
	}
	return width
}

func newProgress(noColor bool) progress.Model {
	opts := []progress.Option{
		progress.WithoutPercentage(),
		progress.WithWidth(maxProgressWidth),
	}
	if noColor {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}
	return progress.New(opts...)
}
