package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

// lowTimeSeconds turns the countdown red below this many seconds.
const lowTimeSeconds = 3.0

// renderScreen renders the whole view for the model's state.
func renderScreen(m Model) string {
	var body string
	switch m.state.Status {
	case session.StatusLoading:
		body = renderLoading(m.state, m.noColor)
	case session.StatusFinished:
		body = renderFinished(m)
	default:
		if m.state.Variant() == question.VariantOpen && m.state.Phase == session.PhaseAnswer {
			body = renderAnswer(m)
		} else {
			body = renderQuestion(m)
		}
	}
	return body + "\n\n" + m.help.View(m.keys) + "\n"
}

// renderLoading renders the placeholder shown until a deck arrives.
func renderLoading(state session.State, noColor bool) string {
	if state.LoadErr == "" {
		return stylize("Loading questions...", noColor, lipgloss.Color("242"))
	}
	return stylize("Loading questions...", noColor, lipgloss.Color("242")) + "\n" +
		stylize("Could not load questions: "+state.LoadErr, noColor, lipgloss.Color("196"))
}

// renderHeader renders the question counter and running score.
func renderHeader(state session.State, noColor bool) string {
	line := formatQuestionNumber(state.Index, state.Total()) + " | Score: " + fmtInt(state.Score)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderCountdown renders the thinking time label, seconds left, and bar.
func renderCountdown(m Model) string {
	left := m.state.TimeLeft()
	seconds := formatTimeLeft(left)
	if left < lowTimeSeconds {
		seconds = stylize(seconds, m.noColor, lipgloss.Color("196"))
	}
	label := stylize("THINKING TIME", m.noColor, lipgloss.Color("242"))
	return label + "  " + seconds + "\n" + m.progress.ViewAs(timeFraction(m.state))
}

func renderQuestion(m Model) string {
	record, _ := m.state.Current()
	parts := []string{
		renderHeader(m.state, m.noColor),
		renderCountdown(m),
		"",
		bold(record.Prompt, m.noColor),
	}
	if m.state.Variant() == question.VariantChoice {
		parts = append(parts, "", renderOptions(record.Options))
	}
	return strings.Join(parts, "\n")
}

func renderAnswer(m Model) string {
	record, _ := m.state.Current()
	prompt := record.Prompt
	if !m.noColor {
		prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true).Render(prompt)
	}
	parts := []string{
		renderHeader(m.state, m.noColor),
		"",
		prompt,
		"",
		bold(record.Answer, m.noColor),
	}
	if record.HasInfo() {
		parts = append(parts, "", renderInfo(record.Info, m.noColor))
	}
	return strings.Join(parts, "\n")
}

// renderOptions numbers the choices starting at 1.
func renderOptions(options []string) string {
	lines := make([]string, 0, len(options))
	for i, option := range options {
		lines = append(lines, fmtInt(i+1)+") "+option)
	}
	return strings.Join(lines, "\n")
}

// renderInfo boxes the supplementary note.
func renderInfo(info string, noColor bool) string {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if !noColor {
		style = style.BorderForeground(lipgloss.Color("242"))
	}
	return style.Render(info)
}

func renderFinished(m Model) string {
	title := bold("Finished!", m.noColor)
	score := "Your score: " + formatScore(m.state.Score, m.state.Total())
	return strings.Join([]string{title, "", score, "", m.table.View()}, "\n")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func bold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}
