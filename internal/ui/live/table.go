package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizclock/internal/session"
)

// defaultColumns lays out the review table for an unknown terminal width.
func defaultColumns() []table.Column {
	return columnsForWidth(0)
}

// columnsForWidth widens the question column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	question := 40
	if width > 0 {
		question = width - 4 - 24 - 14 - 8
		if question < 20 {
			question = 20
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: question},
		{Title: "Answer", Width: 24},
		{Title: "Result", Width: 14},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Cell
	return styles
}

// rowsForState converts recorded results into review rows.
func rowsForState(state session.State) []table.Row {
	rows := make([]table.Row, 0, len(state.Results))
	for _, result := range state.Results {
		if result.Index < 0 || result.Index >= state.Deck.Len() {
			continue
		}
		record := state.Deck.Records[result.Index]
		rows = append(rows, table.Row{
			fmtInt(result.Index + 1),
			formatQuestionText(record.Prompt),
			formatAnswer(record, result),
			formatVerdict(result),
		})
	}
	return rows
}
