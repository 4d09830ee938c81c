package plain

import (
	"strconv"
	"strings"

	"quizclock/internal/session"
)

// Command is a parsed line of user input.
type Command struct {
	Event session.Event
	Quit  bool
	Valid bool
}

// ParseCommand maps one input line to a session intent. An empty line
// reveals the answer. Restart carries no SessionID; the loop assigns one.
func ParseCommand(line string) Command {
	input := strings.ToLower(strings.TrimSpace(line))
	switch input {
	case "", "s", "show":
		return Command{Event: session.Reveal(), Valid: true}
	case "y", "yes":
		return Command{Event: session.JudgeAnswer(true), Valid: true}
	case "n", "no":
		return Command{Event: session.JudgeAnswer(false), Valid: true}
	case "r", "restart":
		return Command{Event: session.Restart(""), Valid: true}
	case "q", "quit", "exit":
		return Command{Quit: true, Valid: true}
	}
	if option, err := strconv.Atoi(input); err == nil && option >= 1 && option <= 9 {
		return Command{Event: session.Select(option - 1), Valid: true}
	}
	return Command{}
}
