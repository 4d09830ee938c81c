package plain

import (
	"testing"

	"quizclock/internal/session"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input  string
		kind   session.EventKind
		option int
		quit   bool
		valid  bool
	}{
		{input: "", kind: session.EventReveal, valid: true},
		{input: " show ", kind: session.EventReveal, valid: true},
		{input: "Y", kind: session.EventJudge, valid: true},
		{input: "no", kind: session.EventJudge, valid: true},
		{input: "3", kind: session.EventSelect, option: 2, valid: true},
		{input: "restart", kind: session.EventRestart, valid: true},
		{input: "q", quit: true, valid: true},
		{input: "0"},
		{input: "10"},
		{input: "maybe"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			cmd := ParseCommand(tc.input)
			if cmd.Valid != tc.valid || cmd.Quit != tc.quit {
				t.Fatalf("unexpected command %+v", cmd)
			}
			if !tc.valid || tc.quit {
				return
			}
			if cmd.Event.Kind != tc.kind {
				t.Fatalf("expected kind %v, got %v", tc.kind, cmd.Event.Kind)
			}
			if tc.kind == session.EventSelect && cmd.Event.Option != tc.option {
				t.Fatalf("expected option %d, got %d", tc.option, cmd.Event.Option)
			}
		})
	}
	if !ParseCommand("y").Event.Correct || ParseCommand("n").Event.Correct {
		t.Fatalf("expected y to judge correct and n incorrect")
	}
}
