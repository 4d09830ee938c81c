package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizclock/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		file := flags.String("file", "", "Question deck (default: quiz.file from config)")
		variantFlag := flags.String("variant", "", "Deck variant: auto|open|choice")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizclock/config.yml)")
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

		path := strings.TrimSpace(*file)
		variantName := *variantFlag
		if path == "" || variantName == "" {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
			if path == "" {
				path = cfg.Quiz.File
			}
			if variantName == "" {
				variantName = cfg.Quiz.Variant
			}
		}
		variant, err := question.ParseVariant(variantName)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		deck, err := question.LoadDeck(path, variant)
		if err != nil {
			var validation *question.ValidationError
			if errors.As(err, &validation) {
				fmt.Fprintf(stderr, "Validation failed: %s\n", path)
				for _, issue := range validation.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Deck OK: %d %s questions in %s\n", deck.Len(), deck.Variant, path)
		return ExitOK
	}
}
