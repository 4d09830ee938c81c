package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question deck.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question deck validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// buildDeck trims and validates raw rows into typed records.
func buildDeck(variant Variant, rows []deckFileRow, collector *issueCollector) Deck {
	if len(rows) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		prefix := fmt.Sprintf("questions[%d]", i)
		record := Record{Prompt: strings.TrimSpace(row.Prompt)}
		if record.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		switch variant {
		case VariantOpen:
			record.Answer = strings.TrimSpace(row.Answer)
			record.Info = strings.TrimSpace(row.Info)
			if record.Answer == "" {
				collector.add(prefix+".answer", "is required")
			}
		case VariantChoice:
			record.Options = normalizeStringSlice(row.Options)
			if len(record.Options) < 2 {
				collector.add(prefix+".options", "must include at least two entries")
			}
			for optionIndex, option := range record.Options {
				if option == "" {
					collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
				}
			}
			if row.invalidIndex {
				break
			}
			if row.CorrectIndex == nil {
				collector.add(prefix+".correct_index", "is required")
			} else {
				record.CorrectIndex = *row.CorrectIndex
				if record.CorrectIndex < 0 || record.CorrectIndex >= len(record.Options) {
					collector.add(prefix+".correct_index", fmt.Sprintf("out of range %d (options: %d)", record.CorrectIndex, len(record.Options)))
				}
			}
		}
		records = append(records, record)
	}
	return Deck{Variant: variant, Records: records}
}
