package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"quizclock/internal/question"
	"quizclock/internal/session"
)

// MaxTimeLimitSeconds bounds the per-question countdown.
const MaxTimeLimitSeconds = 600

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if _, err := question.ParseVariant(cfg.Quiz.Variant); err != nil {
		collector.add("quiz.variant", err.Error())
	}
	if _, err := session.ParseTimeoutPolicy(cfg.Quiz.TimeoutPolicy); err != nil {
		collector.add("quiz.timeout_policy", err.Error())
	}
	if limit := cfg.Quiz.TimeLimitSeconds; !(limit >= 0.1 && limit <= MaxTimeLimitSeconds) {
		collector.add("quiz.time_limit_seconds", fmt.Sprintf("must be between 0.1 and %d", MaxTimeLimitSeconds))
	}
	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid ui mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", err.Error())
	}
	return collector.result()
}
