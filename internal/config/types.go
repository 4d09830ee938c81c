package config

import (
	"math"
	"time"

	"quizclock/internal/session"
)

// Config is the .quizclock/config.yml schema.
type Config struct {
	Version int        `yaml:"version"`
	Quiz    QuizConfig `yaml:"quiz"`
	UI      UIConfig   `yaml:"ui"`
	Log     LogConfig  `yaml:"log"`
}

// QuizConfig selects the deck and countdown behaviour.
type QuizConfig struct {
	File             string  `yaml:"file"`
	Variant          string  `yaml:"variant"`
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
	TimeoutPolicy    string  `yaml:"timeout_policy"`
}

// UIConfig selects the presentation layer.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig configures the structured log sink.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the config used when no file is present.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg, "")
	return cfg
}

// TimeLimit returns the countdown as a duration rounded to whole countdown steps.
func (q QuizConfig) TimeLimit() time.Duration {
	steps := math.Round(q.TimeLimitSeconds * float64(time.Second/session.Step))
	return time.Duration(steps) * session.Step
}
