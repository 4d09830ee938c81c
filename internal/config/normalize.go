package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values, fills defaults, and resolves the deck path against root.
func Normalize(cfg *Config, root string) {
	cfg.Quiz.File = strings.TrimSpace(cfg.Quiz.File)
	if cfg.Quiz.File == "" {
		cfg.Quiz.File = DefaultQuestionsFile
	}
	if root != "" && !filepath.IsAbs(cfg.Quiz.File) {
		cfg.Quiz.File = filepath.Join(root, cfg.Quiz.File)
	}
	cfg.Quiz.Variant = lowerOr(cfg.Quiz.Variant, "auto")
	cfg.Quiz.TimeoutPolicy = lowerOr(cfg.Quiz.TimeoutPolicy, "reveal")
	if cfg.Quiz.TimeLimitSeconds == 0 {
		cfg.Quiz.TimeLimitSeconds = 10
	}
	cfg.UI.Mode = lowerOr(cfg.UI.Mode, "auto")
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	cfg.Log.Level = lowerOr(cfg.Log.Level, "info")
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
