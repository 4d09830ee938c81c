package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quizclock/internal/config"
)

// loadConfig loads an explicit config path, or searches upward from the
// working directory. A missing config falls back to defaults unless the
// path was given explicitly.
func loadConfig(configPath string) (config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		return config.Load(abs)
	}
	found, err := config.FindConfigPath("")
	if err != nil {
		var notFound *config.ErrConfigNotFound
		if errors.As(err, &notFound) {
			return config.Default(), nil
		}
		return config.Config{}, err
	}
	return config.Load(found)
}
