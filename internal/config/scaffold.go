package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
quiz:
  file: "questions.csv"
  # auto | open | choice
  variant: auto
  time_limit_seconds: 10
  # reveal: show the answer when time runs out
  # wrap: restart the countdown and keep the question on screen
  timeout_policy: reveal

ui:
  # auto | live | plain
  mode: auto
  no_color: false

log:
  path: ""
  level: info
`

const defaultQuestions = `question,answer,info
What is the capital of Japan?,Tokyo,Tokyo became the capital in 1868.
How many sides does a hexagon have?,6,
Which planet is known as the red planet?,Mars,Iron oxide on the surface gives it the colour.
`

// Scaffold writes a starter config and, when missing, a sample deck beside it.
// It returns the paths it wrote.
func Scaffold(configPath string) ([]string, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return nil, fmt.Errorf("config path %q is a directory", configPath)
		}
		return nil, fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return nil, fmt.Errorf("write config file: %w", err)
	}
	written := []string{configPath}

	questionsPath := filepath.Join(RootFromConfigPath(configPath), DefaultQuestionsFile)
	if _, err := os.Stat(questionsPath); err == nil {
		return written, nil
	} else if !os.IsNotExist(err) {
		return written, fmt.Errorf("stat questions file: %w", err)
	}
	if err := os.WriteFile(questionsPath, []byte(defaultQuestions), 0o644); err != nil {
		return written, fmt.Errorf("write questions file: %w", err)
	}
	return append(written, questionsPath), nil
}
