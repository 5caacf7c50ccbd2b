package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emoran/puzzle8/game/engine"
)

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) string {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func validTestConfig() *engine.GameConfig {
	config := engine.DefaultConfig()
	config.Name = "validation"
	return config
}

func TestValidateConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "good.json", validTestConfig())

	result := validateConfig(path)

	if !result.Valid {
		t.Fatalf("Expected valid config, got errors: %v", result.Errors)
	}

	if result.File != "good.json" {
		t.Errorf("Expected file 'good.json', got %s", result.File)
	}

	// Informational entries should mention the name and scramble sanity
	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "validation") {
		t.Errorf("Expected config name in report, got: %s", joined)
	}
	if !strings.Contains(joined, "solvable") {
		t.Errorf("Expected scramble sanity note in report, got: %s", joined)
	}
}

func TestValidateConfig_WalkMode(t *testing.T) {
	dir := t.TempDir()
	config := validTestConfig()
	config.ScrambleMode = engine.ScrambleWalk
	config.WalkSteps = 40
	path := writeConfigFile(t, dir, "walk.json", config)

	result := validateConfig(path)

	if !result.Valid {
		t.Fatalf("Expected valid walk config, got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Walk steps: 40") {
		t.Errorf("Expected walk steps in report, got: %s", joined)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/nonexistent/path/config.json")

	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Failed to read file") {
		t.Errorf("Expected read error, got: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result for broken JSON")
	}
	if !strings.Contains(result.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateConfig_AccumulatesErrors(t *testing.T) {
	dir := t.TempDir()
	config := validTestConfig()
	config.Name = ""
	config.Description = ""
	config.ScrambleMode = ""
	config.Messages.Solved = "done with no verb"
	path := writeConfigFile(t, dir, "bad.json", config)

	result := validateConfig(path)

	if result.Valid {
		t.Fatal("Expected invalid result")
	}

	// All independent problems should be reported at once
	joined := strings.Join(result.Errors, "\n")
	for _, want := range []string{
		"Missing required field: name",
		"Missing required field: description",
		"Missing required field: scramble_mode",
		"must contain a %d verb",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected error containing %q, got: %s", want, joined)
		}
	}
}

func TestValidateConfig_BadScrambleSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*engine.GameConfig)
		want   string
	}{
		{
			name: "Unknown mode",
			mutate: func(c *engine.GameConfig) {
				c.ScrambleMode = "chaotic"
			},
			want: "Unknown scramble_mode",
		},
		{
			name: "Walk steps too low",
			mutate: func(c *engine.GameConfig) {
				c.ScrambleMode = engine.ScrambleWalk
				c.WalkSteps = 0
			},
			want: "walk_steps must be between",
		},
		{
			name: "Walk steps too high",
			mutate: func(c *engine.GameConfig) {
				c.ScrambleMode = engine.ScrambleWalk
				c.WalkSteps = engine.MaxWalkSteps + 1
			},
			want: "walk_steps must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			config := validTestConfig()
			tt.mutate(config)
			path := writeConfigFile(t, dir, "scramble.json", config)

			result := validateConfig(path)

			if result.Valid {
				t.Fatal("Expected invalid result")
			}
			joined := strings.Join(result.Errors, "\n")
			if !strings.Contains(joined, tt.want) {
				t.Errorf("Expected error containing %q, got: %s", tt.want, joined)
			}
		})
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	dir := t.TempDir()
	config := validTestConfig()
	config.Messages.Welcome = ""
	config.Messages.Blocked = ""
	config.Messages.Solved = ""
	path := writeConfigFile(t, dir, "messages.json", config)

	result := validateConfig(path)

	if result.Valid {
		t.Fatal("Expected invalid result")
	}

	joined := strings.Join(result.Errors, "\n")
	for _, msg := range []string{"welcome", "blocked", "solved"} {
		if !strings.Contains(joined, "Missing required message: "+msg) {
			t.Errorf("Expected missing message error for %s, got: %s", msg, joined)
		}
	}
}

func TestValidateConfig_MovedVerbOptional(t *testing.T) {
	dir := t.TempDir()
	config := validTestConfig()
	config.Messages.Moved = ""
	path := writeConfigFile(t, dir, "no-moved.json", config)

	result := validateConfig(path)

	if !result.Valid {
		t.Errorf("Empty moved message should be allowed, got errors: %v", result.Errors)
	}
}
