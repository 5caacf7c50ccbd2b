// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Scramble mode (random or walk) and walk step bounds
//   - Required message keys and move-count format verbs
//   - Scramble sanity: boards produced by the config are solvable
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/emoran/puzzle8/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// Unlike the engine's fail-fast validator, it accumulates every problem so
// a config author can fix a file in one pass.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		fail("Missing required field: name")
	}
	if config.Description == "" {
		fail("Missing required field: description")
	}

	// Scramble settings
	switch config.ScrambleMode {
	case engine.ScrambleRandom:
		// walk_steps ignored in random mode
	case engine.ScrambleWalk:
		if config.WalkSteps < engine.MinWalkSteps || config.WalkSteps > engine.MaxWalkSteps {
			fail("walk_steps must be between %d and %d, got %d",
				engine.MinWalkSteps, engine.MaxWalkSteps, config.WalkSteps)
		}
	case "":
		fail("Missing required field: scramble_mode")
	default:
		fail("Unknown scramble_mode %q (want %q or %q)",
			config.ScrambleMode, engine.ScrambleRandom, engine.ScrambleWalk)
	}

	// Messages
	if config.Messages.Welcome == "" {
		fail("Missing required message: welcome")
	}
	if config.Messages.Blocked == "" {
		fail("Missing required message: blocked")
	}
	if config.Messages.Solved == "" {
		fail("Missing required message: solved")
	} else if !strings.Contains(config.Messages.Solved, "%d") {
		fail("Message 'solved' must contain a %%d verb for the move count")
	}
	if config.Messages.Moved != "" && !strings.Contains(config.Messages.Moved, "%d") {
		fail("Message 'moved' must contain a %%d verb for the move count when set")
	}

	// Scramble sanity: every board a valid config produces must be solvable
	if result.Valid {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 5; i++ {
			state := engine.InitGameStateFromConfig(&config, rng)
			if !state.Board.IsSolvable() {
				fail("Scramble sanity failure: produced an unsolvable board %v", state.Board)
				break
			}
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Scramble mode: %s", config.ScrambleMode))
		if config.ScrambleMode == engine.ScrambleWalk {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Walk steps: %d", config.WalkSteps))
		}
		result.Errors = append(result.Errors, "✓ Scramble sanity: sampled boards are solvable")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
