package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/emoran/puzzle8/puzzle"
)

// ValidateGameConfig validates a puzzle configuration for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	switch config.ScrambleMode {
	case ScrambleRandom:
		// WalkSteps is ignored for uniform scrambles.
	case ScrambleWalk:
		if config.WalkSteps < MinWalkSteps || config.WalkSteps > MaxWalkSteps {
			return fmt.Errorf("config validation: walk_steps must be between %d and %d, got %d",
				MinWalkSteps, MaxWalkSteps, config.WalkSteps)
		}
	default:
		return fmt.Errorf("config validation: scramble_mode must be %q or %q, got %q",
			ScrambleRandom, ScrambleWalk, config.ScrambleMode)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Blocked == "" {
		return fmt.Errorf("config validation: messages.blocked is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}

	// Validate format strings
	if !strings.Contains(config.Messages.Solved, "%d") {
		return fmt.Errorf("config validation: messages.solved must contain %%d for the move count")
	}
	if config.Messages.Moved != "" && !strings.Contains(config.Messages.Moved, "%d") {
		return fmt.Errorf("config validation: messages.moved must contain %%d for the move count")
	}

	return nil
}

// DefaultConfig returns the built-in configuration used when no config
// directory entry applies.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:         "default",
		Description:  "Default uniform scramble configuration",
		ScrambleMode: ScrambleRandom,
	}
	config.Messages.Welcome = "Slide the tiles into reading order!"
	config.Messages.Scrambled = "Board scrambled. Good luck!"
	config.Messages.Moved = "Moves: %d"
	config.Messages.Blocked = "That tile can't move"
	config.Messages.Solved = "Solved in %d moves!"
	config.Messages.AlreadySolved = "Already solved! Scramble to play again"
	return config
}

// InitGameStateFromConfig creates a fresh game state with a scrambled board.
// A nil config falls back to the built-in default.
func InitGameStateFromConfig(config *GameConfig, rng *rand.Rand) *GameState {
	if config == nil {
		config = DefaultConfig()
	}

	board := scrambleBoard(config, rng)
	return &GameState{
		Board:        board,
		Solved:       board == puzzle.Goal(),
		Message:      config.Messages.Welcome,
		ConfigName:   config.Name,
		Scrambles:    1,
		MoveHistory:  []MoveHistoryEntry{},
		CurrentMoves: []MoveHistoryEntry{},
	}
}

// scrambleBoard draws a board per the configured scramble mode.
func scrambleBoard(config *GameConfig, rng *rand.Rand) puzzle.Board {
	if config.ScrambleMode == ScrambleWalk {
		return puzzle.Walk(rng, config.WalkSteps)
	}
	return puzzle.Scramble(rng)
}
