package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/emoran/puzzle8/puzzle"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Scramble() *GameState
	IsSolved() bool
	GetBoard() puzzle.Board

	// Movement operations
	Move(direction string) bool
	MoveTile(index int) bool
	CanMove(direction string) bool
	GetPossibleMoves() []string

	// Solver access
	Solve() ([]puzzle.Board, error)
	Hint() (string, error)

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// PuzzleEngine implements the Engine interface
type PuzzleEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
}

// NewEngine creates a new engine with the provided configuration, scrambling
// an initial board per the config's scramble mode.
func NewEngine(config *GameConfig) (*PuzzleEngine, error) {
	return NewEngineWithRand(config, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand creates an engine with an injected random source so
// tests and reproducible harnesses control the scramble sequence.
func NewEngineWithRand(config *GameConfig, rng *rand.Rand) (*PuzzleEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return &PuzzleEngine{
		config: config,
		state:  InitGameStateFromConfig(config, rng),
		rng:    rng,
	}, nil
}

// NewEngineWithDefaults creates a new engine with the built-in configuration
func NewEngineWithDefaults() *PuzzleEngine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &PuzzleEngine{
		config: DefaultConfig(),
		state:  InitGameStateFromConfig(nil, rng),
		rng:    rng,
	}
}

// GetState returns the current game state
func (e *PuzzleEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *PuzzleEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if !state.Board.Valid() {
		return fmt.Errorf("state board violates the configuration invariant: %v", state.Board)
	}
	e.state = state
	return nil
}

// Scramble draws a fresh board per the config's scramble mode. Cumulative
// history and totals survive; only the current segment is cleared.
func (e *PuzzleEngine) Scramble() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves
	prevScrambles := e.state.Scrambles

	e.state = InitGameStateFromConfig(e.config, e.rng)

	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	e.state.Scrambles = prevScrambles + 1
	e.state.Message = e.config.Messages.Scrambled

	return e.state
}

// IsSolved reports whether the board is at the goal configuration
func (e *PuzzleEngine) IsSolved() bool {
	return e.state.Solved
}

// GetBoard returns the current board value
func (e *PuzzleEngine) GetBoard() puzzle.Board {
	return e.state.Board
}

// Move attempts to move the blank in the specified direction
func (e *PuzzleEngine) Move(direction string) bool {
	prevBlank := e.state.Board.PositionOf(puzzle.Blank)
	success := e.state.Apply(direction, e.config)

	tile, from, to := 0, prevBlank, prevBlank
	if success {
		// The tile slid opposite the blank: out of the blank's new cell
		// and into its old one.
		newBlank := e.state.Board.PositionOf(puzzle.Blank)
		tile = e.state.Board[prevBlank]
		from, to = newBlank, prevBlank
	}
	e.state.AddMoveToHistory(direction, tile, from, to, success)

	return success
}

// MoveTile attempts a click-to-move on the tile at the given cell index
func (e *PuzzleEngine) MoveTile(index int) bool {
	prevBlank := e.state.Board.PositionOf(puzzle.Blank)
	success := e.state.ApplyTile(index, e.config)

	tile, from, to := 0, index, index
	if success {
		tile = e.state.Board[prevBlank]
		from, to = index, prevBlank
	}
	e.state.AddMoveToHistory(fmt.Sprintf("tile:%d", index), tile, from, to, success)

	return success
}

// CanMove checks if the blank can travel in the specified direction
func (e *PuzzleEngine) CanMove(direction string) bool {
	return e.state.CanApply(direction)
}

// GetPossibleMoves returns all directions legal from the current board
func (e *PuzzleEngine) GetPossibleMoves() []string {
	var possible []string
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// Solve computes the optimal path from the current board to the goal
func (e *PuzzleEngine) Solve() ([]puzzle.Board, error) {
	return puzzle.Solve(e.state.Board)
}

// Hint returns the direction of the first move on an optimal path. Solved
// boards return an error rather than a direction.
func (e *PuzzleEngine) Hint() (string, error) {
	if e.state.Solved {
		return "", fmt.Errorf("board is already solved")
	}
	path, err := puzzle.Solve(e.state.Board)
	if err != nil {
		return "", err
	}
	if len(path) == 0 {
		return "", fmt.Errorf("board is already solved")
	}
	dir, ok := DirectionBetween(e.state.Board, path[0])
	if !ok {
		return "", fmt.Errorf("solver returned a non-adjacent step")
	}
	return dir, nil
}

// GetConfig returns the current configuration
func (e *PuzzleEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new configuration and scrambles a fresh board
func (e *PuzzleEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitGameStateFromConfig(config, e.rng)
	return nil
}

// GetMoveHistory returns the complete move history
func (e *PuzzleEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *PuzzleEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// BulkMove executes multiple direction moves in sequence, returning success
// status for each. Execution stops at the first solved board.
func (e *PuzzleEngine) BulkMove(moves []string) []bool {
	results := make([]bool, 0, len(moves))

	for _, direction := range moves {
		if e.IsSolved() {
			break
		}
		results = append(results, e.Move(direction))
	}

	return results
}
