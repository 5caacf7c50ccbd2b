package engine

import "github.com/emoran/puzzle8/puzzle"

// Scramble modes selectable per configuration.
const (
	// ScrambleRandom draws a uniform random solvable board.
	ScrambleRandom = "random"
	// ScrambleWalk applies WalkSteps random legal moves from the goal.
	ScrambleWalk = "walk"

	// Validation constants
	MinWalkSteps        = 1
	MaxWalkSteps        = 1000
	MaxBulkMoves        = 50
	WebSocketBufferSize = 256
)

// Directions accepted by Move. A direction names where the blank travels;
// the tile on that side slides into the vacated cell.
var Directions = []string{"up", "down", "left", "right"}

// GameConfig represents the puzzle configuration loaded from JSON
type GameConfig struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ScrambleMode string `json:"scramble_mode"`
	WalkSteps    int    `json:"walk_steps,omitempty"`
	Messages     struct {
		Welcome       string `json:"welcome"`
		Scrambled     string `json:"scrambled"`
		Moved         string `json:"moved"`
		Blocked       string `json:"blocked"`
		Solved        string `json:"solved"`
		AlreadySolved string `json:"already_solved"`
	} `json:"messages"`
}

// GameState represents the complete session state
type GameState struct {
	Board      puzzle.Board `json:"board"`
	Solved     bool         `json:"solved"`
	Message    string       `json:"message"`
	ConfigName string       `json:"config_name"`
	Scrambles  int          `json:"scrambles"`

	// MoveHistory is cumulative across scrambles; TotalMoves mirrors its
	// length of successful entries plus failures.
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last scramble. It mirrors
	// MoveHistory entries but gets cleared on scramble while MoveHistory
	// remains cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	Action     string `json:"action"` // direction, or "tile:N" for click moves
	Tile       int    `json:"tile"`   // label of the tile that slid (0 on failure)
	FromIndex  int    `json:"from_index"`
	ToIndex    int    `json:"to_index"`
	Timestamp  int64  `json:"timestamp"`
	Success    bool   `json:"success"`
	MoveNumber int    `json:"move_number"`
}
