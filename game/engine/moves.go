package engine

import (
	"fmt"
	"time"

	"github.com/emoran/puzzle8/puzzle"
)

// blankTarget returns the cell the blank would occupy after moving in the
// given direction, or -1 when the direction is unknown or leaves the grid.
func (gs *GameState) blankTarget(direction string) int {
	blank := gs.Board.PositionOf(puzzle.Blank)
	row, col := blank/puzzle.GridSize, blank%puzzle.GridSize

	switch direction {
	case "up":
		row--
	case "down":
		row++
	case "left":
		col--
	case "right":
		col++
	default:
		return -1
	}

	if row < 0 || row >= puzzle.GridSize || col < 0 || col >= puzzle.GridSize {
		return -1
	}
	return row*puzzle.GridSize + col
}

// CanApply checks whether a direction move is legal from the current board.
func (gs *GameState) CanApply(direction string) bool {
	if gs.Solved {
		return false
	}
	return gs.blankTarget(direction) >= 0
}

// Apply attempts a direction move, updating board, message, and solved flag.
func (gs *GameState) Apply(direction string, config *GameConfig) bool {
	if gs.Solved {
		gs.Message = config.Messages.AlreadySolved
		return false
	}

	target := gs.blankTarget(direction)
	if target < 0 {
		gs.Message = fmt.Sprintf("%s [%s]", config.Messages.Blocked, direction)
		return false
	}

	gs.swapWithBlank(target, config)
	return true
}

// ApplyTile attempts a click-to-move: the tile at the given cell slides into
// the blank when the two cells are orthogonally adjacent. This reuses the
// same single-step legality test as direction moves.
func (gs *GameState) ApplyTile(index int, config *GameConfig) bool {
	if gs.Solved {
		gs.Message = config.Messages.AlreadySolved
		return false
	}

	blank := gs.Board.PositionOf(puzzle.Blank)
	if index == blank || !puzzle.Adjacent(index, blank) {
		gs.Message = fmt.Sprintf("%s [cell %d]", config.Messages.Blocked, index)
		return false
	}

	gs.swapWithBlank(index, config)
	return true
}

// swapWithBlank slides the tile at target into the blank cell and refreshes
// the solved flag and message.
func (gs *GameState) swapWithBlank(target int, config *GameConfig) {
	blank := gs.Board.PositionOf(puzzle.Blank)
	gs.Board[blank], gs.Board[target] = gs.Board[target], gs.Board[blank]

	gs.Solved = gs.Board == puzzle.Goal()
	if gs.Solved {
		gs.Message = fmt.Sprintf(config.Messages.Solved, gs.CurrentMovesCount+1)
	} else {
		gs.Message = fmt.Sprintf(config.Messages.Moved, gs.CurrentMovesCount+1)
	}
}

// AddMoveToHistory appends a move record to both the cumulative history and
// the current scramble segment.
func (gs *GameState) AddMoveToHistory(action string, tile, fromIndex, toIndex int, success bool) {
	entry := MoveHistoryEntry{
		Action:     action,
		Tile:       tile,
		FromIndex:  fromIndex,
		ToIndex:    toIndex,
		Timestamp:  time.Now().Unix(),
		Success:    success,
		MoveNumber: gs.TotalMoves + 1,
	}
	// Cumulative history is never cleared by a scramble.
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++

	gs.CurrentMoves = append(gs.CurrentMoves, entry)
	gs.CurrentMovesCount++
}
