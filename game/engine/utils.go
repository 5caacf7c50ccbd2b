package engine

import (
	"fmt"
	"strings"

	"github.com/emoran/puzzle8/puzzle"
)

// DirectionBetween names the move turning from into to: the direction the
// blank traveled. Returns false when the boards do not differ by exactly one
// legal move.
func DirectionBetween(from, to puzzle.Board) (string, bool) {
	a := from.PositionOf(puzzle.Blank)
	b := to.PositionOf(puzzle.Blank)
	if !puzzle.Adjacent(a, b) {
		return "", false
	}

	// Everything but the swapped pair must match.
	for i := range from {
		if i == a || i == b {
			continue
		}
		if from[i] != to[i] {
			return "", false
		}
	}
	if from[b] != to[a] || to[b] != puzzle.Blank {
		return "", false
	}

	switch b - a {
	case puzzle.GridSize:
		return "down", true
	case -puzzle.GridSize:
		return "up", true
	case 1:
		return "right", true
	case -1:
		return "left", true
	}
	return "", false
}

// MovesFromPath converts a solver path into the direction sequence that
// replays it from start. Fails if any consecutive pair is not one legal move
// apart.
func MovesFromPath(start puzzle.Board, path []puzzle.Board) ([]string, error) {
	moves := make([]string, 0, len(path))
	prev := start
	for i, b := range path {
		dir, ok := DirectionBetween(prev, b)
		if !ok {
			return nil, fmt.Errorf("path step %d is not a legal move", i)
		}
		moves = append(moves, dir)
		prev = b
	}
	return moves, nil
}

// FormatBoard renders a board as a bordered 3×3 grid for text surfaces.
func FormatBoard(b puzzle.Board) string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+\n")
	for row := 0; row < puzzle.GridSize; row++ {
		for col := 0; col < puzzle.GridSize; col++ {
			v := b[row*puzzle.GridSize+col]
			if v == puzzle.Blank {
				sb.WriteString("|   ")
			} else {
				sb.WriteString(fmt.Sprintf("| %d ", v))
			}
		}
		sb.WriteString("|\n+---+---+---+\n")
	}
	return sb.String()
}
