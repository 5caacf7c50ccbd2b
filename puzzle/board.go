package puzzle

import "strings"

const (
	// GridSize is the number of rows and columns of the board.
	GridSize = 3
	// BoardLen is the total number of cells.
	BoardLen = GridSize * GridSize
	// Blank is the value representing the empty cell.
	Blank = 0
)

// Board holds a full puzzle configuration in row-major order:
// index i maps to row i/3, column i%3. The value Blank marks the empty cell
// and 1..8 are the tiles. A valid board contains each value 0..8 exactly once.
type Board [BoardLen]int

// Goal returns the solved configuration: tiles in reading order with the
// blank in the bottom-right cell.
func Goal() Board {
	return Board{1, 2, 3, 4, 5, 6, 7, 8, Blank}
}

// PositionOf returns the index currently holding v. Callers must pass a
// value in 0..8 on a valid board; this is a precondition, not a checked
// error. Returns -1 if the value is absent.
func (b Board) PositionOf(v int) int {
	for i := 0; i < BoardLen; i++ {
		if b[i] == v {
			return i
		}
	}
	return -1
}

// Valid reports whether the board satisfies the configuration invariant:
// each of the values 0..8 appears exactly once.
func (b Board) Valid() bool {
	var seen [BoardLen]bool
	for _, v := range b {
		if v < 0 || v >= BoardLen || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Key packs the board into a base-9 integer, a compact identity for callers
// that need a scalar key. Boards are themselves comparable, so internal
// lookups use the Board value directly.
func (b Board) Key() uint32 {
	var k uint32
	for _, v := range b {
		k = k*BoardLen + uint32(v)
	}
	return k
}

// String renders the board one row per segment, blank as "_":
// "1,2,3|4,5,6|7,8,_".
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b {
		if v == Blank {
			sb.WriteByte('_')
		} else {
			sb.WriteByte(byte('0' + v))
		}
		switch {
		case i == BoardLen-1:
		case i%GridSize == GridSize-1:
			sb.WriteByte('|')
		default:
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

// Neighbors returns every board reachable by one legal move: the blank swaps
// with an orthogonally adjacent tile. Generation order is fixed (blank
// down, up, right, left) so search tie-breaking is deterministic. Between 2
// (corner) and 4 (center) boards are returned; the receiver is not mutated.
func (b Board) Neighbors() []Board {
	blank := b.PositionOf(Blank)
	row := blank / GridSize
	col := blank % GridSize

	deltas := [4]struct{ dr, dc int }{
		{1, 0},  // down
		{-1, 0}, // up
		{0, 1},  // right
		{0, -1}, // left
	}

	out := make([]Board, 0, 4)
	for _, d := range deltas {
		nr, nc := row+d.dr, col+d.dc
		if nr < 0 || nr >= GridSize || nc < 0 || nc >= GridSize {
			continue
		}
		next := b
		target := nr*GridSize + nc
		next[blank], next[target] = next[target], next[blank]
		out = append(out, next)
	}
	return out
}

// Adjacent reports whether two cell indices are orthogonal grid neighbors.
// This is the single-step legality test; click-to-move input translation
// reuses it to decide whether a clicked tile may slide into the blank.
func Adjacent(i, j int) bool {
	if i < 0 || i >= BoardLen || j < 0 || j >= BoardLen {
		return false
	}
	ri, ci := i/GridSize, i%GridSize
	rj, cj := j/GridSize, j%GridSize
	dr, dc := ri-rj, ci-cj
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// InversionParity returns 0 or 1: the parity of the number of tile pairs
// (blank excluded) whose reading order inverts their label order.
func (b Board) InversionParity() int {
	inversions := 0
	for i := 0; i < BoardLen; i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < BoardLen; j++ {
			if b[j] != Blank && b[i] > b[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}

// IsSolvable reports whether the board is reachable from the goal. On a 3×3
// board this holds exactly when the board's inversion parity matches the
// goal's own parity; the goal's parity is computed, not assumed even, so the
// classifier stays correct if the goal configuration ever changes.
func (b Board) IsSolvable() bool {
	return b.InversionParity() == goalParity
}

var goalParity = Goal().InversionParity()
