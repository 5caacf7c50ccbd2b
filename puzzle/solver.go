package puzzle

import (
	"container/heap"
	"errors"
)

var (
	// ErrUnsolvable reports a board whose parity makes the goal unreachable.
	// This is a classification outcome, not an internal failure.
	ErrUnsolvable = errors.New("board is not solvable")

	// ErrSearchExhausted reports an emptied frontier on a solvable input.
	// It should be unreachable; seeing it indicates a defect in move
	// generation or the heuristic.
	ErrSearchExhausted = errors.New("search exhausted without reaching goal")
)

// manhattan sums, over tiles 1..8, the grid distance between each tile's
// current cell and its goal cell. The estimate is admissible (a move
// relocates one tile by one step) and consistent (a move changes the sum by
// at most 1), so A* below returns cost-optimal paths and never needs to
// reopen an expanded board.
func manhattan(b Board) int {
	sum := 0
	for i, v := range b {
		if v == Blank {
			continue
		}
		goal := v - 1
		dr := i/GridSize - goal/GridSize
		dc := i%GridSize - goal%GridSize
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}

type node struct {
	board  Board
	g, h   int
	index  int
	parent *node
}

// frontier is a min-heap ordered by f = g + h, ties broken by lower h.
type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	fi := f[i].g + f[i].h
	fj := f[j].g + f[j].h
	if fi == fj {
		return f[i].h < f[j].h
	}
	return fi < fj
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i]; f[i].index = i; f[j].index = j }
func (f *frontier) Push(x any)   { n := x.(*node); n.index = len(*f); *f = append(*f, n) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	item.index = -1
	*f = old[:n-1]
	return item
}

// Solve computes a minimum-move path from start to the goal configuration
// using A* with the Manhattan-distance heuristic.
//
// The returned path excludes start and ends at the goal: applying the moves
// implied by consecutive boards, beginning from start, visits exactly these
// boards. Solving an already-solved board yields an empty path. Unsolvable
// inputs return ErrUnsolvable.
//
// Each call allocates its own working maps; nothing persists between calls,
// and independent calls may run concurrently.
func Solve(start Board) ([]Board, error) {
	if !start.IsSolvable() {
		return nil, ErrUnsolvable
	}

	goal := Goal()
	if start == goal {
		return []Board{}, nil
	}

	open := &frontier{}
	heap.Init(open)

	startNode := &node{board: start, g: 0, h: manhattan(start)}
	heap.Push(open, startNode)

	best := map[Board]*node{start: startNode}
	closed := map[Board]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)

		if current.board == goal {
			// Rebuild the path by walking parent links back to start,
			// then reverse it. Dropping the start node makes the result
			// start-exclusive, goal-inclusive.
			path := make([]Board, 0, current.g)
			for n := current; n.parent != nil; n = n.parent {
				path = append(path, n.board)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, nil
		}

		// Stale re-inserted entries are skipped rather than removed from
		// the heap; the optimal copy was already expanded.
		if closed[current.board] {
			continue
		}
		closed[current.board] = true

		for _, nb := range current.board.Neighbors() {
			if closed[nb] {
				continue
			}
			g := current.g + 1
			if prev, seen := best[nb]; seen && g >= prev.g {
				continue
			}
			next := &node{board: nb, g: g, h: manhattan(nb), parent: current}
			best[nb] = next
			heap.Push(open, next)
		}
	}

	return nil, ErrSearchExhausted
}
