// Package puzzle implements the core of the 8-tile (3×3) sliding puzzle.
//
// The package provides:
//   - Board representation and position/ordering queries
//   - Legal move generation by sliding a tile into the blank cell
//   - Solvability classification via the inversion parity invariant
//   - Uniformly random solvable scrambles
//   - Optimal (minimum move count) solving via A* search
//
// Core Types:
//
// Board is a fixed-size value type holding a full assignment of the nine
// grid cells to the values 0..8, where 0 denotes the blank. Boards are
// comparable, so they can be used directly as map keys and compared with ==.
//
// Usage:
//
//	start := puzzle.RandomSolvable()
//	path, err := puzzle.Solve(start)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, b := range path {
//		fmt.Println(b)
//	}
//
// All operations are pure value-in/value-out: no call mutates its input, and
// no state persists between calls apart from the scramble functions' use of
// a random source. A solve is a single synchronous computation over a state
// space of at most 9!/2 = 181,440 reachable boards.
package puzzle
