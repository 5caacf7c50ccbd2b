// Package engine provides the stateful game layer over the puzzle core.
//
// The engine package implements:
//   - Current-board tracking and solved detection
//   - Direction moves (blank travel) and tile-click moves
//   - Move history, cumulative across scrambles
//   - Scrambling per configuration (uniform random or random walk)
//   - Solver and hint access
//
// Core Types:
//
// The Engine interface defines the contract for game operations, implemented
// by PuzzleEngine. GameState is the serializable session state, GameConfig
// the JSON-loaded rules (scramble mode, walk steps, user-facing messages).
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng.Move("up")            // direction names where the blank travels
//	eng.MoveTile(3)           // click-to-move: cell 3 slides if adjacent
//	path, err := eng.Solve()  // optimal path to the goal
//
// The engine itself is not goroutine-safe; the service layer serializes
// access per session.
package engine
