// Command puzzle is an offline toolbox for the 8-puzzle core: solve a board
// given on the command line, generate scrambles, or benchmark the optimal
// solution length distribution.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/emoran/puzzle8/game/engine"
	"github.com/emoran/puzzle8/puzzle"
)

func main() {
	cmd := &cli.Command{
		Name:  "puzzle",
		Usage: "8-puzzle solver and scramble toolbox",
		Commands: []*cli.Command{
			solveCommand(),
			scrambleCommand(),
			benchCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Solve a board given as nine digits (0 is the blank), e.g. 812703654",
		ArgsUsage: "BOARD",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "boards",
				Usage: "Print every intermediate board on the solution path",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			arg := cmd.Args().First()
			if arg == "" {
				return errors.New("board argument required, e.g. puzzle solve 812703654")
			}

			board, err := parseBoard(arg)
			if err != nil {
				return err
			}

			fmt.Println(engine.FormatBoard(board))

			if !board.IsSolvable() {
				fmt.Println("This board cannot reach the goal (odd inversion parity).")
				return nil
			}

			path, err := puzzle.Solve(board)
			if err != nil {
				return err
			}

			if len(path) == 0 {
				fmt.Println("Board is already solved.")
				return nil
			}

			moves, err := engine.MovesFromPath(board, path)
			if err != nil {
				return err
			}

			fmt.Printf("Optimal solution: %d moves\n", len(moves))
			fmt.Println(strings.Join(moves, " "))

			if cmd.Bool("boards") {
				for i, b := range path {
					fmt.Printf("\nAfter move %d (%s):\n%s", i+1, moves[i], engine.FormatBoard(b))
				}
			}
			return nil
		},
	}
}

func scrambleCommand() *cli.Command {
	return &cli.Command{
		Name:  "scramble",
		Usage: "Generate solvable scrambled boards",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Value: 1,
				Usage: "Number of boards to generate",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: engine.ScrambleRandom,
				Usage: "Scramble mode: random or walk",
			},
			&cli.IntFlag{
				Name:  "steps",
				Value: 25,
				Usage: "Walk length when mode is walk",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 0,
				Usage: "Random seed (0 uses a time-based seed)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := int(cmd.Int("count"))
			mode := cmd.String("mode")
			steps := int(cmd.Int("steps"))

			rng := newRand(int64(cmd.Int("seed")))

			for i := 0; i < count; i++ {
				var board puzzle.Board
				switch mode {
				case engine.ScrambleRandom:
					board = puzzle.Scramble(rng)
				case engine.ScrambleWalk:
					board = puzzle.Walk(rng, steps)
				default:
					return fmt.Errorf("unknown mode %q (want random or walk)", mode)
				}

				fmt.Printf("%s\n%s\n", board.String(), engine.FormatBoard(board))
			}
			return nil
		},
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Measure the optimal-length distribution over random scrambles",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Value: 100,
				Usage: "Number of scrambles to solve",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 1,
				Usage: "Random seed (0 uses a time-based seed)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := int(cmd.Int("count"))
			if count <= 0 {
				return errors.New("count must be positive")
			}

			rng := newRand(int64(cmd.Int("seed")))

			lengths := make([]int, 0, count)
			for i := 0; i < count; i++ {
				board := puzzle.Scramble(rng)
				path, err := puzzle.Solve(board)
				if err != nil {
					return fmt.Errorf("scramble %d: %w", i+1, err)
				}
				lengths = append(lengths, len(path))
			}

			printDistribution(lengths)
			return nil
		},
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}

// parseBoard accepts nine digits, with or without separators: "812703654",
// "8 1 2 7 0 3 6 5 4", or "8,1,2,7,0,3,6,5,4".
func parseBoard(s string) (puzzle.Board, error) {
	var board puzzle.Board
	i := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '8':
			if i >= 9 {
				return board, fmt.Errorf("too many digits in %q", s)
			}
			board[i] = int(r - '0')
			i++
		case r == ' ' || r == ',':
			// separators allowed
		default:
			return board, fmt.Errorf("unexpected character %q in board", r)
		}
	}
	if i != 9 {
		return board, fmt.Errorf("expected 9 digits, got %d", i)
	}
	if !board.Valid() {
		return board, fmt.Errorf("board %q does not use each of 0-8 exactly once", s)
	}
	return board, nil
}

// printDistribution renders a histogram of optimal lengths plus summary stats.
func printDistribution(lengths []int) {
	counts := map[int]int{}
	min, max, total := lengths[0], lengths[0], 0
	for _, l := range lengths {
		counts[l]++
		total += l
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}

	fmt.Printf("Solved %d scrambles: min=%d mean=%.2f max=%d\n\n",
		len(lengths), min, float64(total)/float64(len(lengths)), max)

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	for l := min; l <= max; l++ {
		c := counts[l]
		bar := strings.Repeat("#", c*40/peak)
		fmt.Printf("%2d | %-40s %d\n", l, bar, c)
	}
}
