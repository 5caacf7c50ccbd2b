// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes scramble settings,
// flags invalid files, and estimates per-config difficulty by sampling
// scrambles and measuring their optimal solution lengths.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/emoran/puzzle8/game/engine"
	"github.com/emoran/puzzle8/puzzle"
)

func main() {
	configDir := flag.String("dir", "configs", "Directory containing config files")
	samples := flag.Int("samples", 20, "Scrambles to sample per config for difficulty estimation")
	seed := flag.Int64("seed", 1, "Random seed for sampling")
	flag.Parse()

	entries, err := os.ReadDir(*configDir)
	if err != nil {
		fmt.Printf("Error reading config directory: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fmt.Printf("\n=== Analyzing %s ===\n", entry.Name())
		analyzeConfig(filepath.Join(*configDir, entry.Name()), *samples, rng)
	}
}

func analyzeConfig(path string, samples int, rng *rand.Rand) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		fmt.Printf("⚠️  Invalid config: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Description: %s\n", config.Description)
	fmt.Printf("Scramble Mode: %s\n", config.ScrambleMode)
	if config.ScrambleMode == engine.ScrambleWalk {
		fmt.Printf("Walk Steps: %d\n", config.WalkSteps)
	}

	if samples <= 0 {
		return
	}

	min, max, mean := sampleDifficulty(&config, samples, rng)
	fmt.Printf("Sampled difficulty (%d scrambles): optimal length min=%d mean=%.1f max=%d\n",
		samples, min, mean, max)

	if config.ScrambleMode == engine.ScrambleWalk && mean < float64(config.WalkSteps)/2 {
		fmt.Printf("   Note: walks backtrack, so boards land well short of %d moves from the goal\n",
			config.WalkSteps)
	}
}

// sampleDifficulty scrambles fresh engines and solves each resulting board.
func sampleDifficulty(config *engine.GameConfig, samples int, rng *rand.Rand) (min, max int, mean float64) {
	min = -1
	total := 0

	for i := 0; i < samples; i++ {
		e, err := engine.NewEngineWithRand(config, rng)
		if err != nil {
			continue
		}
		path, err := puzzle.Solve(e.GetState().Board)
		if err != nil {
			continue
		}
		length := len(path)
		total += length
		if min == -1 || length < min {
			min = length
		}
		if length > max {
			max = length
		}
	}

	if min == -1 {
		return 0, 0, 0
	}
	return min, max, float64(total) / float64(samples)
}
