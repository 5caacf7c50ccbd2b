// Package config provides configuration management for the sliding puzzle.
//
// The config package handles:
//   - Loading puzzle configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - The scramble mode ("random" for a uniform solvable draw, "walk" for a
//     random walk of legal moves from the goal)
//   - The number of walk steps for walk-mode scrambles
//   - Message templates shown for game events
//
// Available Configurations:
//
// The package ships several presets:
//   - classic: uniform random scrambles, the standard game
//   - marathon: long random-walk scrambles
//   - practice: short random-walk scrambles for easy boards
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("practice")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - A recognized scramble mode and in-range walk steps
//   - Required message templates
//   - Move-count placeholders in templated messages
package config
