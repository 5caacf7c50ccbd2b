// Package service provides the business logic layer for the sliding puzzle.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Configuration management and loading
//   - Move processing and validation
//   - Optimal solving and hints
//   - Session lifecycle management
//   - Move history tracking
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages puzzle configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the puzzle engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own engine instance
// with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, err := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute moves
//	result, err := gameService.Move(ctx, sessionInfo.ID, "up")
//
//	// Ask the solver for the optimal path
//	solution, err := gameService.Solve(ctx, sessionInfo.ID)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time, last access time, and move
// history for analytics and debugging.
package service
