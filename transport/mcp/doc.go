// Package mcp provides a Model Context Protocol server for the sliding puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// The server is a thin client: every tool call is proxied to the REST API,
// so the MCP surface and the HTTP surface always agree on game semantics.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get current board with text rendering
//   - move: Slide one tile by direction
//   - move_tile: Slide the tile at a board index
//   - bulk_move: Execute multiple moves in sequence
//   - scramble: Re-scramble the board
//   - solve: Compute an optimal solution for the current board
//   - hint: Next move on an optimal solution
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new puzzle session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available puzzle configurations
//   - puzzle_instructions: Rules, solvability notes, and strategy
//
// Transport Modes:
//
// The underlying mcp-go server supports both stdio (for local MCP clients)
// and HTTP transports; main wires whichever mode is requested.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play the puzzle autonomously
//   - Compare their own move sequences against optimal solutions
//   - Manage multiple concurrent puzzle sessions
//   - Learn from move history
package mcp
