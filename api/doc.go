// Package api provides HTTP REST API handlers for the sliding puzzle server.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Puzzle Operations:
//   - GET /api/sessions/{id}/state - Current board state
//   - POST /api/sessions/{id}/move - Slide a tile by direction
//   - POST /api/sessions/{id}/move-tile - Slide the tile at a board index
//   - POST /api/sessions/{id}/bulk-move - Execute a sequence of moves
//   - POST /api/sessions/{id}/scramble - Re-scramble the board
//   - GET /api/sessions/{id}/solve - Optimal solution for the current board
//   - GET /api/sessions/{id}/hint - Next move on an optimal solution
//   - GET /api/sessions/{id}/history - Move history with pagination
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Moves are sent as POST with a
// JSON body:
//
//	{"direction": "up|down|left|right"}
//	{"index": 0..8}                       // move-tile
//	{"moves": ["up", "left", "down"]}     // bulk-move
//
// Directions describe where the blank travels: "up" slides the tile
// above the blank downward into it.
//
// Enriched Responses (Move and Bulk Move):
//
// Move responses carry a step record when a tile actually slid:
//
//	step: { idx, dir, tile, from, to, success, solved }
//
// Bulk move responses additionally carry requested_moves,
// moves_executed, stopped_reason (text), stop_reason_code
// (blocked_edge|already_solved|solved), stopped_on_move (1-based),
// truncated, limit, a steps array, and possible_moves for the final
// board.
//
// Solve responses report an unreachable board as a classification,
// not an error: HTTP 200 with solvable=false and an empty move list.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{"error": "error message"}
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
package api
