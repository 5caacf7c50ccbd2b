// Package websocket provides WebSocket transport for the sliding puzzle server.
//
// The websocket package implements:
//   - Real-time state streaming to connected clients
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting on changes
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. Every board change broadcasts a Message carrying
// the session ID, an event name ("state_update" for board changes), and the
// complete GameState. Incoming client messages are not processed; moves go
// through the REST API and the socket is a one-way state feed.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler, after resolving the session ID
//	hub.ServeWS(w, r, sessionID)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives state updates as moves and scrambles happen
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive messages
// simultaneously without blocking each other.
package websocket
