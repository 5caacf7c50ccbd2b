// Package session provides session management for the sliding puzzle server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Concurrent access control
//   - Session cleanup and expiration
//   - Optional file-backed persistence
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session owns an independent puzzle engine instance plus metadata like
// creation time and last access time.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. The manager ensures
// IDs are unique and provides collision-resistant generation using
// cryptographic randomness. Lookups are case-insensitive.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and modify different
// sessions simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
//
// Persistence:
//
// NewManagerWithPersistence wires a SessionPersistence implementation;
// FilePersistence stores each session as a JSON file named after its ID and
// restores engines from the recorded config and game state on load.
package session
