package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/emoran/puzzle8/game/engine"
	"github.com/emoran/puzzle8/game/service"
	"github.com/emoran/puzzle8/puzzle"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	// Create a test server that returns a known response
	expectedResponse := map[string]interface{}{
		"id":          "test-session",
		"total_moves": float64(12),
		"solved":      false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/sessions/test-session/state", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_JSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/nope", nil, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 404 response")
	}

	if err.Error() != "session not found" {
		t.Errorf("Expected error 'session not found', got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	// Mock server that responds to session creation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "test-session-123",
			ConfigName: "classic",
			GameState: &engine.GameState{
				Board: puzzle.Goal(),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	// Test create session without config
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	// Check that the result contains the session ID
	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "test-session-123") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions/ab12/hint" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.HintResult{Direction: "left", Remaining: 9})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "hint",
			Arguments: map[string]interface{}{"session_id": "ab12"},
		},
	}

	result, err := client.handleHint(context.Background(), request)
	if err != nil {
		t.Fatalf("handleHint failed: %v", err)
	}

	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "left") || !strings.Contains(text, "9") {
		t.Errorf("Expected hint direction and remaining count, got: %s", text)
	}
}

func TestFormatGameState(t *testing.T) {
	gameState := &engine.GameState{
		Board:             puzzle.Board{1, 2, 3, 4, 5, 6, 0, 7, 8},
		ConfigName:        "classic",
		TotalMoves:        14,
		CurrentMovesCount: 3,
		Scrambles:         2,
		Message:           "Keep sliding!",
	}

	result := formatGameState(gameState)

	expectedFields := []string{
		"Config: classic",
		"Moves: 14",
		"Scrambles: 2",
		"Keep sliding!",
		"| 1 2 3 |",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}

	if strings.Contains(result, "SOLVED") {
		t.Error("Unsolved board should not report SOLVED")
	}
}

func TestFormatGameState_Solved(t *testing.T) {
	gameState := &engine.GameState{
		Board:   puzzle.Goal(),
		Solved:  true,
		Message: "Solved in 22 moves!",
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "🎉 SOLVED!") {
		t.Errorf("Expected '🎉 SOLVED!' in result, got: %s", result)
	}
}

func TestFormatMoveResult(t *testing.T) {
	moveResult := &service.MoveResult{
		Success: true,
		Message: "Moves: 5",
		GameState: &engine.GameState{
			Board:      puzzle.Board{1, 2, 3, 4, 5, 6, 7, 0, 8},
			TotalMoves: 5,
		},
		Step: &service.StepInfo{Dir: "right", Tile: 8, From: 8, To: 7, Success: true},
	}

	result := formatMoveResult(moveResult)

	expectedFields := []string{
		"✓ Move successful",
		"Step: right tile=8",
		"Moves: 5",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatMoveResult_Blocked(t *testing.T) {
	moveResult := &service.MoveResult{
		Success: false,
		Message: "That tile can't slide there",
		GameState: &engine.GameState{
			Board: puzzle.Goal(),
		},
	}

	result := formatMoveResult(moveResult)

	if !strings.Contains(result, "✗ Move blocked") {
		t.Errorf("Expected '✗ Move blocked' in result, got: %s", result)
	}
}

func TestFormatSolveResult(t *testing.T) {
	t.Run("Solution path", func(t *testing.T) {
		result := formatSolveResult(&service.SolveResult{
			Solvable: true,
			Length:   3,
			Moves:    []string{"up", "left", "up"},
		})
		if !strings.Contains(result, "3 moves") {
			t.Errorf("Expected move count, got: %s", result)
		}
		if !strings.Contains(result, "up → left → up") {
			t.Errorf("Expected move sequence, got: %s", result)
		}
	})

	t.Run("Already solved", func(t *testing.T) {
		result := formatSolveResult(&service.SolveResult{Solvable: true, Length: 0})
		if !strings.Contains(result, "already solved") {
			t.Errorf("Expected already-solved text, got: %s", result)
		}
	})

	t.Run("Unsolvable", func(t *testing.T) {
		result := formatSolveResult(&service.SolveResult{Solvable: false})
		if !strings.Contains(result, "cannot reach the goal") {
			t.Errorf("Expected unsolvable text, got: %s", result)
		}
	})
}

func TestClient_handlePuzzleInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "puzzle_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handlePuzzleInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handlePuzzleInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Sliding Puzzle (8-puzzle) - Complete Instructions",
		"PUZZLE OBJECTIVE:",
		"BOARD MODEL:",
		"MOVE RULES:",
		"SOLVABILITY:",
		"STRATEGY NOTES:",
		"SESSION MANAGEMENT:",
		"CONFIGURATIONS:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	// Verifies the client can be created and initialized without errors
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
