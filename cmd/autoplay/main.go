// Command autoplay connects to a running puzzle server, asks it for an
// optimal solution, and plays the moves back one at a time. Useful for
// demoing the solver through the same REST surface the UI uses, and for
// smoke-testing a deployed server end to end.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type GameState struct {
	Board      [9]int `json:"board"`
	Solved     bool   `json:"solved"`
	Message    string `json:"message"`
	ConfigName string `json:"config_name"`
	TotalMoves int    `json:"total_moves"`
	Scrambles  int    `json:"scrambles"`
}

type SessionResponse struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	GameState  *GameState `json:"game_state"`
}

type MoveResponse struct {
	Success   bool       `json:"success"`
	GameState *GameState `json:"game_state"`
	Message   string     `json:"message"`
}

type SolveResponse struct {
	Solvable bool     `json:"solvable"`
	Length   int      `json:"length"`
	Moves    []string `json:"moves"`
}

type ScrambleResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*GameState, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

func (c *Client) GetState() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get state failed: %s - %s", resp.Status, string(body))
	}

	var state GameState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

func (c *Client) Solve() (*SolveResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/solve", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("solve failed: %s - %s", resp.Status, string(body))
	}

	var solution SolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&solution); err != nil {
		return nil, fmt.Errorf("parse solve response: %w", err)
	}

	return &solution, nil
}

func (c *Client) Move(direction string) (*GameState, error) {
	body, err := json.Marshal(map[string]string{"direction": direction})
	if err != nil {
		return nil, fmt.Errorf("marshal move: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/move", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute move: %w", err)
	}
	defer resp.Body.Close()

	var moveResp MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&moveResp); err != nil {
		return nil, fmt.Errorf("parse move response: %w", err)
	}

	if !moveResp.Success {
		return moveResp.GameState, fmt.Errorf("move %s blocked: %s", direction, moveResp.Message)
	}

	return moveResp.GameState, nil
}

func (c *Client) Scramble() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/scramble", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("scramble: %w", err)
	}
	defer resp.Body.Close()

	var scrambleResp ScrambleResponse
	if err := json.NewDecoder(resp.Body).Decode(&scrambleResp); err != nil {
		return nil, fmt.Errorf("parse scramble response: %w", err)
	}

	return scrambleResp.State, nil
}

func formatBoard(board [9]int) string {
	out := ""
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			v := board[row*3+col]
			if v == 0 {
				out += " . "
			} else {
				out += fmt.Sprintf(" %d ", v)
			}
		}
		out += "\n"
	}
	return out
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Puzzle server URL")
	configID := flag.String("config", "", "Puzzle configuration ID (classic, marathon, practice)")
	continueSession := flag.String("continue", "", "Resume an existing session by ID")
	delayMs := flag.Int("delay", 300, "Delay between moves in milliseconds")
	rounds := flag.Int("rounds", 1, "Number of scramble-and-solve rounds to play")
	verbose := flag.Bool("v", false, "Print the board after every move")
	flag.Parse()

	log.Printf("Connecting to puzzle server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *GameState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else if data, err := os.ReadFile(sessionFile); err == nil {
		savedSessionID = string(bytes.TrimSpace(data))
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		log.Printf("Resuming session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Created session: %s (config: %s)", client.sessionID, state.ConfigName)
		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: failed to save session ID: %v", err)
		}
	}

	for round := 1; round <= *rounds; round++ {
		if round > 1 || state.Solved {
			state, err = client.Scramble()
			if err != nil {
				log.Fatalf("Failed to scramble: %v", err)
			}
		}

		log.Printf("Round %d starting board:\n%s", round, formatBoard(state.Board))

		solution, err := client.Solve()
		if err != nil {
			log.Fatalf("Failed to solve: %v", err)
		}
		log.Printf("Optimal solution: %d moves", solution.Length)

		for i, direction := range solution.Moves {
			state, err = client.Move(direction)
			if err != nil {
				log.Fatalf("Move %d/%d failed: %v", i+1, solution.Length, err)
			}
			if *verbose {
				log.Printf("Move %d/%d: %s\n%s", i+1, solution.Length, direction, formatBoard(state.Board))
			}
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}

		if !state.Solved {
			log.Fatalf("Played %d moves but board is not solved:\n%s", solution.Length, formatBoard(state.Board))
		}
		log.Printf("Round %d solved in %d moves (session total: %d)", round, solution.Length, state.TotalMoves)
	}

	log.Printf("Done. Session %s, %d scrambles, %d total moves", client.sessionID, state.Scrambles, state.TotalMoves)
}
