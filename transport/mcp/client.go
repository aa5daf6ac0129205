package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ferrygame/river-crossing/game/engine"
	"github.com/ferrygame/river-crossing/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"River Crossing Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`River Crossing Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
A farmer must ferry a wolf, a goat and a cabbage across a river. The boat
holds the farmer plus one item. Left unsupervised, the wolf eats the goat
and the goat eats the cabbage. Get all three to the far bank to win.

AVAILABLE TOOLS:
- game_state: Get current game state
- load_cargo: Put an item on the ferry - requires intent explanation
- unload_cargo: Take the carried item back off the ferry
- cross: Row to the opposite bank - requires intent explanation
- reset_game: Reset to initial state
- crossing_log: View past crossings
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on load_cargo/cross tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "load_cargo",
		Description: "Put the wolf, the goat or the cabbage on the ferry",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"cargo": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"goat", "wolf", "cabbage"},
					"description": "Item to load",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this load (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "cargo"},
		},
	}, c.handleLoadCargo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "unload_cargo",
		Description: "Take the carried item back off the ferry onto the current bank",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleUnloadCargo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "cross",
		Description: "Row the ferry to the opposite bank with whatever is aboard",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this crossing (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleCross)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "crossing_log",
		Description: "Get the crossing log for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleCrossingLog)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var session service.SessionInfo
	err := c.apiCall(ctx, "POST", "/api/sessions", nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\n\n%s", session.ID, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		outcome := ""
		if s.GameState != nil {
			outcome = string(s.GameState.Outcome)
		}
		result += fmt.Sprintf("- %s (Outcome: %s, Created: %s)\n",
			s.ID, outcome, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLoadCargo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	cargo, _ := args["cargo"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"cargo": cargo,
	}

	var result service.ActionResult
	err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/load", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActionResult("Load", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleUnloadCargo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.ActionResult
	err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/unload", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActionResult("Unload", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleCross(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	var result service.CrossResult
	err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/cross", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatCrossResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleCrossingLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var crossingLog service.LogResponse
	err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s/log%s", sessionID, params), nil, &crossingLog)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the log
		result := formatCrossingLog(&crossingLog)
		return mcp.NewToolResultText(result), nil
	}

	result := formatCrossingLog(&crossingLog)
	result += "\n" + formatCurrentSegment(session.GameState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🛶 River Crossing Puzzle - Complete Instructions

GAME OBJECTIVE:
Ferry the wolf, the goat and the cabbage from the near bank to the far bank
without anything getting eaten.

GAME MECHANICS:
• The boat holds the farmer plus at most ONE item
• The farmer always rows; items never cross on their own
• load_cargo stages an item on the ferry, unload_cargo takes it back off
• cross rows to the opposite bank with whatever is aboard
• While the ferry is mid-river, loading and unloading are rejected

DANGER RULES (checked on the bank the farmer just LEFT):
• Wolf + goat alone together → the wolf eats the goat
• Goat + cabbage alone together → the goat eats the cabbage
• The farmer's presence keeps everyone civil
• The wolf ignores the cabbage entirely

VICTORY CONDITION:
All three items stand on the far bank. The fastest solution takes 7 crossings.

LOSS CONDITION:
Something gets eaten. The game ends immediately and further loads and
crossings are rejected until reset_game is called.

🤖 STRATEGY HINTS:
- The goat is the troublemaker: it can be eaten AND can eat. Think about
  which pairs you leave behind before every crossing.
- Rowing back empty-handed is often necessary; an empty return trip is
  not a wasted move.
- Bringing an item BACK to the near bank can be the right move. If a plan
  feels stuck, consider which passenger to take on the return leg.
- A rejected command never costs anything: the state is unchanged and the
  message explains what the rules forbid.

COMMANDS:
- load_cargo with cargo = goat | wolf | cabbage
- unload_cargo - put the staged item back on the current bank
- cross - row to the opposite bank
- reset_game - everyone back to the near bank (the crossing log survives)

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state
- Use session-specific tools for multi-game management

Remember: every crossing moves the farmer, so the unsupervised bank changes
each trip. Check who is left alone together BEFORE you row away!

Good luck getting everyone across! 🐺🐐🥬`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nCreated: %s\n\n%s",
		session.ID,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header (include cumulative crossing total)
	result.WriteString(fmt.Sprintf("Outcome: %s | Crossings: %d\n\n",
		state.Outcome, state.TotalCrossings))

	result.WriteString(formatRiverScene(state))

	// Decision aid: which items would respond to a load right now
	boardable := computeBoardable(state)
	if len(boardable) > 0 {
		result.WriteString(fmt.Sprintf("Can board: %s\n", strings.Join(boardable, ", ")))
	}

	// Status
	switch state.Outcome {
	case engine.OutcomeWon:
		result.WriteString("\n🎉 VICTORY!")
	case engine.OutcomeLost:
		result.WriteString(fmt.Sprintf("\n💀 GAME OVER (%s)", state.LossReason))
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// formatRiverScene renders the two banks, the river, and the ferry
func formatRiverScene(state *engine.GameState) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Near bank: %s\n", strings.Join(bankOccupants(state, engine.BankNear), ", ")))
	b.WriteString("           ~~~~~~~~~~~~\n")
	b.WriteString(fmt.Sprintf("Far bank:  %s\n", strings.Join(bankOccupants(state, engine.BankFar), ", ")))

	ferry := fmt.Sprintf("Ferry: moored at the %s bank", state.Ferry.Bank)
	if state.Ferry.Crossing {
		ferry = "Ferry: mid-river"
	}
	if state.Ferry.Aboard != engine.CargoNone {
		ferry += fmt.Sprintf(", carrying the %s", state.Ferry.Aboard)
	} else {
		ferry += ", empty"
	}
	b.WriteString(ferry + "\n")

	return b.String()
}

// bankOccupants lists who stands on a bank. The farmer travels with the
// ferry, and a loaded item sits on the boat rather than the shore.
func bankOccupants(state *engine.GameState, bank engine.Bank) []string {
	var names []string
	if state.World.FarmerBank == bank && !state.Ferry.Crossing {
		names = append(names, "farmer")
	}
	for _, c := range engine.AllCargo {
		if state.World.CargoBanks[c] == bank && state.Ferry.Aboard != c {
			names = append(names, string(c))
		}
	}
	if len(names) == 0 {
		names = append(names, "(empty)")
	}
	return names
}

// computeBoardable mirrors the engine's boardable predicate from a
// state snapshot: in-progress game, ferry moored, item on the ferry's bank
func computeBoardable(state *engine.GameState) []string {
	if state == nil || state.Outcome != engine.OutcomeInProgress || state.Ferry.Crossing {
		return []string{}
	}
	var res []string
	for _, c := range engine.AllCargo {
		if state.World.CargoBanks[c] == state.Ferry.Bank {
			res = append(res, string(c))
		}
	}
	return res
}

func formatActionResult(action string, result *service.ActionResult) string {
	response := ""
	if result.Success {
		response = fmt.Sprintf("✓ %s successful\n", action)
	} else {
		response = fmt.Sprintf("✗ %s rejected: %s\n", action, result.Message)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatCrossResult(result *service.CrossResult) string {
	var b strings.Builder

	if result.Success {
		b.WriteString("✓ Crossing complete\n")
	} else {
		b.WriteString(fmt.Sprintf("✗ Crossing rejected: %s\n", result.Message))
	}

	// Compact crossing summary (if available)
	if result.Crossing != nil {
		cr := result.Crossing
		passenger := "alone"
		if cr.Aboard != engine.CargoNone {
			passenger = "with the " + string(cr.Aboard)
		}
		b.WriteString(fmt.Sprintf("Crossing %d: %s→%s %s\n", cr.Number, cr.From, cr.To, passenger))
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatCrossingLog(crossingLog *service.LogResponse) string {
	result := fmt.Sprintf("Crossing Log (Page %d/%d) — Total (cumulative): %d\n\n",
		crossingLog.Page, crossingLog.TotalPages, crossingLog.TotalCrossings)

	for _, cr := range crossingLog.Crossings {
		passenger := "alone"
		if cr.Aboard != engine.CargoNone {
			passenger = "with the " + string(cr.Aboard)
		}
		status := ""
		switch cr.Outcome {
		case engine.OutcomeLost:
			status = fmt.Sprintf(" 💀 %s", cr.LossReason)
		case engine.OutcomeWon:
			status = " 🎉 won"
		}
		result += fmt.Sprintf("%d. %s→%s %s%s\n", cr.Number, cr.From, cr.To, passenger, status)
	}

	return result
}

func formatCurrentSegment(state *engine.GameState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	crossings := state.CurrentCrossings
	total := state.CurrentCrossingCount
	header := fmt.Sprintf("Current Attempt — Crossings: %d\n\n", total)
	if len(crossings) == 0 {
		return header + "(no crossings since the last reset)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, cr := range crossings {
		passenger := "alone"
		if cr.Aboard != engine.CargoNone {
			passenger = "with the " + string(cr.Aboard)
		}
		b.WriteString(fmt.Sprintf("%d. %s→%s %s\n", i+1, cr.From, cr.To, passenger))
	}
	return b.String()
}
