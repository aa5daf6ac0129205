// Package mcp provides a Model Context Protocol interface for the river
// crossing puzzle.
//
// The package implements a thin MCP client that proxies every tool call to
// the REST API server. It holds no game state of its own: the REST server
// remains the single source of truth, and the MCP layer translates tool
// calls into HTTP requests and game states into readable river scenes.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with a river scene rendering
//   - load_cargo: Put the wolf, the goat or the cabbage on the ferry
//   - unload_cargo: Take the carried item back off the ferry
//   - cross: Row the ferry to the opposite bank
//   - reset_game: Reset the puzzle to its initial state
//   - crossing_log: Retrieve the crossing log with pagination
//   - create_session: Create a new game session
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - game_instructions: Get the rules and strategy hints
//
// The load_cargo and cross tools accept an optional intent parameter. The
// server ignores it; its only job is to make the calling agent spell out
// the reasoning behind a move before committing to it.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Solve the puzzle autonomously
//   - Reason about which bank is safe to leave unsupervised
//   - Manage multiple concurrent puzzle sessions
//   - Review past attempts through the crossing log
package mcp
