// Package websocket pushes river-crossing state changes to browsers.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - State broadcasting after every load, unload, crossing, and reset
//   - Connection lifecycle management with ping/pong keepalives
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. The Run goroutine owns the session map; clients
// register, unregister, and broadcast through channels, and each connection
// gets dedicated read and write goroutines.
//
// Message Protocol:
//
// Messages are JSON-encoded and flow one way, server to client:
//
//	{"session_id": "a3f1", "event": "ferry_arrived", "game_state": {...}}
//
// The event names what just happened ("load", "unload", "ferry_arrived",
// "lost", "won", "reset", "session_deleted") so a frontend can animate the
// ferry without diffing states. Incoming client messages are ignored; play
// happens over the REST API.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=a3f1) when
// establishing the connection. State updates are broadcast only to clients
// watching the same session, and slow clients are dropped rather than
// allowed to stall the hub.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	hub.BroadcastState(sessionID, "reset", state)
package websocket
