// Package api provides the HTTP REST surface of the river-crossing puzzle.
//
// The api package implements:
//   - RESTful endpoints for the ferry operations
//   - Session management endpoints
//   - WebSocket upgrade handling
//   - Static file serving for the browser frontend
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/load - Put a cargo item on the ferry
//   - POST /api/sessions/{id}/unload - Take the carried item back off
//   - POST /api/sessions/{id}/cross - Row the ferry to the other bank
//   - POST /api/sessions/{id}/reset - Start the puzzle over
//   - GET /api/sessions/{id}/log - Crossing log with pagination
//
// Diagnostics:
//   - GET /api/healthz - Liveness probe
//   - GET /ws?session={id} - WebSocket for live state pushes
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Loading cargo takes a body:
//
//	{"cargo": "goat|wolf|cabbage"}
//
// An unknown cargo name is a 400; a legal request the rules forbid
// (wrong bank, occupied ferry, finished game) is a 200 whose body
// carries success=false and an explanatory message. Each mutating
// response includes the full game state, the events that fired, and
// the list of items that could board the ferry next.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
