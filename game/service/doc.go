// Package service provides the business logic layer for the river-crossing game.
//
// The service package implements:
//   - Multi-session game management
//   - Ferry command processing (load, unload, cross, reset)
//   - Gameplay event extraction for transports to broadcast
//   - Crossing log pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the puzzle engine, providing session isolation and command orchestration.
// Each session maintains its own engine instance with independent state.
// Commands take the service lock for their whole duration, so a crossing's
// departure and arrival commit as one step no matter how many clients are
// connected.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play
//	result, err := gameService.LoadCargo(ctx, sessionInfo.ID, engine.CargoGoat)
//	crossing, err := gameService.Cross(ctx, sessionInfo.ID)
//
// Rejected commands are not errors: an illegal load or crossing comes back
// with Success=false and an unchanged game state, matching the engine's
// guard semantics. Errors are reserved for unknown sessions and transport
// failures.
package service
