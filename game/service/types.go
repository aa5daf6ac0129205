package service

import (
	"time"

	"github.com/ferrygame/river-crossing/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}

// ActionResult contains the result of a load or unload operation
type ActionResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	Boardable []engine.Cargo    `json:"boardable"`
}

// CrossResult contains the result of a ferry crossing
type CrossResult struct {
	Success   bool                   `json:"success"`
	GameState *engine.GameState      `json:"game_state"`
	Message   string                 `json:"message"`
	Events    []GameEvent            `json:"events"`
	Crossing  *engine.CrossingRecord `json:"crossing,omitempty"`
	Boardable []engine.Cargo         `json:"boardable"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string       `json:"type"` // "load", "unload", "ferry_departed", "ferry_arrived", "lost", "won", "reset"
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	Cargo     engine.Cargo `json:"cargo,omitempty"`
	Bank      engine.Bank  `json:"bank,omitempty"`
}

// LogOptions configures crossing log retrieval
type LogOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// LogResponse contains a paginated crossing log
type LogResponse struct {
	Crossings      []engine.CrossingRecord `json:"crossings"`
	TotalCrossings int                     `json:"total_crossings"`
	Page           int                     `json:"page"`
	PageSize       int                     `json:"page_size"`
	TotalPages     int                     `json:"total_pages"`
	HasNext        bool                    `json:"has_next"`
	HasPrevious    bool                    `json:"has_previous"`
}
