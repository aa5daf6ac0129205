package service

import (
	"context"
	"time"

	"github.com/ferrygame/river-crossing/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	LoadCargo(ctx context.Context, sessionID string, cargo engine.Cargo) (*ActionResult, error)
	UnloadCargo(ctx context.Context, sessionID string) (*ActionResult, error)
	Cross(ctx context.Context, sessionID string) (*CrossResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetCrossingLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.PuzzleEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
