package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ferrygame/river-crossing/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
	}
}

// CreateSession creates a new game session with a fresh puzzle
func (s *gameServiceImpl) CreateSession(ctx context.Context) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Let the session manager generate a 4-character ID
	session, err := s.sessions.Create("")
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// LoadCargo stages an item on the ferry for a session
func (s *gameServiceImpl) LoadCargo(ctx context.Context, sessionID string, cargo engine.Cargo) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	success := sess.Engine.LoadCargo(cargo)
	state := sess.Engine.GetState()

	result := &ActionResult{
		Success:   success,
		GameState: state,
		Message:   state.Message,
		Boardable: sess.Engine.BoardableCargo(),
	}
	if success {
		result.Events = []GameEvent{{
			Type:      "load",
			Message:   state.Message,
			Timestamp: time.Now(),
			Cargo:     cargo,
			Bank:      state.Ferry.Bank,
		}}
	}

	return result, nil
}

// UnloadCargo returns the staged item to the bank for a session
func (s *gameServiceImpl) UnloadCargo(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	unloaded := sess.Engine.GetAboard()
	success := sess.Engine.UnloadCargo()
	state := sess.Engine.GetState()

	result := &ActionResult{
		Success:   success,
		GameState: state,
		Message:   state.Message,
		Boardable: sess.Engine.BoardableCargo(),
	}
	if success {
		result.Events = []GameEvent{{
			Type:      "unload",
			Message:   state.Message,
			Timestamp: time.Now(),
			Cargo:     unloaded,
			Bank:      state.Ferry.Bank,
		}}
	}

	return result, nil
}

// Cross executes a full ferry crossing for a session. The service lock
// is held from departure through arrival, so no other command can slip
// into the transit window.
func (s *gameServiceImpl) Cross(ctx context.Context, sessionID string) (*CrossResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	from := sess.Engine.GetFerryBank()
	aboard := sess.Engine.GetAboard()

	if !sess.Engine.Depart() {
		state := sess.Engine.GetState()
		return &CrossResult{
			Success:   false,
			GameState: state,
			Message:   state.Message,
			Events:    []GameEvent{},
			Boardable: sess.Engine.BoardableCargo(),
		}, nil
	}

	events := []GameEvent{{
		Type:      "ferry_departed",
		Message:   sess.Engine.GetState().Message,
		Timestamp: time.Now(),
		Cargo:     aboard,
		Bank:      from,
	}}

	record := sess.Engine.Arrive()
	state := sess.Engine.GetState()
	events = append(events, s.extractArrivalEvents(state, record)...)

	return &CrossResult{
		Success:   true,
		GameState: state,
		Message:   state.Message,
		Events:    events,
		Crossing:  record,
		Boardable: sess.Engine.BoardableCargo(),
	}, nil
}

// Reset resets a game session to the initial configuration
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.Reset(), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetCrossingLog returns the paginated crossing log
func (s *gameServiceImpl) GetCrossingLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	log := sess.Engine.GetCrossingLog()
	total := len(log)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = engine.DefaultLogPageSize
	}
	if opts.Limit > engine.MaxLogPageSize {
		opts.Limit = engine.MaxLogPageSize
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var crossings []engine.CrossingRecord
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			crossings = append(crossings, log[i])
		}
	} else {
		// Chronological order
		if start < total {
			crossings = log[start:end]
		}
	}

	if crossings == nil {
		crossings = []engine.CrossingRecord{}
	}

	return &LogResponse{
		Crossings:      crossings,
		TotalCrossings: total,
		Page:           opts.Page,
		PageSize:       opts.Limit,
		TotalPages:     totalPages,
		HasNext:        opts.Page < totalPages,
		HasPrevious:    opts.Page > 1,
	}, nil
}

// sessionInfo builds the outward-facing view of a session
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
	}
}

// extractArrivalEvents generates events from a committed crossing
func (s *gameServiceImpl) extractArrivalEvents(state *engine.GameState, record *engine.CrossingRecord) []GameEvent {
	if record == nil {
		return nil
	}

	events := []GameEvent{{
		Type:      "ferry_arrived",
		Message:   state.Message,
		Timestamp: time.Now(),
		Cargo:     record.Aboard,
		Bank:      record.To,
	}}

	switch state.Outcome {
	case engine.OutcomeLost:
		events = append(events, GameEvent{
			Type:      "lost",
			Message:   state.Message,
			Timestamp: time.Now(),
			Bank:      record.To.Opposite(),
		})
	case engine.OutcomeWon:
		events = append(events, GameEvent{
			Type:      "won",
			Message:   state.Message,
			Timestamp: time.Now(),
			Bank:      record.To,
		})
	}

	return events
}
