package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	GetOutcome() Outcome
	GetLossReason() LossReason
	IsGameOver() bool
	IsWon() bool
	IsLost() bool

	// Ferry operations
	LoadCargo(c Cargo) bool
	UnloadCargo() bool
	Depart() bool
	Arrive() *CrossingRecord
	Cross() *CrossingRecord
	IsCrossing() bool

	// Legality queries
	CanLoadCargo(c Cargo) bool
	Boardable(c Cargo) bool
	BoardableCargo() []Cargo

	// Positions
	GetFerryBank() Bank
	GetAboard() Cargo
	GetFarmerBank() Bank
	CargoOn(b Bank) []Cargo

	// History
	GetCrossingLog() []CrossingRecord
	GetLastCrossing() *CrossingRecord
}

// PuzzleEngine implements the Engine interface for the fixed
// wolf-goat-cabbage instance
type PuzzleEngine struct {
	state *GameState
}

// NewEngine creates a new engine with everyone on the near bank. The
// puzzle has exactly one configuration, so there is nothing to pass in.
func NewEngine() *PuzzleEngine {
	return &PuzzleEngine{state: NewGameState()}
}

// GetState returns the current game state
func (e *PuzzleEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state (used by tests to stage positions)
func (e *PuzzleEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	for _, c := range AllCargo {
		if _, ok := state.World.CargoBanks[c]; !ok {
			return fmt.Errorf("state is missing a bank for %s", c)
		}
	}
	e.state = state
	return nil
}

// Reset restores the initial configuration. It works from any state,
// including mid-crossing and after the game has ended.
func (e *PuzzleEngine) Reset() *GameState {
	// Preserve cumulative log and totals across resets
	prevLog := e.state.CrossingLog
	prevTotal := e.state.TotalCrossings

	e.state = NewGameState()
	e.state.Message = MsgReset

	// Restore cumulative log and totals; clear only the current segment
	e.state.CrossingLog = prevLog
	e.state.TotalCrossings = prevTotal
	e.state.CurrentCrossings = []CrossingRecord{}
	e.state.CurrentCrossingCount = 0

	return e.state
}

// GetOutcome returns the current game outcome
func (e *PuzzleEngine) GetOutcome() Outcome {
	return e.state.Outcome
}

// GetLossReason returns what got eaten, or LossNone for a game that
// is running or won
func (e *PuzzleEngine) GetLossReason() LossReason {
	return e.state.LossReason
}

// IsGameOver returns whether the game has ended in a win or a loss
func (e *PuzzleEngine) IsGameOver() bool {
	return e.state.Outcome != OutcomeInProgress
}

// IsWon returns whether the puzzle has been solved
func (e *PuzzleEngine) IsWon() bool {
	return e.state.Outcome == OutcomeWon
}

// IsLost returns whether something got eaten
func (e *PuzzleEngine) IsLost() bool {
	return e.state.Outcome == OutcomeLost
}

// LoadCargo attempts to put the item on the ferry
func (e *PuzzleEngine) LoadCargo(c Cargo) bool {
	return e.state.Load(c)
}

// UnloadCargo attempts to put the ferried item back on the bank
func (e *PuzzleEngine) UnloadCargo() bool {
	return e.state.Unload()
}

// Depart begins a crossing. While the ferry is underway, loading,
// unloading and further departures are rejected until Arrive commits.
func (e *PuzzleEngine) Depart() bool {
	return e.state.BeginCrossing()
}

// Arrive commits the crossing begun by Depart and returns the log
// record, or nil if no crossing is underway.
func (e *PuzzleEngine) Arrive() *CrossingRecord {
	return e.state.CompleteCrossing()
}

// Cross departs and arrives in one call, for callers that do not
// animate the ferry in transit. Returns nil if departure was rejected.
func (e *PuzzleEngine) Cross() *CrossingRecord {
	if !e.state.BeginCrossing() {
		return nil
	}
	return e.state.CompleteCrossing()
}

// IsCrossing returns whether a crossing is underway
func (e *PuzzleEngine) IsCrossing() bool {
	return e.state.Ferry.Crossing
}

// CanLoadCargo checks whether LoadCargo(c) would succeed
func (e *PuzzleEngine) CanLoadCargo(c Cargo) bool {
	return e.state.CanLoad(c)
}

// Boardable checks whether the item currently responds to the player,
// ignoring whether the ferry slot is taken
func (e *PuzzleEngine) Boardable(c Cargo) bool {
	return e.state.Boardable(c)
}

// BoardableCargo returns all items that currently respond to the player
func (e *PuzzleEngine) BoardableCargo() []Cargo {
	var possible []Cargo
	for _, c := range AllCargo {
		if e.state.Boardable(c) {
			possible = append(possible, c)
		}
	}
	return possible
}

// GetFerryBank returns the bank the ferry is moored at
func (e *PuzzleEngine) GetFerryBank() Bank {
	return e.state.Ferry.Bank
}

// GetAboard returns the item on the ferry, or CargoNone
func (e *PuzzleEngine) GetAboard() Cargo {
	return e.state.Ferry.Aboard
}

// GetFarmerBank returns the bank the farmer stands on
func (e *PuzzleEngine) GetFarmerBank() Bank {
	return e.state.World.FarmerBank
}

// CargoOn returns the items standing on the given bank
func (e *PuzzleEngine) CargoOn(b Bank) []Cargo {
	return e.state.World.BankManifest(b)
}

// GetCrossingLog returns the complete crossing log
func (e *PuzzleEngine) GetCrossingLog() []CrossingRecord {
	return e.state.CrossingLog
}

// GetLastCrossing returns the last crossing made, or nil if none
func (e *PuzzleEngine) GetLastCrossing() *CrossingRecord {
	if len(e.state.CrossingLog) == 0 {
		return nil
	}
	return &e.state.CrossingLog[len(e.state.CrossingLog)-1]
}
