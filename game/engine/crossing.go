package engine

import (
	"fmt"
	"time"
)

// Boardable reports whether the given item could be put on the ferry
// right now, ignoring whether the slot is taken. This is the predicate
// presentation layers use to decide which items respond to the player:
// the game must be in progress, the ferry must be moored, and the item
// must stand on the ferry's bank.
func (gs *GameState) Boardable(c Cargo) bool {
	if !c.Valid() {
		return false
	}
	if gs.Outcome != OutcomeInProgress || gs.Ferry.Crossing {
		return false
	}
	return gs.World.CargoBanks[c] == gs.Ferry.Bank
}

// CanLoad reports whether Load(c) would succeed: the item must be
// boardable and the ferry slot empty.
func (gs *GameState) CanLoad(c Cargo) bool {
	return gs.Boardable(c) && gs.Ferry.Aboard == CargoNone
}

// Load puts the item on the ferry. Illegal loads are ignored and
// report false; the state does not change.
func (gs *GameState) Load(c Cargo) bool {
	if !gs.CanLoad(c) {
		return false
	}
	gs.Ferry.Aboard = c
	gs.Message = fmt.Sprintf(MsgLoaded, c)
	return true
}

// CanUnload reports whether Unload would succeed
func (gs *GameState) CanUnload() bool {
	if gs.Outcome != OutcomeInProgress || gs.Ferry.Crossing {
		return false
	}
	return gs.Ferry.Aboard != CargoNone
}

// Unload puts the ferried item back on the bank the ferry is moored
// at. The item never left that bank in the world mapping, so only the
// slot clears. Illegal unloads are ignored and report false.
func (gs *GameState) Unload() bool {
	if !gs.CanUnload() {
		return false
	}
	c := gs.Ferry.Aboard
	gs.Ferry.Aboard = CargoNone
	gs.Message = fmt.Sprintf(MsgUnloaded, c, gs.Ferry.Bank)
	return true
}

// CanCross reports whether a crossing may begin
func (gs *GameState) CanCross() bool {
	return gs.Outcome == OutcomeInProgress && !gs.Ferry.Crossing
}

// BeginCrossing casts off: it raises the crossing flag that blocks
// loading, unloading and further departures until CompleteCrossing
// commits the transition. Reports false if the game is over or a
// crossing is already underway.
func (gs *GameState) BeginCrossing() bool {
	if !gs.CanCross() {
		return false
	}
	gs.Ferry.Crossing = true
	gs.Message = fmt.Sprintf(MsgDeparted, gs.Ferry.Bank)
	return true
}

// CompleteCrossing commits the crossing begun by BeginCrossing as one
// atomic transition and returns the log record, or nil if no crossing
// is underway.
//
// The transition works on a copy of the world: the farmer moves to the
// opposite bank taking any ferried item along, the bank he left is
// checked for predation (wolf and goat before goat and cabbage), and a
// win is declared only when nothing was eaten and everyone stands on
// the far bank. Whatever the outcome, the new world commits, the ferry
// moors at the new bank with an empty slot, and the crossing flag
// drops.
func (gs *GameState) CompleteCrossing() *CrossingRecord {
	if !gs.Ferry.Crossing {
		return nil
	}

	from := gs.Ferry.Bank
	to := from.Opposite()
	aboard := gs.Ferry.Aboard

	world := gs.World.Clone()
	world.FarmerBank = to
	if aboard != CargoNone {
		world.CargoBanks[aboard] = to
	}

	outcome := OutcomeInProgress
	reason := LossNone
	if r, lost := EvaluateLoss(world); lost {
		outcome = OutcomeLost
		reason = r
	} else if EvaluateWin(world) {
		outcome = OutcomeWon
	}

	// Commit
	gs.World = world
	gs.Ferry.Bank = to
	gs.Ferry.Aboard = CargoNone
	gs.Ferry.Crossing = false
	gs.Outcome = outcome
	gs.LossReason = reason

	switch {
	case reason == LossWolfAteGoat:
		gs.Message = MsgWolfAteGoat
	case reason == LossGoatAteCabbage:
		gs.Message = MsgGoatAteCabbage
	case outcome == OutcomeWon:
		gs.Message = MsgVictory
	case aboard == CargoNone:
		gs.Message = fmt.Sprintf(MsgCrossedAlone, to)
	default:
		gs.Message = fmt.Sprintf(MsgCrossedWith, to, aboard)
	}

	return gs.addCrossingRecord(from, to, aboard)
}

// addCrossingRecord appends a completed crossing to the game's log
func (gs *GameState) addCrossingRecord(from, to Bank, aboard Cargo) *CrossingRecord {
	record := CrossingRecord{
		From:       from,
		To:         to,
		Aboard:     aboard,
		Outcome:    gs.Outcome,
		LossReason: gs.LossReason,
		Timestamp:  time.Now().Unix(),
		Number:     gs.TotalCrossings + 1,
	}
	// Append to cumulative log (never cleared by reset) and increment total
	gs.CrossingLog = append(gs.CrossingLog, record)
	gs.TotalCrossings++

	// Append to current segment log and increment its counter
	gs.CurrentCrossings = append(gs.CurrentCrossings, record)
	gs.CurrentCrossingCount++

	return &gs.CrossingLog[len(gs.CrossingLog)-1]
}
