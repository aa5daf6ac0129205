// Package engine provides the core game logic for the river-crossing puzzle.
//
// The engine package implements the classic wolf, goat and cabbage
// riddle: a farmer must ferry all three items to the far bank on a
// boat that holds only one of them at a time, without ever leaving the
// wolf alone with the goat or the goat alone with the cabbage.
//
// The engine implements the game mechanics including:
//   - Loading and unloading the ferry's single cargo slot
//   - Crossings as atomic state transitions with a blocking in-transit phase
//   - Predation checks on the bank the farmer cannot supervise
//   - Win detection when everyone reaches the far bank
//   - A cumulative crossing log that survives resets
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by PuzzleEngine. GameState carries the full position:
// WorldState places the farmer and cargo on banks, FerryState tracks
// the boat, its slot and the crossing flag, and Outcome classifies the
// game as in progress, lost or won.
//
// Usage:
//
//	game := engine.NewEngine()
//
//	game.LoadCargo(engine.CargoGoat)
//	record := game.Cross()
//	state := game.GetState()
//
// Illegal operations are ignored rather than treated as errors: the
// mutators report false (or nil) and leave the state untouched, so a
// player mashing buttons can never corrupt a game.
//
// Game Rules:
//
// The farmer always travels with the ferry. A crossing moves the boat,
// the farmer and any loaded item to the opposite bank, then checks the
// bank left behind: a wolf alone with a goat eats it, a goat alone
// with a cabbage eats it, and the wolf-goat pairing is checked first
// when both apply. The game is won when the farmer and all three items
// stand on the far bank, and lost the moment anything is eaten.
package engine
