package engine

import "fmt"

// Bank identifies one side of the river
type Bank string

const (
	BankNear Bank = "near"
	BankFar  Bank = "far"
)

// Opposite returns the bank across the river
func (b Bank) Opposite() Bank {
	if b == BankNear {
		return BankFar
	}
	return BankNear
}

// Valid reports whether b is one of the two banks
func (b Bank) Valid() bool {
	return b == BankNear || b == BankFar
}

// ParseBank converts a string into a Bank, rejecting unknown values
func ParseBank(s string) (Bank, error) {
	b := Bank(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown bank %q (must be %q or %q)", s, BankNear, BankFar)
	}
	return b, nil
}

// Cargo identifies an item the farmer can ferry across the river
type Cargo string

const (
	CargoGoat    Cargo = "goat"
	CargoWolf    Cargo = "wolf"
	CargoCabbage Cargo = "cabbage"

	// CargoNone marks an empty ferry slot
	CargoNone Cargo = ""
)

// AllCargo lists every item in the puzzle in a fixed order
var AllCargo = []Cargo{CargoGoat, CargoWolf, CargoCabbage}

// Valid reports whether c names an actual puzzle item (CargoNone is not one)
func (c Cargo) Valid() bool {
	return c == CargoGoat || c == CargoWolf || c == CargoCabbage
}

// ParseCargo converts a string into a Cargo, rejecting unknown values
func ParseCargo(s string) (Cargo, error) {
	c := Cargo(s)
	if !c.Valid() {
		return CargoNone, fmt.Errorf("unknown cargo %q (must be %q, %q or %q)", s, CargoGoat, CargoWolf, CargoCabbage)
	}
	return c, nil
}

// Outcome classifies a game as running, lost, or won
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeLost       Outcome = "lost"
	OutcomeWon        Outcome = "won"
)

// LossReason names the predation that ended a lost game
type LossReason string

const (
	LossNone           LossReason = ""
	LossWolfAteGoat    LossReason = "wolf ate goat"
	LossGoatAteCabbage LossReason = "goat ate cabbage"
)

const (
	// FerryCapacity is the number of cargo items the ferry can hold besides the farmer
	FerryCapacity = 1

	// MinWinCrossings is the fewest crossings that can win the puzzle
	MinWinCrossings = 7

	// Validation constants
	MaxLogPageSize      = 100
	DefaultLogPageSize  = 20
	WebSocketBufferSize = 256
)

// Player-facing messages. The puzzle ships a single built-in instance,
// so these are fixed strings rather than configuration.
const (
	MsgWelcome        = "Ferry the wolf, the goat and the cabbage to the far bank. The boat holds one item at a time."
	MsgLoaded         = "The %s is aboard the ferry"
	MsgUnloaded       = "The %s is back on the %s bank"
	MsgDeparted       = "The ferry pushes off from the %s bank"
	MsgCrossedAlone   = "The farmer rowed to the %s bank alone"
	MsgCrossedWith    = "The farmer rowed to the %s bank with the %s"
	MsgWolfAteGoat    = "While the farmer was away, the wolf ate the goat. Game over!"
	MsgGoatAteCabbage = "While the farmer was away, the goat ate the cabbage. Game over!"
	MsgVictory        = "Everyone made it to the far bank. You win!"
	MsgReset          = "Back to the start: everyone is on the near bank again"
)

// WorldState places the farmer and every cargo item on a bank.
// CargoBanks always holds exactly the three puzzle items as keys.
type WorldState struct {
	FarmerBank Bank           `json:"farmer_bank"`
	CargoBanks map[Cargo]Bank `json:"cargo_banks"`
}

// FerryState tracks the boat: which bank it is moored at, what occupies
// its single cargo slot, and whether a crossing is underway
type FerryState struct {
	Bank     Bank  `json:"bank"`
	Aboard   Cargo `json:"aboard"`
	Crossing bool  `json:"crossing"`
}

// GameState represents the complete game state
type GameState struct {
	World      WorldState `json:"world"`
	Ferry      FerryState `json:"ferry"`
	Outcome    Outcome    `json:"outcome"`
	LossReason LossReason `json:"loss_reason,omitempty"`
	Message    string     `json:"message"`

	CrossingLog    []CrossingRecord `json:"crossing_log"`
	TotalCrossings int              `json:"total_crossings"`

	// CurrentCrossings tracks only the crossings since the last reset. It mirrors
	// CrossingLog entries but gets cleared on reset while CrossingLog remains cumulative.
	CurrentCrossings     []CrossingRecord `json:"current_crossings"`
	CurrentCrossingCount int              `json:"current_crossing_count"`
}

// CrossingRecord represents a single ferry crossing in the game log
type CrossingRecord struct {
	From       Bank       `json:"from"`
	To         Bank       `json:"to"`
	Aboard     Cargo      `json:"aboard,omitempty"` // CargoNone when the farmer rowed alone
	Outcome    Outcome    `json:"outcome"`
	LossReason LossReason `json:"loss_reason,omitempty"`
	Timestamp  int64      `json:"timestamp"`
	Number     int        `json:"number"`
}
