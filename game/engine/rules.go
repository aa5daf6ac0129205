package engine

// NewWorldState returns a world with the farmer and all three cargo
// items on the given bank. The returned CargoBanks map always contains
// exactly the three puzzle items as keys.
func NewWorldState(start Bank) WorldState {
	banks := make(map[Cargo]Bank, len(AllCargo))
	for _, c := range AllCargo {
		banks[c] = start
	}
	return WorldState{
		FarmerBank: start,
		CargoBanks: banks,
	}
}

// Clone returns a deep copy of the world, so callers can stage a
// transition without touching the live state.
func (w WorldState) Clone() WorldState {
	banks := make(map[Cargo]Bank, len(w.CargoBanks))
	for c, b := range w.CargoBanks {
		banks[c] = b
	}
	return WorldState{
		FarmerBank: w.FarmerBank,
		CargoBanks: banks,
	}
}

// BankManifest returns the cargo items currently on the given bank, in
// AllCargo order.
func (w WorldState) BankManifest(b Bank) []Cargo {
	var items []Cargo
	for _, c := range AllCargo {
		if w.CargoBanks[c] == b {
			items = append(items, c)
		}
	}
	return items
}

// Together reports whether both items sit on the given bank.
func (w WorldState) Together(b Bank, a, c Cargo) bool {
	return w.CargoBanks[a] == b && w.CargoBanks[c] == b
}

// EvaluateLoss inspects the bank the farmer cannot supervise and
// reports whether something got eaten there. The wolf-and-goat pairing
// is checked before goat-and-cabbage, so a bank holding all three
// always reports the wolf eating the goat.
func EvaluateLoss(w WorldState) (LossReason, bool) {
	unsupervised := w.FarmerBank.Opposite()
	if w.Together(unsupervised, CargoWolf, CargoGoat) {
		return LossWolfAteGoat, true
	}
	if w.Together(unsupervised, CargoGoat, CargoCabbage) {
		return LossGoatAteCabbage, true
	}
	return LossNone, false
}

// EvaluateWin reports whether the farmer and every cargo item stand on
// the far bank. Only meaningful when EvaluateLoss reported no loss.
func EvaluateWin(w WorldState) bool {
	if w.FarmerBank != BankFar {
		return false
	}
	for _, c := range AllCargo {
		if w.CargoBanks[c] != BankFar {
			return false
		}
	}
	return true
}

// NewGameState builds the fixed initial configuration: farmer, ferry
// and all cargo on the near bank, empty boat, game in progress.
func NewGameState() *GameState {
	return &GameState{
		World: NewWorldState(BankNear),
		Ferry: FerryState{
			Bank:     BankNear,
			Aboard:   CargoNone,
			Crossing: false,
		},
		Outcome:              OutcomeInProgress,
		LossReason:           LossNone,
		Message:              MsgWelcome,
		CrossingLog:          []CrossingRecord{},
		TotalCrossings:       0,
		CurrentCrossings:     []CrossingRecord{},
		CurrentCrossingCount: 0,
	}
}
