package engine

import (
	"encoding/json"
	"testing"
)

func TestBank_Opposite(t *testing.T) {
	if BankNear.Opposite() != BankFar {
		t.Errorf("Expected opposite of near to be far, got %s", BankNear.Opposite())
	}
	if BankFar.Opposite() != BankNear {
		t.Errorf("Expected opposite of far to be near, got %s", BankFar.Opposite())
	}

	// Double opposite returns the original bank
	for _, b := range []Bank{BankNear, BankFar} {
		if b.Opposite().Opposite() != b {
			t.Errorf("Expected double opposite of %s to be itself", b)
		}
	}
}

func TestBank_Valid(t *testing.T) {
	tests := []struct {
		name  string
		bank  Bank
		valid bool
	}{
		{"near", BankNear, true},
		{"far", BankFar, true},
		{"empty", Bank(""), false},
		{"unknown", Bank("middle"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.bank.Valid() != tt.valid {
				t.Errorf("Expected Valid()=%v for bank %q", tt.valid, tt.bank)
			}
		})
	}
}

func TestParseBank(t *testing.T) {
	b, err := ParseBank("near")
	if err != nil {
		t.Fatalf("Unexpected error parsing 'near': %v", err)
	}
	if b != BankNear {
		t.Errorf("Expected BankNear, got %s", b)
	}

	b, err = ParseBank("far")
	if err != nil {
		t.Fatalf("Unexpected error parsing 'far': %v", err)
	}
	if b != BankFar {
		t.Errorf("Expected BankFar, got %s", b)
	}

	if _, err := ParseBank("river"); err == nil {
		t.Error("Expected error for unknown bank name")
	}
	if _, err := ParseBank(""); err == nil {
		t.Error("Expected error for empty bank name")
	}
}

func TestCargo_Valid(t *testing.T) {
	for _, c := range AllCargo {
		if !c.Valid() {
			t.Errorf("Expected %s to be valid cargo", c)
		}
	}

	if CargoNone.Valid() {
		t.Error("Expected CargoNone not to be valid cargo")
	}
	if Cargo("farmer").Valid() {
		t.Error("Expected 'farmer' not to be valid cargo")
	}
	if Cargo("sheep").Valid() {
		t.Error("Expected 'sheep' not to be valid cargo")
	}
}

func TestParseCargo(t *testing.T) {
	tests := []struct {
		input   string
		want    Cargo
		wantErr bool
	}{
		{"goat", CargoGoat, false},
		{"wolf", CargoWolf, false},
		{"cabbage", CargoCabbage, false},
		{"", CargoNone, true},
		{"Goat", CargoNone, true},
		{"dog", CargoNone, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := ParseCargo(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error for input %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error for input %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected cargo %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAllCargo_FixedSet(t *testing.T) {
	if len(AllCargo) != 3 {
		t.Fatalf("Expected exactly 3 cargo items, got %d", len(AllCargo))
	}

	seen := make(map[Cargo]bool)
	for _, c := range AllCargo {
		if seen[c] {
			t.Errorf("Duplicate cargo %s in AllCargo", c)
		}
		seen[c] = true
	}

	for _, want := range []Cargo{CargoGoat, CargoWolf, CargoCabbage} {
		if !seen[want] {
			t.Errorf("Expected %s in AllCargo", want)
		}
	}
}

func TestLossReasons_ExactWording(t *testing.T) {
	// These strings are part of the engine's contract with every
	// consumer that keys behavior off the loss reason.
	if string(LossWolfAteGoat) != "wolf ate goat" {
		t.Errorf("Unexpected wolf loss reason: %q", LossWolfAteGoat)
	}
	if string(LossGoatAteCabbage) != "goat ate cabbage" {
		t.Errorf("Unexpected goat loss reason: %q", LossGoatAteCabbage)
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{"FerryCapacity", FerryCapacity, 1},
		{"MinWinCrossings", MinWinCrossings, 7},
		{"MaxLogPageSize", MaxLogPageSize, 100},
		{"DefaultLogPageSize", DefaultLogPageSize, 20},
		{"WebSocketBufferSize", WebSocketBufferSize, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.expected, tt.value)
			}
		})
	}
}

func TestGameState_JSONRoundTrip(t *testing.T) {
	gs := NewGameState()
	gs.Load(CargoGoat)

	data, err := json.Marshal(gs)
	if err != nil {
		t.Fatalf("Failed to marshal game state: %v", err)
	}

	var decoded GameState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal game state: %v", err)
	}

	if decoded.Ferry.Aboard != CargoGoat {
		t.Errorf("Expected goat aboard after round trip, got %q", decoded.Ferry.Aboard)
	}
	if decoded.World.CargoBanks[CargoWolf] != BankNear {
		t.Errorf("Expected wolf on near bank after round trip, got %q", decoded.World.CargoBanks[CargoWolf])
	}
	if decoded.Outcome != OutcomeInProgress {
		t.Errorf("Expected in_progress outcome after round trip, got %q", decoded.Outcome)
	}
}
