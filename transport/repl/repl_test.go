package repl

import (
	"strings"
	"testing"

	"github.com/ferrygame/river-crossing/game/engine"
)

func newTestREPL() *REPL {
	return &REPL{eng: engine.NewEngine()}
}

func TestShore_Initial(t *testing.T) {
	r := newTestREPL()

	if got := r.shore(engine.BankNear); got != "farmer, goat, wolf, cabbage" {
		t.Errorf("near shore = %q, want %q", got, "farmer, goat, wolf, cabbage")
	}
	if got := r.shore(engine.BankFar); got != "(empty)" {
		t.Errorf("far shore = %q, want %q", got, "(empty)")
	}
}

func TestShore_ExcludesAboardItem(t *testing.T) {
	r := newTestREPL()

	if !r.eng.LoadCargo(engine.CargoGoat) {
		t.Fatal("load goat should succeed on a fresh game")
	}

	if got := r.shore(engine.BankNear); got != "farmer, wolf, cabbage" {
		t.Errorf("near shore = %q, want the goat on the ferry line instead", got)
	}
	if got := r.ferryLine(); got != "ferry at near bank, carrying the goat" {
		t.Errorf("ferry line = %q", got)
	}
}

func TestShore_FarmerRowsWithFerry(t *testing.T) {
	r := newTestREPL()

	r.eng.LoadCargo(engine.CargoGoat)
	if !r.eng.Depart() {
		t.Fatal("depart should succeed on a fresh game")
	}

	if got := r.ferryLine(); got != "ferry mid-river, carrying the goat" {
		t.Errorf("ferry line = %q", got)
	}
	// Mid-crossing, neither bank shows the farmer
	if got := r.shore(engine.BankNear); got != "wolf, cabbage" {
		t.Errorf("near shore = %q, want %q", got, "wolf, cabbage")
	}
	if got := r.shore(engine.BankFar); got != "(empty)" {
		t.Errorf("far shore = %q, want %q", got, "(empty)")
	}
}

func TestFerryLine_Empty(t *testing.T) {
	r := newTestREPL()

	if got := r.ferryLine(); got != "ferry at near bank, empty" {
		t.Errorf("ferry line = %q", got)
	}
}

func TestExplainLoadRejection(t *testing.T) {
	t.Run("slot already taken", func(t *testing.T) {
		r := newTestREPL()
		r.eng.LoadCargo(engine.CargoGoat)

		got := r.explainLoadRejection(engine.CargoWolf)
		if !strings.Contains(got, "already carries the goat") {
			t.Errorf("explanation = %q, want the occupied slot named", got)
		}
	})

	t.Run("item on the other bank", func(t *testing.T) {
		r := newTestREPL()
		// Ferry the goat over; the wolf stays on the near bank
		r.eng.LoadCargo(engine.CargoGoat)
		r.eng.Cross()

		got := r.explainLoadRejection(engine.CargoWolf)
		if !strings.Contains(got, "other bank") {
			t.Errorf("explanation = %q, want the other bank named", got)
		}
	})

	t.Run("mid crossing", func(t *testing.T) {
		r := newTestREPL()
		r.eng.Depart()

		got := r.explainLoadRejection(engine.CargoGoat)
		if !strings.Contains(got, "mid-river") {
			t.Errorf("explanation = %q, want the transit named", got)
		}
	})

	t.Run("game over", func(t *testing.T) {
		r := newTestREPL()
		// Crossing with the wolf leaves goat and cabbage alone
		r.eng.LoadCargo(engine.CargoWolf)
		r.eng.Cross()

		if !r.eng.IsLost() {
			t.Fatal("crossing with the wolf first should lose the game")
		}

		got := r.explainLoadRejection(engine.CargoGoat)
		if !strings.Contains(got, "game is over") {
			t.Errorf("explanation = %q, want the finished game named", got)
		}
	})
}

func TestCompleter(t *testing.T) {
	r := newTestREPL()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "command prefix",
			input: "lo",
			want:  []string{"look", "load", "log"},
		},
		{
			name:  "cargo after load",
			input: "load g",
			want:  []string{"load goat"},
		},
		{
			name:  "all cargo after bare load",
			input: "load ",
			want:  []string{"load goat", "load wolf", "load cabbage"},
		},
		{
			name:  "no match",
			input: "xyzzy",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.completer(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("completer(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("completer(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestJoinCargo(t *testing.T) {
	got := joinCargo([]engine.Cargo{engine.CargoGoat, engine.CargoCabbage})
	if got != "goat, cabbage" {
		t.Errorf("joinCargo = %q, want %q", got, "goat, cabbage")
	}
}

func TestHistoryFile(t *testing.T) {
	path := historyFile()
	if path == "" {
		t.Skip("no home directory in this environment")
	}
	if !strings.HasSuffix(path, ".riverbank_history") {
		t.Errorf("historyFile() = %q, want a .riverbank_history path", path)
	}
}
