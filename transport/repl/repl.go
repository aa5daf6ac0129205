package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/ferrygame/river-crossing/game/engine"
)

// crossingDelay is how long the ferry stays visibly mid-river. Purely
// presentation; the rules do not care how long a crossing takes.
const crossingDelay = 600 * time.Millisecond

// Run starts an interactive terminal session on the given engine and
// blocks until the player quits.
func Run(eng engine.Engine) error {
	r := &REPL{eng: eng}
	return r.Run()
}

// REPL is the interactive command loop.
type REPL struct {
	eng  engine.Engine
	line *liner.State
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riverbank_history")
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.line = liner.NewLiner()
	defer r.line.Close()

	r.line.SetCtrlCAborts(true)
	r.line.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("riverbank - wolf, goat and cabbage at the river")
	fmt.Println("Get all three across. The boat takes one at a time, and you")
	fmt.Println("know what happens when the wrong pair is left alone.")
	fmt.Println("Type 'help' for commands.")
	r.printScene()

	for {
		input, err := r.line.Prompt("river> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		r.line.AppendHistory(input)

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil

		case "help", "?":
			r.printHelp()

		case "look", "l", "state", "s":
			r.printScene()

		case "load":
			r.cmdLoad(args)

		case "unload", "u":
			r.cmdUnload()

		case "cross", "row", "c":
			r.cmdCross()

		case "reset", "restart":
			r.cmdReset()

		case "log", "history":
			r.cmdLog()

		case "clear", "cls":
			fmt.Print("\033[H\033[2J")

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

// saveHistory persists command history to disk.
func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		}
	}
}

// completer provides tab completion for commands and load targets.
func (r *REPL) completer(input string) []string {
	lower := strings.ToLower(input)

	// After "load ", complete the cargo names
	if strings.HasPrefix(lower, "load ") {
		rest := strings.TrimPrefix(lower, "load ")
		var completions []string
		for _, c := range engine.AllCargo {
			if strings.HasPrefix(string(c), rest) {
				completions = append(completions, "load "+string(c))
			}
		}
		return completions
	}

	commands := []string{
		"look", "load", "unload", "cross", "reset",
		"log", "history", "clear", "help", "exit", "quit",
	}

	var completions []string
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}
	return completions
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  look                 Show the river, both banks and the ferry")
	fmt.Println("  load <item>          Put the goat, wolf or cabbage on the ferry")
	fmt.Println("  unload               Take the carried item back off the ferry")
	fmt.Println("  cross                Row to the opposite bank")
	fmt.Println("  reset                Start over (the crossing log survives)")
	fmt.Println("  log                  Show all crossings so far")
	fmt.Println("  clear                Clear the screen")
	fmt.Println("  help                 Show this help")
	fmt.Println("  exit / quit / q      Exit")
	fmt.Println()
	fmt.Println("The wolf eats the goat, and the goat eats the cabbage, whenever")
	fmt.Println("you leave them alone together. Your presence keeps the peace.")
}

// printScene renders both banks, the ferry and the game status.
func (r *REPL) printScene() {
	fmt.Println()
	fmt.Printf("  Near bank: %s\n", r.shore(engine.BankNear))
	fmt.Printf("  ~~~~~~~~~ %s ~~~~~~~~~\n", r.ferryLine())
	fmt.Printf("  Far bank:  %s\n", r.shore(engine.BankFar))

	switch r.eng.GetOutcome() {
	case engine.OutcomeWon:
		fmt.Printf("\n  🎉 Solved in %d crossings!\n", r.eng.GetState().TotalCrossings)
	case engine.OutcomeLost:
		fmt.Printf("\n  💀 Game over: %s. Type 'reset' to try again.\n", r.eng.GetLossReason())
	default:
		if boardable := r.eng.BoardableCargo(); len(boardable) > 0 {
			fmt.Printf("\n  Can board: %s\n", joinCargo(boardable))
		}
	}
	fmt.Println()
}

// shore lists who stands on a bank. The farmer and the loaded item
// belong to the ferry line, not the shore.
func (r *REPL) shore(b engine.Bank) string {
	var names []string
	if r.eng.GetFarmerBank() == b && !r.eng.IsCrossing() {
		names = append(names, "farmer")
	}
	for _, c := range r.eng.CargoOn(b) {
		if c != r.eng.GetAboard() {
			names = append(names, string(c))
		}
	}
	if len(names) == 0 {
		return "(empty)"
	}
	return strings.Join(names, ", ")
}

func (r *REPL) ferryLine() string {
	load := "empty"
	if aboard := r.eng.GetAboard(); aboard != engine.CargoNone {
		load = "carrying the " + string(aboard)
	}
	if r.eng.IsCrossing() {
		return fmt.Sprintf("ferry mid-river, %s", load)
	}
	return fmt.Sprintf("ferry at %s bank, %s", r.eng.GetFerryBank(), load)
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: load <goat|wolf|cabbage>")
		return
	}

	cargo, err := engine.ParseCargo(args[0])
	if err != nil {
		fmt.Printf("Nothing called %q here. The passengers are goat, wolf and cabbage.\n", args[0])
		return
	}

	if !r.eng.LoadCargo(cargo) {
		fmt.Println(r.explainLoadRejection(cargo))
		return
	}

	fmt.Printf("The %s is aboard.\n", cargo)
	r.printScene()
}

// explainLoadRejection names the guard that blocked a load. The engine
// just says no; the terminal player deserves a reason.
func (r *REPL) explainLoadRejection(c engine.Cargo) string {
	switch {
	case r.eng.IsGameOver():
		return "The game is over. Type 'reset' to play again."
	case r.eng.IsCrossing():
		return "The ferry is mid-river. Wait for it to arrive."
	case r.eng.GetAboard() != engine.CargoNone:
		return fmt.Sprintf("The ferry already carries the %s. Unload it first.", r.eng.GetAboard())
	case !r.eng.Boardable(c):
		return fmt.Sprintf("The %s is on the other bank.", c)
	default:
		return "You can't load that right now."
	}
}

func (r *REPL) cmdUnload() {
	if !r.eng.UnloadCargo() {
		switch {
		case r.eng.IsGameOver():
			fmt.Println("The game is over. Type 'reset' to play again.")
		case r.eng.IsCrossing():
			fmt.Println("The ferry is mid-river. Wait for it to arrive.")
		default:
			fmt.Println("The ferry is empty.")
		}
		return
	}

	fmt.Printf("Unloaded onto the %s bank.\n", r.eng.GetFerryBank())
	r.printScene()
}

func (r *REPL) cmdCross() {
	if !r.eng.Depart() {
		if r.eng.IsGameOver() {
			fmt.Println("The game is over. Type 'reset' to play again.")
		} else {
			fmt.Println("The ferry can't leave right now.")
		}
		return
	}

	from := r.eng.GetFerryBank()
	passenger := "alone"
	if aboard := r.eng.GetAboard(); aboard != engine.CargoNone {
		passenger = "with the " + string(aboard)
	}
	fmt.Printf("The ferry pushes off from the %s bank, %s...\n", from, passenger)

	time.Sleep(crossingDelay)

	record := r.eng.Arrive()
	if record == nil {
		// Can't happen in this single-threaded loop, but don't crash on it
		fmt.Println("The crossing fell through.")
		return
	}

	fmt.Printf("Crossing %d complete: %s bank.\n", record.Number, record.To)
	r.printScene()
}

func (r *REPL) cmdReset() {
	state := r.eng.Reset()
	fmt.Println(state.Message)
	r.printScene()
}

func (r *REPL) cmdLog() {
	log := r.eng.GetCrossingLog()
	if len(log) == 0 {
		fmt.Println("No crossings yet.")
		return
	}

	fmt.Printf("Crossings (%d total, resets included):\n", len(log))
	for _, cr := range log {
		passenger := "alone"
		if cr.Aboard != engine.CargoNone {
			passenger = "with the " + string(cr.Aboard)
		}
		note := ""
		switch cr.Outcome {
		case engine.OutcomeLost:
			note = fmt.Sprintf("  (%s)", cr.LossReason)
		case engine.OutcomeWon:
			note = "  (won)"
		}
		fmt.Printf("%3d. %s → %s  %s%s\n", cr.Number, cr.From, cr.To, passenger, note)
	}
}

func joinCargo(items []engine.Cargo) string {
	names := make([]string, len(items))
	for i, c := range items {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
