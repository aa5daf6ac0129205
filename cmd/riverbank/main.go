// riverbank is a terminal client for the river crossing puzzle.
//
// It drives the puzzle engine in-process, so it needs no server. The same
// loop is reachable through `river-crossing play`; this standalone binary
// exists for quick play without touching server code at all.
//
// Usage:
//
//	riverbank
//
// Commands (in REPL):
//
//	look                 Show the river, both banks and the ferry
//	load <item>          Put the goat, wolf or cabbage on the ferry
//	unload               Take the carried item back off the ferry
//	cross                Row to the opposite bank
//	reset                Start over (the crossing log survives)
//	log                  Show all crossings so far
//	help                 Show this help
//	exit / quit / q      Exit
package main

import (
	"fmt"
	"os"

	"github.com/ferrygame/river-crossing/game/engine"
	"github.com/ferrygame/river-crossing/transport/repl"
)

func main() {
	if err := repl.Run(engine.NewEngine()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
