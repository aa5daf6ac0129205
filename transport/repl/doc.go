// Package repl provides the interactive terminal client for the river
// crossing puzzle.
//
// Unlike the websocket and mcp transports, the REPL drives the engine
// in-process instead of going through the REST API. It is the only
// surface that plays the crossing in two phases: the ferry pushes off,
// sits mid-river for a beat, and then lands, rather than committing
// the whole trip in a single call.
//
// Commands: look, load <item>, unload, cross, reset, log, clear,
// help, exit. Input handling (history, tab completion, Ctrl-C) comes
// from peterh/liner.
package repl
