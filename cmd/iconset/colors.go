package main

import (
	"os"

	"golang.org/x/term"
)

// noColor disables ANSI styling when the user asks for it or when
// stdout is not a terminal.
var noColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func bold(s string) string  { return ansi("\033[1m", s) }
func cyan(s string) string  { return ansi("\033[36m", s) }
func green(s string) string { return ansi("\033[32m", s) }
