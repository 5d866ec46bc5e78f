// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes used for CLI output.
const (
	ColorGreen  = "32"
	ColorYellow = "33"
	ColorCyan   = "36"
)

// supportsColor checks if the terminal supports ANSI color codes
func supportsColor() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) { // #nosec G115 - file descriptors are small integers
		return false
	}

	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return false
	}

	return true
}

// Colorize wraps s in the given ANSI color when stdout is a capable
// terminal, and returns it unchanged otherwise.
func Colorize(s, colorCode string) string {
	if !supportsColor() || colorCode == "" {
		return s
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", colorCode, s)
}
