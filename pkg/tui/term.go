// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"golang.org/x/term"
)

// DefaultColumns is the width assumed when stdout is not a terminal.
const DefaultColumns = 80

var (
	isTerminalFn = term.IsTerminal
	getSizeFn    = term.GetSize
)

// TerminalWidth reports the column count of stdout, or DefaultColumns when
// it cannot be determined.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !isTerminalFn(fd) {
		return DefaultColumns
	}
	cols, _, err := getSizeFn(fd)
	if err != nil || cols <= 0 {
		return DefaultColumns
	}
	return cols
}
