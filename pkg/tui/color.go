// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds the small terminal helpers used when printing help and
// parse failures.
package tui

import (
	"io"
	"os"
)

const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorYellow = "\x1b[33m"
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only when enabled is true
// and the environment does not ask for plain output.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForFile returns a Colorizer that is enabled when f is a terminal.
func ForFile(f *os.File) Colorizer {
	return NewColorizer(isTerminalFn(int(f.Fd())))
}

// ForWriter returns ForFile(w) when w is an *os.File and a disabled
// Colorizer otherwise.
func ForWriter(w io.Writer) Colorizer {
	if f, ok := w.(*os.File); ok {
		return ForFile(f)
	}
	return Colorizer{}
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" {
		return text
	}
	return code + text + ColorReset
}
