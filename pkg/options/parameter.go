// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

// Parameter is the value holder bound to an option. Implementations validate
// input and store it wherever the caller asked them to.
type Parameter interface {
	// Set validates value and stores it. A non-nil error leaves the
	// stored value unchanged.
	Set(value string) error
	// RequiresValue reports whether the option must be given a value. Options
	// that do not require one are set with an empty string.
	RequiresValue() bool
	// TypeDescription is shown next to the option name in help output,
	// e.g. "<uint32>".
	TypeDescription() string
	// ValueString renders the current value for help output.
	ValueString() string
}

// ObsoleteParameter is bound to options that are still accepted but no
// longer have any effect.
type ObsoleteParameter struct{}

func (ObsoleteParameter) Set(string) error        { return nil }
func (ObsoleteParameter) RequiresValue() bool     { return false }
func (ObsoleteParameter) TypeDescription() string { return "" }
func (ObsoleteParameter) ValueString() string     { return "-" }
