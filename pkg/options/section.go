// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"tailscale.com/util/mak"
)

// Section is a named group of options. The section named "" holds the
// global options.
type Section struct {
	Name        string
	Description string
	// Alias replaces Name in help output when set.
	Alias    string
	Hidden   bool
	Obsolete bool

	options map[string]*Option
}

// NewSection returns an empty section.
func NewSection(name, description, alias string, hidden, obsolete bool) *Section {
	return &Section{
		Name:        name,
		Description: description,
		Alias:       alias,
		Hidden:      hidden,
		Obsolete:    obsolete,
	}
}

// addOption stores o under its name, replacing any option of the same name.
func (s *Section) addOption(o *Option) {
	mak.Set(&s.options, o.Name, o)
}

// Option returns the option with the given (section-local) name.
func (s *Section) Option(name string) (*Option, bool) {
	o, ok := s.options[name]
	return o, ok
}

// Options returns the section's options ordered by name.
func (s *Section) Options() []*Option {
	out := make([]*Option, 0, len(s.options))
	for _, name := range slices.Sorted(maps.Keys(s.options)) {
		out = append(out, s.options[name])
	}
	return out
}

// DisplayName returns the alias if one is set, else the name.
func (s *Section) DisplayName() string {
	if s.Alias == "" {
		return s.Name
	}
	return s.Alias
}

// HasOptions reports whether the section has options to show in help.
func (s *Section) HasOptions() bool {
	if s.Hidden {
		return false
	}
	for _, o := range s.options {
		if !o.Hidden {
			return true
		}
	}
	return false
}

// PrintHelp writes the section header followed by the help of every visible
// option.
func (s *Section) PrintHelp(w io.Writer, tw, ow int) {
	if s.Hidden || !s.HasOptions() {
		return
	}
	fmt.Fprintf(w, "Section '%s' (%s)\n", s.DisplayName(), s.Description)
	for _, o := range s.Options() {
		o.PrintHelp(w, tw, ow)
	}
	fmt.Fprintln(w)
}

// OptionsWidth is the widest option column among the visible options.
func (s *Section) OptionsWidth() int {
	if s.Hidden {
		return 0
	}
	width := 0
	for _, o := range s.options {
		width = max(width, o.OptionsWidth())
	}
	return width
}
