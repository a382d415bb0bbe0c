// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"io"
	"strings"
)

// Option is a single named, typed setting.
type Option struct {
	Section     string
	Name        string
	Description string
	Shorthand   string
	Parameter   Parameter
	Hidden      bool
	Obsolete    bool
}

// NewOption builds an Option from a declaration string such as
// "--server.endpoints,-e". A leading "--" is ignored, the name is split at
// its first "." into section and option name, and anything after a "," is
// the shorthand (with an optional leading "-").
func NewOption(decl, description string, param Parameter, hidden, obsolete bool) *Option {
	section, name := SplitName(decl)
	o := &Option{
		Section:     section,
		Name:        name,
		Description: description,
		Parameter:   param,
		Hidden:      hidden,
		Obsolete:    obsolete,
	}
	if name, short, ok := strings.Cut(o.Name, ","); ok {
		o.Name = name
		o.Shorthand = StripShorthand(short)
	}
	return o
}

// FullName returns "section.name", or just "name" for global options.
func (o *Option) FullName() string {
	if o.Section == "" {
		return o.Name
	}
	return o.Section + "." + o.Name
}

// DisplayName returns the full name as typed on the command line.
func (o *Option) DisplayName() string {
	return "--" + o.FullName()
}

func (o *Option) nameWithType() string {
	return o.DisplayName() + " " + o.Parameter.TypeDescription()
}

// OptionsWidth is the width of the name and type column for this option, or
// 0 if the option is hidden.
func (o *Option) OptionsWidth() int {
	if o.Hidden {
		return 0
	}
	return len(o.nameWithType())
}

// PrintHelp writes the help line(s) for the option. tw is the terminal width
// and ow the width of the option column shared by all options.
func (o *Option) PrintHelp(w io.Writer, tw, ow int) {
	if o.Hidden {
		return
	}
	fmt.Fprintf(w, "  %s   ", pad(o.nameWithType(), ow))

	value := o.Description
	if o.Parameter.RequiresValue() {
		value += " (default: " + o.Parameter.ValueString() + ")"
	}
	parts := wordwrap(value, tw-ow-6)
	for i, part := range parts {
		fmt.Fprintln(w, trimLeft(part))
		if i < len(parts)-1 {
			fmt.Fprintf(w, "  %s   ", pad("", ow))
		}
	}
}

// StripPrefix removes a leading "--" from name.
func StripPrefix(name string) string {
	return strings.TrimPrefix(name, "--")
}

// StripShorthand removes a leading "-" from name.
func StripShorthand(name string) string {
	return strings.TrimPrefix(name, "-")
}

// SplitName splits an option name at its first "." into section and name.
// Names without a "." belong to the global section "".
func SplitName(name string) (section, option string) {
	name = StripPrefix(name)
	if section, option, ok := strings.Cut(name, "."); ok {
		return section, option
	}
	return "", name
}
