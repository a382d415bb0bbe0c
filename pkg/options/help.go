// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import "fmt"

// AllSections selects every section in PrintHelp.
const AllSections = "*"

// PrintUsage writes the usage line.
func (po *ProgramOptions) PrintUsage() {
	fmt.Fprintf(po.stdout, "%s\n\n", po.usage)
}

// PrintHelp writes usage, the help of the named section (or of all sections
// for AllSections), and the list of per-section help options.
func (po *ProgramOptions) PrintHelp(section string) {
	po.PrintUsage()

	tw := po.terminalWidth()
	ow := po.optionsWidth()
	for _, s := range po.Sections() {
		if section == AllSections || section == s.Name {
			s.PrintHelp(po.stdout, tw, ow)
		}
	}
	po.PrintSectionsHelp()
}

// PrintSectionsHelp writes the "--help-<section>" option of every named
// section that has visible options.
func (po *ProgramOptions) PrintSectionsHelp() {
	fmt.Fprint(po.stdout, po.more)
	for _, s := range po.Sections() {
		if s.Name != "" && s.HasOptions() {
			fmt.Fprintf(po.stdout, " --help-%s", s.Name)
		}
	}
	fmt.Fprintln(po.stdout)
}

func (po *ProgramOptions) optionsWidth() int {
	width := 0
	for _, s := range po.sections {
		width = max(width, s.OptionsWidth())
	}
	return width
}
