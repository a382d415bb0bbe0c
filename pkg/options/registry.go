// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/yeetrun/progopts/pkg/tui"
	"tailscale.com/util/mak"
)

// ProgName is replaced by the program name in the usage string.
const ProgName = "#progname#"

// Suggestion limits for unknown option names.
const (
	suggestCutoff = 8
	suggestMax    = 4
)

// ProgramOptions is the registry of all sections and options of a program.
//
// It starts out open for declarations, becomes immutable in structure once
// Seal is called, and then receives values from one or more parse passes.
// It is not safe for concurrent use.
type ProgramOptions struct {
	progname string
	usage    string
	more     string

	sections   map[string]*Section
	shorthands map[string]string

	terminalWidth func() int
	similarity    SimilarityFunc
	stdout        io.Writer
	stderr        io.Writer
	color         tui.Colorizer
	colorSet      bool

	result ProcessingResult
	sealed bool
}

// Opt configures a ProgramOptions.
type Opt func(*ProgramOptions)

// WithTerminalWidth sets the function used to determine the help text width.
func WithTerminalWidth(fn func() int) Opt {
	return func(po *ProgramOptions) {
		po.terminalWidth = fn
	}
}

// WithSimilarity sets the distance function used for suggestions. A nil
// function disables suggestions.
func WithSimilarity(fn SimilarityFunc) Opt {
	return func(po *ProgramOptions) {
		po.similarity = fn
	}
}

// WithOutput sets the writers used for help text and failure reports.
func WithOutput(stdout, stderr io.Writer) Opt {
	return func(po *ProgramOptions) {
		po.stdout = stdout
		po.stderr = stderr
	}
}

// WithColorizer sets the colorizer applied to failure reports. Without it,
// color is used only when the error writer is a terminal.
func WithColorizer(c tui.Colorizer) Opt {
	return func(po *ProgramOptions) {
		po.color = c
		po.colorSet = true
	}
}

// New returns an empty, unsealed registry. Any occurrence of ProgName in
// usage is replaced by progname. more introduces the list of per-section
// help options at the end of the help output.
func New(progname, usage, more string, opts ...Opt) *ProgramOptions {
	po := &ProgramOptions{
		progname:      progname,
		usage:         strings.Replace(usage, ProgName, progname, 1),
		more:          more,
		terminalWidth: tui.TerminalWidth,
		similarity:    Levenshtein,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
	for _, opt := range opts {
		opt(po)
	}
	if !po.colorSet {
		po.color = tui.ForWriter(po.stderr)
	}
	return po
}

// ProgName returns the program name the registry was created with.
func (po *ProgramOptions) ProgName() string {
	return po.progname
}

// ProcessingResult returns the accumulated parse outcome.
func (po *ProgramOptions) ProcessingResult() *ProcessingResult {
	return &po.result
}

// Seal forbids any further structural change. Sealing twice is a no-op.
func (po *ProgramOptions) Seal() {
	po.sealed = true
}

// Sealed reports whether Seal has been called.
func (po *ProgramOptions) Sealed() bool {
	return po.sealed
}

// AddSection adds s, replacing any section with the same name.
func (po *ProgramOptions) AddSection(s *Section) error {
	if po.sealed {
		return &ConfigError{Op: "add section", Name: s.Name, Err: ErrSealed}
	}
	mak.Set(&po.sections, s.Name, s)
	return nil
}

// AddSectionNamed adds a regular section.
func (po *ProgramOptions) AddSectionNamed(name, description string) error {
	return po.AddSection(NewSection(name, description, "", false, false))
}

// AddHiddenSection adds a section whose options are usable but not shown in
// help.
func (po *ProgramOptions) AddHiddenSection(name, description string) error {
	return po.AddSection(NewSection(name, description, "", true, false))
}

// AddObsoleteSection adds a hidden section in which every assignment is
// accepted and ignored.
func (po *ProgramOptions) AddObsoleteSection(name string) error {
	return po.AddSection(NewSection(name, "", "", true, true))
}

// AddOption declares a regular option. See NewOption for the format of decl.
func (po *ProgramOptions) AddOption(decl, description string, param Parameter) error {
	return po.addOption(NewOption(decl, description, param, false, false))
}

// AddHiddenOption declares an option that is not shown in help.
func (po *ProgramOptions) AddHiddenOption(decl, description string, param Parameter) error {
	return po.addOption(NewOption(decl, description, param, true, false))
}

// AddObsoleteOption declares a hidden option that is accepted and ignored.
func (po *ProgramOptions) AddObsoleteOption(decl, description string) error {
	return po.addOption(NewOption(decl, description, ObsoleteParameter{}, true, true))
}

func (po *ProgramOptions) addOption(o *Option) error {
	if po.sealed {
		return &ConfigError{Op: "add option", Name: o.DisplayName(), Err: ErrSealed}
	}
	s, ok := po.sections[o.Section]
	if !ok {
		return &ConfigError{Op: "add option", Name: o.DisplayName(), Err: ErrUnknownSection}
	}
	if o.Shorthand != "" {
		if _, dup := po.shorthands[o.Shorthand]; dup {
			return &ConfigError{Op: "add option", Name: o.DisplayName(), Err: ErrDuplicateShorthand}
		}
		mak.Set(&po.shorthands, o.Shorthand, o.FullName())
	}
	s.addOption(o)
	return nil
}

// Sections returns all sections ordered by name.
func (po *ProgramOptions) Sections() []*Section {
	out := make([]*Section, 0, len(po.sections))
	for _, name := range slices.Sorted(maps.Keys(po.sections)) {
		out = append(out, po.sections[name])
	}
	return out
}

// Section returns the section with the given name.
func (po *ProgramOptions) Section(name string) (*Section, bool) {
	s, ok := po.sections[name]
	return s, ok
}

// lookup resolves a full option name. The section is returned even when the
// option does not exist.
func (po *ProgramOptions) lookup(name string) (*Section, *Option) {
	section, option := SplitName(name)
	s, ok := po.sections[section]
	if !ok {
		return nil, nil
	}
	o, _ := s.Option(option)
	return s, o
}

// Option returns the option with the given full name.
func (po *ProgramOptions) Option(name string) (*Option, bool) {
	_, o := po.lookup(name)
	return o, o != nil
}

// Get returns the parameter bound to the named option if it has type T.
func Get[T Parameter](po *ProgramOptions, name string) (T, bool) {
	var zero T
	o, ok := po.Option(name)
	if !ok {
		return zero, false
	}
	p, ok := o.Parameter.(T)
	return p, ok
}

// TranslateShorthand returns the full option name registered for the
// shorthand name, or name itself if there is none.
func (po *ProgramOptions) TranslateShorthand(name string) string {
	if full, ok := po.shorthands[name]; ok {
		return full
	}
	return name
}

// Walk calls fn for every option that is not obsolete and not in an obsolete
// section, in section and option name order. With onlyTouched, options that
// were not set during processing are skipped.
func (po *ProgramOptions) Walk(fn func(*Section, *Option), onlyTouched bool) {
	for _, s := range po.Sections() {
		if s.Obsolete {
			continue
		}
		for _, o := range s.Options() {
			if o.Obsolete {
				continue
			}
			if onlyTouched && !po.result.Touched(o.FullName()) {
				continue
			}
			fn(s, o)
		}
	}
}

// Require reports whether an option with the given full name exists. A
// missing option is reported as a failure.
func (po *ProgramOptions) Require(origin Origin, name string) bool {
	if _, o := po.lookup(name); o == nil {
		return po.unknownOption(origin, name)
	}
	return true
}

// SetValue validates value and assigns it to the named option.
//
// Assignments to an obsolete section are ignored. Assignments to an obsolete
// option mark it as touched and are otherwise ignored. It returns false if
// the option is unknown or the value is rejected; the failure has been
// reported by then.
func (po *ProgramOptions) SetValue(origin Origin, name, value string) bool {
	s, o := po.lookup(name)
	if s == nil {
		return po.unknownOption(origin, name)
	}
	if s.Obsolete {
		return true
	}
	if o == nil {
		return po.unknownOption(origin, name)
	}
	if o.Obsolete {
		po.result.Touch(o.FullName())
		return true
	}
	if err := o.Parameter.Set(value); err != nil {
		return po.Fail(origin, InvalidValue, "error setting value for option '"+name+"': "+err.Error())
	}
	po.result.Touch(o.FullName())
	return true
}

// RequiresValue reports whether the named option needs a value. Unknown
// names report false.
func (po *ProgramOptions) RequiresValue(name string) bool {
	_, o := po.lookup(name)
	if o == nil {
		return false
	}
	return o.Parameter.RequiresValue()
}

// AddPositional records a positional argument.
func (po *ProgramOptions) AddPositional(value string) {
	po.result.addPositional(value)
}
