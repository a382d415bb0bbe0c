// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"errors"
	"fmt"
)

// Sentinel errors for declaration mistakes. They are wrapped in a
// *ConfigError; use errors.Is to test for them.
var (
	// ErrSealed is returned when sections or options are added after Seal.
	ErrSealed = errors.New("program options are already sealed")

	// ErrUnknownSection is returned when an option names a section that was
	// never added.
	ErrUnknownSection = errors.New("no section defined for program option")

	// ErrDuplicateShorthand is returned when a shorthand is already taken.
	ErrDuplicateShorthand = errors.New("shorthand option already defined")
)

// ConfigError describes a mistake in the declaration of sections or options.
// It indicates a programming error, not bad user input.
type ConfigError struct {
	Op   string // "add section" or "add option"
	Name string // display name of the section or option
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FailureKind classifies a failure reported while processing user input.
type FailureKind int

const (
	UnknownOption FailureKind = iota + 1
	MissingValue
	InvalidValue
	UnknownLineType
	IOFailure
)

func (k FailureKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	case UnknownLineType:
		return "unknown line type"
	case IOFailure:
		return "i/o failure"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Failure is a recorded problem with user input.
type Failure struct {
	Kind    FailureKind
	Origin  Origin
	Message string
	// Suggestions holds "did you mean" candidates for UnknownOption.
	Suggestions []string
}

func (f Failure) Error() string {
	return fmt.Sprintf("error while processing %s: %s", f.Origin, f.Message)
}

// Origin tells where a value being processed came from. It is passed
// explicitly to every call that may report a failure.
type Origin struct {
	// Source is e.g. "command-line options" or "config file 'x.conf'".
	Source string
	// Line is the 1-based line number, or 0 if not applicable.
	Line int
}

// CommandLine is the origin of values taken from the argument vector.
func CommandLine() Origin {
	return Origin{Source: "command-line options"}
}

// ConfigFile is the origin of a value read from line of the file at path.
func ConfigFile(path string, line int) Origin {
	return Origin{Source: fmt.Sprintf("config file '%s'", path), Line: line}
}

// Environment is the origin of a value read from an environment variable.
func Environment(variable string) Origin {
	return Origin{Source: fmt.Sprintf("environment variable '%s'", variable)}
}

func (o Origin) String() string {
	if o.Line > 0 {
		return fmt.Sprintf("%s, line #%d", o.Source, o.Line)
	}
	return o.Source
}
