// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"slices"

	"tailscale.com/util/set"
)

// ProcessingResult is the outcome of one or more parse passes.
type ProcessingResult struct {
	positionals []string
	touched     set.Set[string]
	failures    []Failure
	failed      bool
}

// Touch marks the option with the given full name as set.
func (r *ProcessingResult) Touch(name string) {
	if r.touched == nil {
		r.touched = set.Set[string]{}
	}
	r.touched.Add(StripPrefix(name))
}

// Touched reports whether the option was set during processing. A leading
// "--" in name is ignored.
func (r *ProcessingResult) Touched(name string) bool {
	return r.touched.Contains(StripPrefix(name))
}

// TouchedNames returns the full names of all touched options, sorted.
func (r *ProcessingResult) TouchedNames() []string {
	if len(r.touched) == 0 {
		return nil
	}
	names := r.touched.Slice()
	slices.Sort(names)
	return names
}

// Failed reports whether any failure has been reported. Once set it stays set.
func (r *ProcessingResult) Failed() bool {
	return r.failed
}

// Failures returns the failures in the order they were reported.
func (r *ProcessingResult) Failures() []Failure {
	return slices.Clone(r.failures)
}

// Positionals returns the positional arguments in the order they were seen.
func (r *ProcessingResult) Positionals() []string {
	return slices.Clone(r.positionals)
}

func (r *ProcessingResult) addPositional(value string) {
	r.positionals = append(r.positionals, value)
}

func (r *ProcessingResult) addFailure(f Failure) {
	r.failed = true
	r.failures = append(r.failures, f)
}
