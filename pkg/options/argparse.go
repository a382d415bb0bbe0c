// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import "strings"

const helpFlag = "--help"

// ArgumentParser applies command-line arguments to a ProgramOptions.
type ArgumentParser struct {
	po *ProgramOptions
}

func NewArgumentParser(po *ProgramOptions) *ArgumentParser {
	return &ArgumentParser{po: po}
}

// HelpSection returns the section for which help was requested: AllSections
// for a plain "--help", "name" for "--help-name", and "" if no help was
// requested. args[0] is the program name and is skipped.
func (p *ArgumentParser) HelpSection(args []string) string {
	for _, arg := range skipProgName(args) {
		if !strings.HasPrefix(arg, helpFlag) {
			continue
		}
		if len(arg) <= len(helpFlag)+1 {
			return AllSections
		}
		return arg[len(helpFlag)+1:]
	}
	return ""
}

// Parse applies args to the options. args[0] is the program name and is
// skipped.
//
// Arguments without a leading dash are positional. "-x" is looked up as a
// shorthand, "--name" as a full option name. A value is given either inline
// ("--name=value") or as the next argument, for options that require one.
// Parsing stops at the first failure, which has already been reported when
// Parse returns false.
func (p *ArgumentParser) Parse(args []string) bool {
	origin := CommandLine()

	var lastOption string
	for _, arg := range skipProgName(args) {
		if lastOption != "" {
			option := lastOption
			lastOption = ""
			if !p.po.SetValue(origin, option, arg) {
				return false
			}
			continue
		}

		dashes := 0
		if strings.HasPrefix(arg, "--") {
			dashes = 2
		} else if strings.HasPrefix(arg, "-") {
			dashes = 1
		}
		if dashes == 0 {
			p.po.AddPositional(arg)
			continue
		}

		option, value, hasValue := strings.Cut(arg[dashes:], "=")
		if dashes == 1 {
			option = p.po.TranslateShorthand(option)
		}
		if hasValue {
			if !p.po.SetValue(origin, option, value) {
				return false
			}
			continue
		}

		if !p.po.Require(origin, option) {
			return false
		}
		if p.po.RequiresValue(option) {
			lastOption = option
			continue
		}
		if !p.po.SetValue(origin, option, "") {
			return false
		}
	}

	if lastOption != "" {
		return p.po.Fail(origin, MissingValue, "no value specified for option '"+lastOption+"'")
	}
	return true
}

func skipProgName(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}
