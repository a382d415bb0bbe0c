// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/yeetrun/progopts/pkg/codecutil"
)

var (
	// a line with only a comment, e.g. "# ..." or "; ...", or nothing
	iniComment = regexp.MustCompile(`^[ \t]*([#;].*)?$`)
	// a section header, e.g. "[server]"
	iniSection = regexp.MustCompile(`^[ \t]*\[([-_A-Za-z0-9]*)\][ \t]*$`)
	// an assignment, e.g. "endpoints = tcp://..." or "server.endpoints = ...";
	// trailing whitespace belongs to the value
	iniAssignment = regexp.MustCompile(`^[ \t]*(([-_A-Za-z0-9]*\.)?[-_A-Za-z0-9]*)[ \t]*=[ \t]*(.*)?[ \t]*$`)
)

// IniFileParser applies an INI-style config file to a ProgramOptions.
//
// Keys inside a "[section]" block are relative to that section unless they
// contain a "." themselves, in which case they are full option names.
type IniFileParser struct {
	po *ProgramOptions
}

func NewIniFileParser(po *ProgramOptions) *IniFileParser {
	return &IniFileParser{po: po}
}

// Parse reads the config file at path. zstd-compressed files are
// decompressed transparently. It returns false on the first failure.
func (p *IniFileParser) Parse(path string) bool {
	rc, err := codecutil.Open(path)
	if err != nil {
		return p.po.Fail(ConfigFile(path, 0), IOFailure, "unable to open file")
	}
	defer rc.Close()
	return p.ParseReader(path, rc)
}

// ParseReader reads config lines from r. name is used in failure messages.
func (p *IniFileParser) ParseReader(name string, r io.Reader) bool {
	var (
		currentSection string
		lineNumber     int
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return p.po.Fail(ConfigFile(name, lineNumber+1), IOFailure, "unable to read file: "+err.Error())
		}
		if line == "" {
			return true
		}
		lineNumber++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if iniComment.MatchString(line) {
			continue
		}

		origin := ConfigFile(name, lineNumber)
		if m := iniSection.FindStringSubmatch(line); m != nil {
			currentSection = m[1]
			continue
		}
		m := iniAssignment.FindStringSubmatch(line)
		if m == nil {
			return p.po.Fail(origin, UnknownLineType, "unknown line type")
		}
		option, qualifier, value := m[1], m[2], m[3]
		if currentSection != "" && qualifier == "" {
			option = currentSection + "." + option
		}
		if !p.po.SetValue(origin, option, value) {
			return false
		}
	}
}
