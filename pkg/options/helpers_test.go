// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yeetrun/progopts/pkg/tui"
)

// fakeParam records every value it is given.
type fakeParam struct {
	requires bool
	typ      string
	value    string
	reject   string
	sets     []string
}

func (p *fakeParam) Set(v string) error {
	if p.reject != "" && v == p.reject {
		return errors.New("value rejected")
	}
	p.sets = append(p.sets, v)
	p.value = v
	return nil
}

func (p *fakeParam) RequiresValue() bool     { return p.requires }
func (p *fakeParam) TypeDescription() string { return p.typ }
func (p *fakeParam) ValueString() string     { return p.value }

func flagParam() *fakeParam { return &fakeParam{} }

func valueParam(typ, def string) *fakeParam {
	return &fakeParam{requires: true, typ: typ, value: def}
}

type fixture struct {
	po     *ProgramOptions
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	params map[string]*fakeParam
}

func newBareFixture(opts ...Opt) *fixture {
	f := &fixture{
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
		params: make(map[string]*fakeParam),
	}
	base := []Opt{
		WithOutput(f.stdout, f.stderr),
		WithTerminalWidth(func() int { return 80 }),
		WithColorizer(tui.Colorizer{}),
	}
	f.po = New("arangod", "Usage: #progname# [<options>] <database-directory>", "For more information use:", append(base, opts...)...)
	return f
}

func (f *fixture) add(t *testing.T, decl string, p *fakeParam) {
	t.Helper()
	if err := f.po.AddOption(decl, "description of "+decl, p); err != nil {
		t.Fatalf("AddOption(%q) error = %v", decl, err)
	}
	o := NewOption(decl, "", p, false, false)
	f.params[o.FullName()] = p
}

// newFixture declares the sample layout used throughout the tests and seals
// the registry.
func newFixture(t *testing.T, opts ...Opt) *fixture {
	t.Helper()
	f := newBareFixture(opts...)
	po := f.po
	mustNil(t, po.AddSection(NewSection("", "Global options", "global options", false, false)))
	mustNil(t, po.AddSectionNamed("server", "Server options"))
	mustNil(t, po.AddSectionNamed("database", "Database options"))
	mustNil(t, po.AddHiddenSection("debugging", "Debugging options"))
	mustNil(t, po.AddObsoleteSection("y2kbug"))

	f.add(t, "--quiet,-q", flagParam())
	f.add(t, "--no-server", flagParam())
	f.add(t, "--configuration,-c", valueParam("<string>", ""))
	f.add(t, "--server.endpoints,-e", valueParam("<string...>", ""))
	f.add(t, "--server.ports", valueParam("<port number...>", ""))
	f.add(t, "--server.int32-value", valueParam("<int32>", "1"))
	f.add(t, "--server.uint32-value", valueParam("<uint32>", "0"))
	bounded := valueParam("<uint32>", "99")
	bounded.reject = "1"
	f.add(t, "--server.bounded-value", bounded)
	f.add(t, "--database.journal-size", valueParam("<uint32>", "16777216"))
	f.add(t, "--database.wait-for-sync", flagParam())
	f.add(t, "--debugging.crash-me", flagParam())
	mustNil(t, po.AddObsoleteOption("--debugging.not-used-anymore", "whatever (obsolete)"))
	po.Seal()
	return f
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func (f *fixture) failureKinds() []FailureKind {
	var kinds []FailureKind
	for _, fl := range f.po.ProcessingResult().Failures() {
		kinds = append(kinds, fl.Kind)
	}
	return kinds
}
