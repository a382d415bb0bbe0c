// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewReplacesProgName(t *testing.T) {
	f := newBareFixture()
	f.po.PrintUsage()
	want := "Usage: arangod [<options>] <database-directory>\n\n"
	if got := f.stdout.String(); got != want {
		t.Errorf("PrintUsage() = %q, want %q", got, want)
	}
	if got := f.po.ProgName(); got != "arangod" {
		t.Errorf("ProgName() = %q, want %q", got, "arangod")
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		name    string
		declare func(po *ProgramOptions) error
		want    error
	}{
		{
			name: "unknown section",
			declare: func(po *ProgramOptions) error {
				return po.AddOption("--nowhere.value", "", flagParam())
			},
			want: ErrUnknownSection,
		},
		{
			name: "duplicate shorthand",
			declare: func(po *ProgramOptions) error {
				if err := po.AddOption("--server.threads,-q", "", flagParam()); err != nil {
					return err
				}
				return po.AddOption("--quiet,-q", "", flagParam())
			},
			want: ErrDuplicateShorthand,
		},
		{
			name: "option after seal",
			declare: func(po *ProgramOptions) error {
				po.Seal()
				return po.AddOption("--server.threads", "", flagParam())
			},
			want: ErrSealed,
		},
		{
			name: "section after seal",
			declare: func(po *ProgramOptions) error {
				po.Seal()
				return po.AddSectionNamed("cluster", "Cluster options")
			},
			want: ErrSealed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBareFixture()
			mustNil(t, f.po.AddSection(NewSection("", "Global options", "", false, false)))
			mustNil(t, f.po.AddSectionNamed("server", "Server options"))
			err := tt.declare(f.po)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not a *ConfigError", err)
			}
			if f.po.ProcessingResult().Failed() {
				t.Errorf("declaration error set the failed flag")
			}
		})
	}
}

func TestSealTwice(t *testing.T) {
	f := newBareFixture()
	if f.po.Sealed() {
		t.Fatalf("Sealed() = true before Seal")
	}
	f.po.Seal()
	f.po.Seal()
	if !f.po.Sealed() {
		t.Errorf("Sealed() = false after Seal")
	}
}

func TestSectionsSorted(t *testing.T) {
	f := newFixture(t)
	var got []string
	for _, s := range f.po.Sections() {
		got = append(got, s.Name)
	}
	want := []string{"", "database", "debugging", "server", "y2kbug"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sections() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValue(t *testing.T) {
	f := newFixture(t)
	po := f.po
	origin := CommandLine()

	if !po.SetValue(origin, "server.ports", "8080") {
		t.Fatalf("SetValue(server.ports) = false")
	}
	if !po.SetValue(origin, "--server.ports", "9090") {
		t.Fatalf("SetValue(--server.ports) = false")
	}
	if diff := cmp.Diff([]string{"8080", "9090"}, f.params["server.ports"].sets); diff != "" {
		t.Errorf("server.ports values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"server.ports"}, po.ProcessingResult().TouchedNames()); diff != "" {
		t.Errorf("TouchedNames() mismatch (-want +got):\n%s", diff)
	}
	if po.ProcessingResult().Failed() {
		t.Errorf("Failed() = true after valid assignments")
	}
}

func TestSetValueObsolete(t *testing.T) {
	f := newFixture(t)
	po := f.po
	origin := ConfigFile("arangod.conf", 3)

	if !po.SetValue(origin, "y2kbug.foobar", "anything") {
		t.Errorf("SetValue in obsolete section = false, want true")
	}
	if po.ProcessingResult().Touched("y2kbug.foobar") {
		t.Errorf("option in obsolete section was touched")
	}
	if !po.SetValue(origin, "debugging.not-used-anymore", "1") {
		t.Errorf("SetValue of obsolete option = false, want true")
	}
	if !po.ProcessingResult().Touched("debugging.not-used-anymore") {
		t.Errorf("obsolete option was not touched")
	}
	if po.ProcessingResult().Failed() {
		t.Errorf("Failed() = true after obsolete assignments")
	}
	if f.stderr.Len() != 0 {
		t.Errorf("unexpected report: %q", f.stderr.String())
	}
}

func TestSetValueFailures(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		value   string
		kind    FailureKind
		message string
	}{
		{
			name:    "unknown option",
			option:  "server.nope",
			value:   "1",
			kind:    UnknownOption,
			message: "unknown option 'server.nope'",
		},
		{
			name:    "unknown section",
			option:  "cluster.agency",
			value:   "1",
			kind:    UnknownOption,
			message: "unknown option 'cluster.agency'",
		},
		{
			name:    "rejected value",
			option:  "server.bounded-value",
			value:   "1",
			kind:    InvalidValue,
			message: "error setting value for option 'server.bounded-value': value rejected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			origin := ConfigFile("arangod.conf", 7)
			if f.po.SetValue(origin, tt.option, tt.value) {
				t.Fatalf("SetValue(%q, %q) = true, want false", tt.option, tt.value)
			}
			res := f.po.ProcessingResult()
			if !res.Failed() {
				t.Errorf("Failed() = false")
			}
			if res.Touched(tt.option) {
				t.Errorf("failed option %q was touched", tt.option)
			}
			failures := res.Failures()
			if len(failures) != 1 {
				t.Fatalf("len(Failures()) = %d, want 1", len(failures))
			}
			if got := failures[0].Kind; got != tt.kind {
				t.Errorf("Kind = %v, want %v", got, tt.kind)
			}
			if got := failures[0].Message; got != tt.message {
				t.Errorf("Message = %q, want %q", got, tt.message)
			}
			if got := failures[0].Origin; got != origin {
				t.Errorf("Origin = %v, want %v", got, origin)
			}
			wantHeader := "Error while processing config file 'arangod.conf', line #7:\n  " + tt.message + "\n"
			if got := f.stderr.String(); !strings.HasPrefix(got, wantHeader) {
				t.Errorf("report = %q, want prefix %q", got, wantHeader)
			}
		})
	}
}

func TestFailureReportToBufferIsPlain(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	var stdout, stderr bytes.Buffer
	po := New("arangod", "Usage: #progname#", "More:", WithOutput(&stdout, &stderr))
	po.Fail(CommandLine(), InvalidValue, "bad value")
	want := "Error while processing command-line options:\n  bad value\n\n"
	if got := stderr.String(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestFailedIsSticky(t *testing.T) {
	f := newFixture(t)
	po := f.po
	po.SetValue(CommandLine(), "server.nope", "1")
	if !po.SetValue(CommandLine(), "server.ports", "8080") {
		t.Fatalf("SetValue after failure = false")
	}
	if !po.ProcessingResult().Failed() {
		t.Errorf("Failed() was reset by a later success")
	}
}

func TestRequire(t *testing.T) {
	f := newFixture(t)
	po := f.po
	if !po.Require(CommandLine(), "server.ports") {
		t.Errorf("Require(server.ports) = false")
	}
	if po.Require(CommandLine(), "y2kbug.foobar") {
		t.Errorf("Require(y2kbug.foobar) = true, want false")
	}
	if diff := cmp.Diff([]FailureKind{UnknownOption}, f.failureKinds()); diff != "" {
		t.Errorf("failures mismatch (-want +got):\n%s", diff)
	}
}

func TestRequiresValue(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		want bool
	}{
		{"server.ports", true},
		{"--server.ports", true},
		{"quiet", false},
		{"server.nope", false},
		{"debugging.not-used-anymore", false},
	}
	for _, tt := range tests {
		if got := f.po.RequiresValue(tt.name); got != tt.want {
			t.Errorf("RequiresValue(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTranslateShorthand(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		in, want string
	}{
		{"e", "server.endpoints"},
		{"q", "quiet"},
		{"c", "configuration"},
		{"z", "z"},
	}
	for _, tt := range tests {
		if got := f.po.TranslateShorthand(tt.in); got != tt.want {
			t.Errorf("TranslateShorthand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	p, ok := Get[*fakeParam](f.po, "server.ports")
	if !ok || p != f.params["server.ports"] {
		t.Errorf("Get[*fakeParam](server.ports) = %v, %v", p, ok)
	}
	if _, ok := Get[ObsoleteParameter](f.po, "server.ports"); ok {
		t.Errorf("Get with wrong type succeeded")
	}
	if _, ok := Get[*fakeParam](f.po, "server.nope"); ok {
		t.Errorf("Get of unknown option succeeded")
	}
}

func TestWalk(t *testing.T) {
	f := newFixture(t)
	f.po.SetValue(CommandLine(), "server.ports", "8080")
	f.po.SetValue(CommandLine(), "quiet", "")
	f.po.SetValue(CommandLine(), "debugging.not-used-anymore", "")

	collect := func(onlyTouched bool) []string {
		var names []string
		f.po.Walk(func(_ *Section, o *Option) {
			names = append(names, o.FullName())
		}, onlyTouched)
		return names
	}

	wantAll := []string{
		"configuration", "no-server", "quiet",
		"database.journal-size", "database.wait-for-sync",
		"debugging.crash-me",
		"server.bounded-value", "server.endpoints", "server.int32-value", "server.ports", "server.uint32-value",
	}
	if diff := cmp.Diff(wantAll, collect(false)); diff != "" {
		t.Errorf("Walk(all) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"quiet", "server.ports"}, collect(true)); diff != "" {
		t.Errorf("Walk(touched) mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintHelp(t *testing.T) {
	f := newBareFixture()
	po := f.po
	mustNil(t, po.AddSection(NewSection("", "Global options", "global options", false, false)))
	mustNil(t, po.AddSectionNamed("server", "Server options"))
	mustNil(t, po.AddHiddenSection("debugging", "Debugging options"))
	mustNil(t, po.AddOption("--quiet,-q", "be quiet", flagParam()))
	mustNil(t, po.AddOption("--server.port", "listen port", valueParam("<port>", "8529")))
	mustNil(t, po.AddHiddenOption("--server.secret", "hidden", valueParam("<a-very-long-type-name>", "")))
	mustNil(t, po.AddOption("--debugging.crash-me", "crash", flagParam()))
	po.Seal()

	line := func(name, text string) string {
		return "  " + name + strings.Repeat(" ", 20-len(name)) + "   " + text + "\n"
	}
	usage := "Usage: arangod [<options>] <database-directory>\n\n"
	global := "Section 'global options' (Global options)\n" +
		line("--quiet ", "be quiet") + "\n"
	server := "Section 'server' (Server options)\n" +
		line("--server.port <port>", "listen port (default: 8529)") + "\n"
	more := "For more information use: --help-server\n"

	tests := []struct {
		section string
		want    string
	}{
		{AllSections, usage + global + server + more},
		{"server", usage + server + more},
		{"debugging", usage + more},
		{"nope", usage + more},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			f.stdout.Reset()
			po.PrintHelp(tt.section)
			if diff := cmp.Diff(tt.want, f.stdout.String()); diff != "" {
				t.Errorf("PrintHelp(%q) mismatch (-want +got):\n%s", tt.section, diff)
			}
		})
	}
}
