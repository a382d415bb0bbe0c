// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The progopts command is a demo server front end. It parses its command
// line, an optional config file and PROGOPTS_* environment variables, then
// prints what it found.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/yeetrun/progopts/pkg/demoopts"
	"github.com/yeetrun/progopts/pkg/env"
	"github.com/yeetrun/progopts/pkg/ftdetect"
	"github.com/yeetrun/progopts/pkg/options"
	"github.com/yeetrun/progopts/pkg/optsource"
)

const envPrefix = "PROGOPTS"

func main() {
	os.Exit(run(os.Args, os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer, opts ...options.Opt) int {
	progname := "progopts"
	if len(args) > 0 {
		progname = filepath.Base(args[0])
	}
	v := demoopts.Defaults()
	po := demoopts.New(progname, v, append([]options.Opt{options.WithOutput(stdout, stderr)}, opts...)...)

	parser := options.NewArgumentParser(po)
	if section := parser.HelpSection(args); section != "" {
		po.PrintHelp(section)
		return 0
	}

	if !env.Apply(po, envPrefix, environ) {
		return 1
	}

	fmt.Fprint(stdout, "Parsing command-line options...\n\n")
	if !parser.Parse(args) {
		return 1
	}
	if po.ProcessingResult().Touched("version") {
		fmt.Fprintf(stdout, "Version: %s\n\n", demoopts.Version)
		return 0
	}

	if v.ConfigFile != "" {
		fmt.Fprintf(stdout, "Parsing config file '%s'...\n\n", v.ConfigFile)
		if !optsource.ParseFile(po, v.ConfigFile, ftdetect.Unknown) {
			return 1
		}
	}

	color.New(color.FgGreen).Fprint(stdout, "Options parsed successfully\n\n")

	positionals := po.ProcessingResult().Positionals()
	fmt.Fprintf(stdout, "Positional arguments (%d):\n", len(positionals))
	for _, p := range positionals {
		fmt.Fprintf(stdout, "- positional: '%s'\n", p)
	}
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Touched options:")
	po.Walk(func(s *options.Section, o *options.Option) {
		fmt.Fprintf(stdout, "- section: '%s', option: '%s', full name: '%s', type: '%s', value: '%s'\n",
			s.Name, o.Name, o.DisplayName(), o.Parameter.TypeDescription(), o.Parameter.ValueString())
	}, true)
	fmt.Fprintln(stdout)
	return 0
}
