// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options implements a registry of typed, hierarchically named program
// options together with the parsers that populate it.
//
// Options live in sections and are addressed by their full name,
// "section.name", or just "name" for the global (unnamed) section. Each option
// is bound to a Parameter that validates and stores its value.
//
// # Declaring options
//
//	po := options.New(os.Args[0], "Usage: #progname# [<options>]", "For more information use:")
//	must.Do(po.AddSectionNamed("server", "Server options"))
//	must.Do(po.AddOption("--server.endpoints,-e", "server endpoints", params.NewVector(&endpoints, params.NewString)))
//	po.Seal()
//
// Declaration mistakes (unknown section, duplicate shorthand, mutation after
// Seal) are returned as *ConfigError and are never reported through the
// parse failure channel.
//
// # Parsing
//
// Values are applied by ArgumentParser (command-line tokens) and IniFileParser
// (INI-style config files). Both funnel every assignment through
// ProgramOptions.SetValue, so validation and touch tracking are identical no
// matter where a value came from:
//
//	ap := options.NewArgumentParser(po)
//	if section := ap.HelpSection(os.Args); section != "" {
//	    po.PrintHelp(section)
//	    return
//	}
//	if !ap.Parse(os.Args) {
//	    os.Exit(1)
//	}
//
// Failures are printed to the registry's error writer together with the
// place they occurred, recorded in the ProcessingResult, and the failed flag
// is set for the rest of the run. Unknown option names come with up to four
// "did you mean" suggestions ranked by edit distance.
package options
