// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The optcheck command validates config files against the progopts demo
// schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/progopts/pkg/cli"
	"github.com/yeetrun/progopts/pkg/demoopts"
	"github.com/yeetrun/progopts/pkg/env"
	"github.com/yeetrun/progopts/pkg/options"
	"github.com/yeetrun/progopts/pkg/optsource"
)

const progname = "optcheck"

func main() {
	log.SetFlags(0)
	log.SetPrefix(progname + ": ")
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer, opts ...options.Opt) int {
	flags, files, err := cli.ParseCheck(args)
	if err != nil {
		var valueErr *yargs.FlagValueError
		if errors.As(err, &valueErr) {
			log.Printf("invalid value for --%s: %v", valueErr.FlagName, valueErr.UserMsg)
		} else {
			log.Printf("%v", err)
		}
		fmt.Fprint(stderr, cli.CheckUsage(progname))
		return 2
	}
	if flags.Help {
		fmt.Fprint(stdout, cli.CheckUsage(progname))
		return 0
	}
	if err := cli.RequireArgsAtLeast(progname, files, 1); err != nil {
		log.Printf("%v", err)
		fmt.Fprint(stderr, cli.CheckUsage(progname))
		return 2
	}

	ok := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)

	code := 0
	for _, file := range files {
		po := demoopts.New(progname, demoopts.Defaults(), append([]options.Opt{options.WithOutput(stdout, stderr)}, opts...)...)
		if flags.EnvPrefix != "" && !env.Apply(po, flags.EnvPrefix, environ) {
			fail.Fprintf(stdout, "FAIL %s\n", file)
			code = 1
			continue
		}
		if !optsource.ParseFile(po, file, flags.Format) {
			fail.Fprintf(stdout, "FAIL %s\n", file)
			code = 1
			continue
		}
		ok.Fprintf(stdout, "OK   %s\n", file)
		if flags.Dump {
			prefix := flags.EnvPrefix
			if prefix == "" {
				prefix = "PROGOPTS"
			}
			if err := env.Write(stdout, prefix, po, true); err != nil {
				log.Printf("failed to dump %s: %v", file, err)
				code = 1
			}
		}
	}
	return code
}
