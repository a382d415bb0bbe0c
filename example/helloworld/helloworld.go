// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/yeetrun/progopts/pkg/options"
	"github.com/yeetrun/progopts/pkg/params"
	"tailscale.com/util/must"
)

func main() {
	name := "World"
	count := int32(0)
	interval := 2 * time.Second

	po := options.New(os.Args[0], "Usage: #progname# [<options>]", "For more information use:")
	must.Do(po.AddSection(options.NewSection("", "Greeting options", "global options", false, false)))
	must.Do(po.AddOption("--name,-n", "who to greet", params.NewString(&name)))
	must.Do(po.AddOption("--count", "number of greetings, 0 greets forever", params.NewInt32(&count)))
	must.Do(po.AddOption("--interval", "pause between greetings", params.NewDuration(&interval)))
	po.Seal()

	parser := options.NewArgumentParser(po)
	if section := parser.HelpSection(os.Args); section != "" {
		po.PrintHelp(section)
		return
	}
	if !parser.Parse(os.Args) {
		os.Exit(1)
	}

	for i := int32(0); count == 0 || i < count; i++ {
		println("Hello, " + name + "!")
		time.Sleep(interval)
	}
}
