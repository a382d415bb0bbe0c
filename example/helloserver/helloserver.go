// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/yeetrun/progopts/pkg/env"
	"github.com/yeetrun/progopts/pkg/options"
	"github.com/yeetrun/progopts/pkg/params"
	"tailscale.com/util/must"
)

func main() {
	var (
		config   string
		port     = uint16(8080)
		greeting = "Hello, world!"
	)

	po := options.New(os.Args[0], "Usage: #progname# [<options>]", "For more information use:")
	must.Do(po.AddSection(options.NewSection("", "Global options", "global options", false, false)))
	must.Do(po.AddOption("--configuration,-c", "config file", params.NewString(&config)))
	must.Do(po.AddSectionNamed("server", "Server options"))
	must.Do(po.AddOption("--server.port", "port to listen on", params.NewPort(&port)))
	must.Do(po.AddOption("--server.greeting", "response body", params.NewString(&greeting)))
	po.Seal()

	parser := options.NewArgumentParser(po)
	if section := parser.HelpSection(os.Args); section != "" {
		po.PrintHelp(section)
		return
	}
	if !env.Apply(po, "HELLOSERVER", os.Environ()) || !parser.Parse(os.Args) {
		os.Exit(1)
	}
	if config != "" && !options.NewIniFileParser(po).Parse(config) {
		os.Exit(1)
	}

	log.Printf("listening on :%d", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/env" {
			env.Write(w, "HELLOSERVER", po, false)
			return
		}
		fmt.Fprintln(w, greeting)
	})))
}
