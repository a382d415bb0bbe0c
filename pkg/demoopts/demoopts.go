// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demoopts declares the sample option schema shared by the progopts
// and optcheck commands.
package demoopts

import (
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/yeetrun/progopts/pkg/options"
	"github.com/yeetrun/progopts/pkg/params"
	"tailscale.com/util/must"
)

// Version is printed for --version.
const Version = "0.01"

// Usage is the usage line of the demo program.
const Usage = "Usage: " + options.ProgName + " [<options>] <database-directory>"

// More introduces the list of per-section help options.
const More = "For more information use:"

// LogLevels are the values accepted by --log.level.
var LogLevels = []string{"fatal", "error", "warning", "info", "debug", "trace"}

// Values holds every setting of the demo schema.
type Values struct {
	ConfigFile string
	Quiet      bool
	NoServer   bool

	Endpoints        []string
	Ports            []uint16
	Int32            int32
	UInt32           uint32
	Bounded          uint32
	RequestTimeout   time.Duration
	ServerID         uuid.UUID
	MinClientVersion *semver.Version

	JournalSize uint32
	WaitForSync bool

	LogLevel string

	CrashMe bool
}

// Defaults returns the values used when nothing is configured.
func Defaults() *Values {
	return &Values{
		Endpoints:      []string{"tcp://127.0.0.1:80", "ssl://192.168.0.1:443"},
		Ports:          []uint16{8529, 16384},
		Int32:          1,
		Bounded:        99,
		RequestTimeout: 30 * time.Second,
		JournalSize:    16 * 1024 * 1024,
		LogLevel:       "info",
	}
}

// New returns a sealed registry with the demo schema bound to v.
func New(progname string, v *Values, opts ...options.Opt) *options.ProgramOptions {
	po := options.New(progname, Usage, More, opts...)

	// global (unnamed section)
	must.Do(po.AddSection(options.NewSection("", "Global options description goes here", "global options", false, false)))
	must.Do(po.AddOption("--quiet,-q", "tell the server to be quiet", params.NewBoolean(&v.Quiet, false)))
	must.Do(po.AddOption("--no-server", "don't start server at all", params.NewBoolean(&v.NoServer, false)))
	must.Do(po.AddOption("--configuration,-c", "parse configuration file", params.NewString(&v.ConfigFile)))
	must.Do(po.AddOption("--version", "prints version information", options.ObsoleteParameter{}))

	must.Do(po.AddSectionNamed("server", "Server options description goes here"))
	must.Do(po.AddOption("--server.endpoints,-e", "server endpoints", params.NewVector(&v.Endpoints, params.NewString)))
	must.Do(po.AddOption("--server.ports", "the server ports", params.NewVector(&v.Ports, params.NewPort)))
	must.Do(po.AddOption("--server.int32-value", "an int32 value", params.NewInt32(&v.Int32)))
	must.Do(po.AddOption("--server.uint32-value", "a uint32 value", params.NewUInt32(&v.UInt32)))
	must.Do(po.AddOption("--server.bounded-value", "a bounded uint32 value", params.NewBounded(params.NewUInt32(&v.Bounded), 42, 8193)))
	must.Do(po.AddOption("--server.request-timeout", "maximal time to wait for a request", params.NewDuration(&v.RequestTimeout)))
	must.Do(po.AddOption("--server.id", "unique id of this server", params.NewUUID(&v.ServerID)))
	must.Do(po.AddOption("--server.min-client-version", "oldest client version that may connect", params.NewVersion(&v.MinClientVersion)))

	must.Do(po.AddSectionNamed("database", "Database options description goes here"))
	must.Do(po.AddOption("--database.journal-size", "maximal journal size", params.NewUInt32(&v.JournalSize)))
	must.Do(po.AddOption("--database.wait-for-sync", "wait for sync description", params.NewBoolean(&v.WaitForSync, false)))

	must.Do(po.AddSectionNamed("log", "Logging options"))
	must.Do(po.AddOption("--log.level", "log level", params.NewDiscrete(params.NewString(&v.LogLevel), LogLevels...)))

	// options in this section can be used but are not shown
	must.Do(po.AddHiddenSection("debugging", "Debugging options description goes here"))
	must.Do(po.AddOption("--debugging.crash-me", "whatever (option can still be used but it is not shown)", params.NewBoolean(&v.CrashMe, false)))
	must.Do(po.AddObsoleteOption("--debugging.not-used-anymore", "whatever (obsolete)"))

	// all options in this section do nothing
	must.Do(po.AddObsoleteSection("y2kbug"))

	po.Seal()
	return po
}
