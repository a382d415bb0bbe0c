// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the flag definitions of the optcheck command.
package cli

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/progopts/pkg/ftdetect"
)

// CheckFlags are the flags accepted by optcheck.
type CheckFlags struct {
	Format    ftdetect.FileType
	EnvPrefix string
	Dump      bool
	Help      bool
}

type checkFlagsParsed struct {
	Format    string `flag:"format" short:"f" default:"auto" help:"Config file format: auto, ini, toml or yaml"`
	EnvPrefix string `flag:"env-prefix" short:"e" help:"Also apply environment variables starting with this prefix"`
	Dump      bool   `flag:"dump" short:"d" help:"Print the options that were set, in env file format"`
	Help      bool   `flag:"help" short:"h" help:"Show this help"`
}

// ParseCheck parses the optcheck command line, without the program name.
// It returns the flags and the config files to check. Everything after "--"
// is taken as a file name.
func ParseCheck(args []string) (CheckFlags, []string, error) {
	parseArgs, extraArgs := splitArgsAtDoubleDash(args)
	parsed, err := parseFlags[checkFlagsParsed](parseArgs)
	if err != nil {
		return CheckFlags{}, nil, err
	}
	format, err := ftdetect.ParseFileType(parsed.Flags.Format)
	if err != nil {
		return CheckFlags{}, nil, &yargs.FlagValueError{
			FlagName:  "format",
			FieldName: "Format",
			Value:     parsed.Flags.Format,
			UserMsg:   err.Error(),
			Err:       err,
		}
	}
	flags := CheckFlags{
		Format:    format,
		EnvPrefix: parsed.Flags.EnvPrefix,
		Dump:      parsed.Flags.Dump,
		Help:      parsed.Flags.Help,
	}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

// CheckUsage returns the help text of optcheck.
func CheckUsage(prog string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [flags] FILE...\n\n", prog)
	b.WriteString("Validates config files against the demo option schema.\n\nFlags:\n")
	for _, f := range flagHelp(checkFlagsParsed{}) {
		fmt.Fprintf(&b, "  %-24s %s\n", f.names, f.help)
	}
	return b.String()
}

type parsedFlags[T any] struct {
	Flags T
	Args  []string
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut}, nil
}

func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

type flagLine struct {
	names string
	help  string
}

// flagHelp describes the flags of a yargs flag struct, in field order.
func flagHelp(v any) []flagLine {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var lines []flagLine
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		names := "--" + name
		if short := field.Tag.Get("short"); short != "" {
			names = "-" + short + ", " + names
		}
		if consumesValue(field.Type) {
			names += " " + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		}
		help := field.Tag.Get("help")
		if def := field.Tag.Get("default"); def != "" {
			help += " (default: " + def + ")"
		}
		lines = append(lines, flagLine{names: names, help: help})
	}
	return lines
}

func consumesValue(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return false
	default:
		return true
	}
}

func RequireArgsAtLeast(subcmd string, args []string, count int) error {
	if len(args) < count {
		return fmt.Errorf("'%s' requires at least %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
