// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env maps program options to environment variables.
//
// The option "server.ports" with prefix "ARANGOD" is read from and written
// to ARANGOD_SERVER_PORTS. Options holding a list are written as one
// comma-separated value and split on "," when read, so the output of Write
// can be fed back to Apply as long as no element contains a comma.
package env

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yeetrun/progopts/pkg/options"
)

var nameReplacer = strings.NewReplacer("-", "_", ".", "_")

// rawValuer is implemented by parameters whose ValueString is meant for
// display, such as quoted strings.
type rawValuer interface {
	RawValue() string
}

// listValuer is implemented by parameters holding a list of values.
type listValuer interface {
	RawValues() []string
}

// VarName returns the environment variable name for the option with the
// given full name.
func VarName(prefix, fullName string) string {
	name := strings.ToUpper(nameReplacer.Replace(options.StripPrefix(fullName)))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(strings.TrimSuffix(prefix, "_")) + "_" + name
}

// Apply sets every option whose variable is present in environ, a list of
// "KEY=value" entries as returned by os.Environ. Later entries for the same
// key win. Variables that match no option are ignored. It returns false on
// the first failure.
func Apply(po *options.ProgramOptions, prefix string, environ []string) bool {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}

	var opts []*options.Option
	po.Walk(func(_ *options.Section, o *options.Option) {
		opts = append(opts, o)
	}, false)
	for _, o := range opts {
		variable := VarName(prefix, o.FullName())
		value, ok := vars[variable]
		if !ok {
			continue
		}
		values := []string{value}
		if _, ok := o.Parameter.(listValuer); ok {
			values = splitList(value)
		}
		for _, v := range values {
			if !po.SetValue(options.Environment(variable), o.FullName(), v) {
				return false
			}
		}
	}
	return true
}

// splitList splits a comma-separated list, dropping blanks around and
// between elements.
func splitList(value string) []string {
	var values []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// envValue renders the value of p so that Apply reads it back unchanged.
func envValue(p options.Parameter) string {
	switch p := p.(type) {
	case listValuer:
		return strings.Join(p.RawValues(), ",")
	case rawValuer:
		return p.RawValue()
	}
	return p.ValueString()
}

// Write writes the current option values as "KEY=value" lines that Apply
// accepts. With onlyTouched, options that were not set during processing
// are skipped. Options with an empty value are skipped.
func Write(w io.Writer, prefix string, po *options.ProgramOptions, onlyTouched bool) error {
	var err error
	po.Walk(func(_ *options.Section, o *options.Option) {
		if err != nil {
			return
		}
		if _, ok := o.Parameter.(options.ObsoleteParameter); ok {
			return
		}
		value := envValue(o.Parameter)
		if value == "" {
			return
		}
		_, err = fmt.Fprintf(w, "%s=%s\n", VarName(prefix, o.FullName()), value)
	}, onlyTouched)
	return err
}

// WriteFile writes an environment file with the given name, as Write does.
func WriteFile(name, prefix string, po *options.ProgramOptions, onlyTouched bool) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Write(f, prefix, po, onlyTouched); err != nil {
		return fmt.Errorf("failed to write env: %v", err)
	}
	return f.Close()
}
