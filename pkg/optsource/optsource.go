// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optsource applies TOML and YAML config files to a ProgramOptions.
//
// Both formats map onto the same two-level layout as the INI format: a
// top-level table or mapping is a section and its keys are options, while
// top-level scalars are global options. Lists apply each element in turn.
// Values go through ProgramOptions.SetValue, so validation, touching and
// failure reporting behave exactly as for the other sources.
package optsource

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yeetrun/progopts/pkg/codecutil"
	"github.com/yeetrun/progopts/pkg/ftdetect"
	"github.com/yeetrun/progopts/pkg/options"
)

// ParseFile applies the config file at path. If ft is ftdetect.Unknown the
// format is detected from the file. It returns false on the first failure.
func ParseFile(po *options.ProgramOptions, path string, ft ftdetect.FileType) bool {
	if _, err := os.Stat(path); err != nil {
		return po.Fail(options.ConfigFile(path, 0), options.IOFailure, "unable to open file")
	}
	if ft == ftdetect.Unknown {
		detected, err := ftdetect.DetectFile(path)
		if err != nil {
			return po.Fail(options.ConfigFile(path, 0), options.IOFailure, "unable to detect file format: "+err.Error())
		}
		ft = detected
	}

	if ft == ftdetect.INI {
		return options.NewIniFileParser(po).Parse(path)
	}

	rc, err := codecutil.Open(path)
	if err != nil {
		return po.Fail(options.ConfigFile(path, 0), options.IOFailure, "unable to open file")
	}
	defer rc.Close()

	switch ft {
	case ftdetect.TOML:
		return ParseTOML(po, path, rc)
	case ftdetect.YAML:
		return ParseYAML(po, path, rc)
	}
	return po.Fail(options.ConfigFile(path, 0), options.IOFailure, fmt.Sprintf("unsupported file format %v", ft))
}

// qualify returns the full option name for key read inside section. Keys
// that already carry a section are used verbatim.
func qualify(section, key string) string {
	if section == "" {
		return key
	}
	if s, _ := options.SplitName(key); s != "" {
		return key
	}
	return section + "." + key
}

// scalarString formats a decoded TOML scalar the way it would be written on
// the command line.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}
