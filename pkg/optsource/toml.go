// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsource

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/progopts/pkg/options"
)

// ParseTOML applies a TOML document read from r. name is used in failure
// messages. Keys are applied in document order.
func ParseTOML(po *options.ProgramOptions, name string, r io.Reader) bool {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return po.Fail(options.ConfigFile(name, line), options.UnknownLineType, "invalid TOML: "+err.Error())
	}

	origin := options.ConfigFile(name, 0)
	for _, key := range md.Keys() {
		var (
			option string
			value  any
		)
		switch len(key) {
		case 1:
			value = doc[key[0]]
			if _, ok := value.(map[string]any); ok {
				// A section header; its keys follow.
				continue
			}
			option = key[0]
		case 2:
			table, ok := doc[key[0]].(map[string]any)
			if !ok {
				return po.Fail(origin, options.UnknownLineType, fmt.Sprintf("unsupported TOML key '%s'", key))
			}
			value = table[key[1]]
			if _, ok := value.(map[string]any); ok {
				return po.Fail(origin, options.UnknownLineType, fmt.Sprintf("table nested too deeply at key '%s'", key))
			}
			option = qualify(key[0], key[1])
		default:
			return po.Fail(origin, options.UnknownLineType, fmt.Sprintf("table nested too deeply at key '%s'", key))
		}
		if !applyTOML(po, origin, option, value) {
			return false
		}
	}
	return true
}

func applyTOML(po *options.ProgramOptions, origin options.Origin, option string, value any) bool {
	if list, ok := value.([]any); ok {
		for _, elem := range list {
			if !applyTOML(po, origin, option, elem) {
				return false
			}
		}
		return true
	}
	s, ok := scalarString(value)
	if !ok {
		return po.Fail(origin, options.UnknownLineType, fmt.Sprintf("unsupported value for option '%s'", option))
	}
	return po.SetValue(origin, option, s)
}
