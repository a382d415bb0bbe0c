// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsource

import (
	"errors"
	"io"

	"github.com/yeetrun/progopts/pkg/options"
	"gopkg.in/yaml.v3"
)

// ParseYAML applies a YAML document read from r. name is used in failure
// messages, which carry the line of the offending node.
func ParseYAML(po *options.ProgramOptions, name string, r io.Reader) bool {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		return po.Fail(options.ConfigFile(name, 0), options.UnknownLineType, "invalid YAML: "+err.Error())
	}
	if len(doc.Content) == 0 {
		return true
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return po.Fail(options.ConfigFile(name, root.Line), options.UnknownLineType, "unknown line type")
	}
	y := &yamlParser{po: po, name: name}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind == yaml.MappingNode {
			if !y.section(key.Value, value) {
				return false
			}
			continue
		}
		if !y.apply(key.Value, value) {
			return false
		}
	}
	return true
}

type yamlParser struct {
	po   *options.ProgramOptions
	name string
}

func (y *yamlParser) section(section string, m *yaml.Node) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if value.Kind == yaml.MappingNode {
			return y.po.Fail(options.ConfigFile(y.name, value.Line), options.UnknownLineType, "unknown line type")
		}
		if !y.apply(qualify(section, key.Value), value) {
			return false
		}
	}
	return true
}

func (y *yamlParser) apply(option string, n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode:
		value := n.Value
		if n.Tag == "!!null" {
			value = ""
		}
		return y.po.SetValue(options.ConfigFile(y.name, n.Line), option, value)
	case yaml.SequenceNode:
		for _, elem := range n.Content {
			if elem.Kind != yaml.ScalarNode {
				return y.po.Fail(options.ConfigFile(y.name, elem.Line), options.UnknownLineType, "unknown line type")
			}
			if !y.apply(option, elem) {
				return false
			}
		}
		return true
	case yaml.AliasNode:
		return y.apply(option, n.Alias)
	}
	return y.po.Fail(options.ConfigFile(y.name, n.Line), options.UnknownLineType, "unknown line type")
}
