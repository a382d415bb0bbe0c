// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides the stock options.Parameter implementations. Each
// one stores into a variable owned by the caller.
package params

import "github.com/yeetrun/progopts/pkg/options"

// Typed is a Parameter that can name its value type. The name is used to
// build type descriptions, including those of vectors of the type.
type Typed interface {
	options.Parameter
	TypeName() string
}

// rawValue returns the value of p in a form its Set accepts. Parameters
// whose ValueString is decorated for display provide RawValue.
func rawValue(p options.Parameter) string {
	if r, ok := p.(interface{ RawValue() string }); ok {
		return r.RawValue()
	}
	return p.ValueString()
}

func describe(name string) string {
	return "<" + name + ">"
}
