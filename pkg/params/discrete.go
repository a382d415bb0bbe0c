// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"slices"
	"strings"
)

// Discrete restricts another parameter to a fixed list of values.
type Discrete struct {
	Typed
	allowed []string
}

// NewDiscrete returns a parameter that accepts only the allowed values and
// stores them through inner.
func NewDiscrete(inner Typed, allowed ...string) *Discrete {
	return &Discrete{Typed: inner, allowed: allowed}
}

func (d *Discrete) Set(value string) error {
	if !slices.Contains(d.allowed, value) {
		return fmt.Errorf("invalid value '%s'. allowed values: %s", value, strings.Join(d.allowed, ", "))
	}
	return d.Typed.Set(value)
}

func (d *Discrete) RawValue() string { return rawValue(d.Typed) }
