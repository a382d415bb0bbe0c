// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"strconv"
	"strings"
)

var errInvalidBool = errors.New("invalid value. expecting 'true' or 'false'")

// Boolean stores a bool.
type Boolean struct {
	ptr      *bool
	required bool
}

// NewBoolean returns a Boolean storing into ptr. Unless required is set the
// option acts as a flag: giving it without a value sets it to true.
func NewBoolean(ptr *bool, required bool) *Boolean {
	return &Boolean{ptr: ptr, required: required}
}

func (b *Boolean) Set(value string) error {
	if value == "" && !b.required {
		*b.ptr = true
		return nil
	}
	switch strings.ToLower(value) {
	case "true", "on", "yes", "1":
		*b.ptr = true
	case "false", "off", "no", "0":
		*b.ptr = false
	default:
		return errInvalidBool
	}
	return nil
}

func (b *Boolean) RequiresValue() bool { return b.required }
func (b *Boolean) TypeName() string    { return "boolean" }
func (b *Boolean) ValueString() string { return strconv.FormatBool(*b.ptr) }

func (b *Boolean) TypeDescription() string {
	if !b.required {
		return ""
	}
	return describe(b.TypeName())
}
