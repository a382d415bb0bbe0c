// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "strconv"

// String stores any string value.
type String struct {
	ptr *string
}

func NewString(ptr *string) *String {
	return &String{ptr: ptr}
}

func (s *String) Set(value string) error {
	*s.ptr = value
	return nil
}

func (s *String) RequiresValue() bool     { return true }
func (s *String) TypeName() string        { return "string" }
func (s *String) TypeDescription() string { return describe(s.TypeName()) }
func (s *String) ValueString() string     { return strconv.Quote(*s.ptr) }

// RawValue returns the string without quotes.
func (s *String) RawValue() string { return *s.ptr }
