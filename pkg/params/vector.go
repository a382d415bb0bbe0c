// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "strings"

// Vector stores a list of values. Each Set validates the value with an
// element parameter and appends it.
type Vector[T any] struct {
	ptr     *[]T
	newElem func(*T) Typed
}

// NewVector returns a Vector appending to ptr. newElem builds the parameter
// used to validate a single element, e.g. NewString.
func NewVector[T any, P Typed](ptr *[]T, newElem func(*T) P) *Vector[T] {
	return &Vector[T]{ptr: ptr, newElem: func(v *T) Typed { return newElem(v) }}
}

func (v *Vector[T]) Set(value string) error {
	var elem T
	if err := v.newElem(&elem).Set(value); err != nil {
		return err
	}
	*v.ptr = append(*v.ptr, elem)
	return nil
}

func (v *Vector[T]) RequiresValue() bool { return true }

func (v *Vector[T]) TypeName() string {
	var elem T
	return v.newElem(&elem).TypeName() + "..."
}

func (v *Vector[T]) TypeDescription() string { return describe(v.TypeName()) }

func (v *Vector[T]) ValueString() string {
	parts := make([]string, 0, len(*v.ptr))
	for i := range *v.ptr {
		parts = append(parts, v.newElem(&(*v.ptr)[i]).ValueString())
	}
	return strings.Join(parts, ", ")
}

// RawValues returns every element in a form Set accepts.
func (v *Vector[T]) RawValues() []string {
	values := make([]string, 0, len(*v.ptr))
	for i := range *v.ptr {
		values = append(values, rawValue(v.newElem(&(*v.ptr)[i])))
	}
	return values
}
