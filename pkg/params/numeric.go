// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errInvalidNumber = errors.New("invalid numeric value")
	errOutOfRange    = errors.New("number out of range")
)

// Integer is the set of integer types a Numeric can store.
type Integer interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

// Numeric stores an integer of type T, rejecting values outside T's range.
type Numeric[T Integer] struct {
	ptr    *T
	name   string
	bits   int
	signed bool
}

func NewInt16(ptr *int16) *Numeric[int16] {
	return &Numeric[int16]{ptr: ptr, name: "int16", bits: 16, signed: true}
}

func NewInt32(ptr *int32) *Numeric[int32] {
	return &Numeric[int32]{ptr: ptr, name: "int32", bits: 32, signed: true}
}

func NewInt64(ptr *int64) *Numeric[int64] {
	return &Numeric[int64]{ptr: ptr, name: "int64", bits: 64, signed: true}
}

func NewUInt16(ptr *uint16) *Numeric[uint16] {
	return &Numeric[uint16]{ptr: ptr, name: "uint16", bits: 16}
}

func NewUInt32(ptr *uint32) *Numeric[uint32] {
	return &Numeric[uint32]{ptr: ptr, name: "uint32", bits: 32}
}

func NewUInt64(ptr *uint64) *Numeric[uint64] {
	return &Numeric[uint64]{ptr: ptr, name: "uint64", bits: 64}
}

func (n *Numeric[T]) parse(value string) (T, error) {
	var (
		v   T
		err error
	)
	if n.signed {
		var i int64
		i, err = strconv.ParseInt(value, 10, n.bits)
		v = T(i)
	} else {
		var u uint64
		u, err = strconv.ParseUint(value, 10, n.bits)
		v = T(u)
	}
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange
		}
		return 0, errInvalidNumber
	}
	return v, nil
}

func (n *Numeric[T]) Set(value string) error {
	v, err := n.parse(value)
	if err != nil {
		return err
	}
	*n.ptr = v
	return nil
}

func (n *Numeric[T]) RequiresValue() bool     { return true }
func (n *Numeric[T]) TypeName() string        { return n.name }
func (n *Numeric[T]) TypeDescription() string { return describe(n.name) }
func (n *Numeric[T]) ValueString() string     { return fmt.Sprint(*n.ptr) }

// Bounded is a Numeric that only accepts values in [min, max].
type Bounded[T Integer] struct {
	*Numeric[T]
	min, max T
}

// NewBounded restricts n to the inclusive range [min, max].
func NewBounded[T Integer](n *Numeric[T], min, max T) *Bounded[T] {
	return &Bounded[T]{Numeric: n, min: min, max: max}
}

func (b *Bounded[T]) Set(value string) error {
	v, err := b.parse(value)
	if err == nil && (v < b.min || v > b.max) {
		err = errOutOfRange
	}
	if errors.Is(err, errOutOfRange) {
		return fmt.Errorf("%w (must be between %v and %v)", errOutOfRange, b.min, b.max)
	}
	if err != nil {
		return err
	}
	*b.ptr = v
	return nil
}

// Double stores a float64.
type Double struct {
	ptr *float64
}

func NewDouble(ptr *float64) *Double {
	return &Double{ptr: ptr}
}

func (d *Double) Set(value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return errOutOfRange
		}
		return errInvalidNumber
	}
	*d.ptr = v
	return nil
}

func (d *Double) RequiresValue() bool     { return true }
func (d *Double) TypeName() string        { return "double" }
func (d *Double) TypeDescription() string { return describe(d.TypeName()) }
func (d *Double) ValueString() string     { return strconv.FormatFloat(*d.ptr, 'g', -1, 64) }
