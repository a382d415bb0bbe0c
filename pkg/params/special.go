// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// Port range accepted by Port.
const (
	MinPort = 1024
	MaxPort = 65535
)

// Port stores an unprivileged TCP/UDP port number.
type Port struct {
	ptr *uint16
}

func NewPort(ptr *uint16) *Port {
	return &Port{ptr: ptr}
}

func (p *Port) Set(value string) error {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return errInvalidNumber
	}
	if v < MinPort || v > MaxPort {
		return fmt.Errorf("%w (port number must be between %d and %d)", errOutOfRange, MinPort, MaxPort)
	}
	*p.ptr = uint16(v)
	return nil
}

func (p *Port) RequiresValue() bool     { return true }
func (p *Port) TypeName() string        { return "port number" }
func (p *Port) TypeDescription() string { return describe(p.TypeName()) }
func (p *Port) ValueString() string     { return strconv.FormatUint(uint64(*p.ptr), 10) }

// Duration stores a time.Duration written as e.g. "1m30s".
type Duration struct {
	ptr *time.Duration
}

func NewDuration(ptr *time.Duration) *Duration {
	return &Duration{ptr: ptr}
}

func (d *Duration) Set(value string) error {
	v, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q", value)
	}
	*d.ptr = v
	return nil
}

func (d *Duration) RequiresValue() bool     { return true }
func (d *Duration) TypeName() string        { return "duration" }
func (d *Duration) TypeDescription() string { return describe(d.TypeName()) }
func (d *Duration) ValueString() string     { return d.ptr.String() }

// Version stores a semantic version.
type Version struct {
	ptr **semver.Version
}

func NewVersion(ptr **semver.Version) *Version {
	return &Version{ptr: ptr}
}

func (v *Version) Set(value string) error {
	ver, err := semver.NewVersion(value)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", value, err)
	}
	*v.ptr = ver
	return nil
}

func (v *Version) RequiresValue() bool     { return true }
func (v *Version) TypeName() string        { return "version" }
func (v *Version) TypeDescription() string { return describe(v.TypeName()) }

func (v *Version) ValueString() string {
	if *v.ptr == nil {
		return ""
	}
	return (*v.ptr).String()
}

// UUID stores a UUID in any of the textual forms uuid.Parse accepts.
type UUID struct {
	ptr *uuid.UUID
}

func NewUUID(ptr *uuid.UUID) *UUID {
	return &UUID{ptr: ptr}
}

func (u *UUID) Set(value string) error {
	id, err := uuid.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid uuid %q", value)
	}
	*u.ptr = id
	return nil
}

func (u *UUID) RequiresValue() bool     { return true }
func (u *UUID) TypeName() string        { return "uuid" }
func (u *UUID) TypeDescription() string { return describe(u.TypeName()) }
func (u *UUID) ValueString() string     { return u.ptr.String() }
