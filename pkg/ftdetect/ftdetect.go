// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ftdetect determines the format of a configuration file.
package ftdetect

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/progopts/pkg/codecutil"
	"gopkg.in/yaml.v3"
)

type FileType int

const (
	Unknown FileType = iota
	INI
	TOML
	YAML
)

func (ft FileType) String() string {
	switch ft {
	case INI:
		return "ini"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFileType parses a format name as accepted by --format. "auto" and ""
// yield Unknown, meaning the format should be detected.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Unknown, nil
	case "ini", "conf":
		return INI, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Unknown, fmt.Errorf("unknown file format %q", s)
}

// iniLine matches a line that only an INI file would contain.
var iniLine = regexp.MustCompile(`^[ \t]*(\[[-_A-Za-z0-9]*\]|[-_A-Za-z0-9.]+[ \t]*=.*)[ \t]*$`)

type file struct {
	path       string
	data       []byte
	compressed bool
}

// DetectFile reports the format of the config file at path. The file name
// decides when it has a known extension; otherwise the content is sniffed.
// zstd-compressed files are judged by their decompressed content and by
// their name without the ".zst" suffix.
func DetectFile(path string) (FileType, error) {
	f, err := newFile(path)
	if err != nil {
		return Unknown, err
	}
	return f.detect()
}

func newFile(path string) (*file, error) {
	raw, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	var header [4]byte
	n, err := io.ReadFull(raw, header[:])
	raw.Close()
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	rc, err := codecutil.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &file{path: path, data: data, compressed: codecutil.IsZstd(header[:n])}, nil
}

func (f *file) detect() (FileType, error) {
	if ft, ok := f.detectByName(); ok {
		return ft, nil
	}
	if f.detectYAML() {
		return YAML, nil
	}
	if f.detectTOML() {
		return TOML, nil
	}
	if f.detectINI() {
		return INI, nil
	}
	return Unknown, fmt.Errorf("unable to detect file type")
}

func (f *file) detectByName() (FileType, bool) {
	if f.path == "" {
		return Unknown, false
	}

	base := strings.ToLower(filepath.Base(f.path))
	if f.compressed {
		base = strings.TrimSuffix(strings.TrimSuffix(base, ".zst"), ".zstd")
	}
	switch filepath.Ext(base) {
	case ".conf", ".ini", ".cfg":
		return INI, true
	case ".toml":
		return TOML, true
	case ".yml", ".yaml":
		return YAML, true
	}
	return Unknown, false
}

// detectYAML checks for a non-empty top-level mapping.
func (f *file) detectYAML() bool {
	var doc map[string]any
	if err := yaml.Unmarshal(f.data, &doc); err != nil {
		return false
	}
	return len(doc) > 0
}

func (f *file) detectTOML() bool {
	var doc map[string]any
	if err := toml.Unmarshal(f.data, &doc); err != nil {
		return false
	}
	return len(doc) > 0
}

// detectINI accepts blank files and files with at least one section header
// or assignment line.
func (f *file) detectINI() bool {
	if len(bytes.TrimSpace(f.data)) == 0 {
		return true
	}
	sc := bufio.NewScanner(bytes.NewReader(f.data))
	for sc.Scan() {
		if iniLine.MatchString(sc.Text()) {
			return true
		}
	}
	return false
}
