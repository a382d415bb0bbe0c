// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codecutil opens config files that may be stored zstd-compressed.
package codecutil

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// ZstdMagic is the frame header every zstd stream starts with.
var ZstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// IsZstd reports whether header starts with the zstd magic number.
func IsZstd(header []byte) bool {
	return len(header) >= len(ZstdMagic) && bytes.Equal(header[:len(ZstdMagic)], ZstdMagic)
}

// Open opens the file at path for reading. If its content is zstd-compressed
// the returned reader yields the decompressed bytes.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	header, err := br.Peek(len(ZstdMagic))
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !IsZstd(header) {
		return &readCloser{Reader: br, close: f.Close}, nil
	}
	decoder, err := zstd.NewReader(br)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &readCloser{Reader: decoder, close: func() error {
		decoder.Close()
		return f.Close()
	}}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error {
	return rc.close()
}

// ZstdCompress writes a zstd-compressed copy of src to dst.
func ZstdCompress(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dstFile.Close()

	encoder, err := zstd.NewWriter(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	if _, err := io.Copy(encoder, srcFile); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to compress file: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	return dstFile.Close()
}
