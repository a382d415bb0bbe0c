// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import "strings"

// wordwrap splits value into pieces of at most size bytes, preferring to
// break after a space, period or comma. A break point in the first half of
// the line is ignored in favor of a hard cut, so that no piece is tiny.
func wordwrap(value string, size int) []string {
	var result []string
	next := value
	if size > 0 {
		for len(next) > size {
			m := strings.LastIndexAny(next[:size], "., ")
			if m < 0 || m < size/2 {
				m = size
			} else {
				m++
			}
			result = append(result, next[:m])
			next = next[m:]
		}
	}
	return append(result, next)
}

// pad right-pads value with spaces to length, truncating longer values.
func pad(value string, length int) string {
	if len(value) >= length {
		return value[:length]
	}
	return value + strings.Repeat(" ", length-len(value))
}

func trimLeft(value string) string {
	return strings.TrimLeft(value, " \t\n\r")
}
