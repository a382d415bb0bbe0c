// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"

	"github.com/yeetrun/progopts/pkg/tui"
)

// Fail reports a problem with user input that occurred at origin. It prints
// the message, records the failure and sets the failed flag. It always
// returns false, so parsers can write "return po.Fail(...)".
func (po *ProgramOptions) Fail(origin Origin, kind FailureKind, message string) bool {
	return po.fail(Failure{Kind: kind, Origin: origin, Message: message})
}

func (po *ProgramOptions) fail(f Failure) bool {
	fmt.Fprintf(po.stderr, "%s\n", po.color.Wrap(tui.ColorRed, "Error while processing "+f.Origin.String()+":"))
	fmt.Fprintf(po.stderr, "  %s\n\n", f.Message)
	if len(f.Suggestions) > 0 {
		fmt.Fprintln(po.stderr, po.color.Wrap(tui.ColorYellow, "Did you mean one of these?"))
		for _, s := range f.Suggestions {
			fmt.Fprintf(po.stderr, "  %s\n", s)
		}
		fmt.Fprintln(po.stderr)
	}
	po.result.addFailure(f)
	return false
}

func (po *ProgramOptions) unknownOption(origin Origin, name string) bool {
	return po.fail(Failure{
		Kind:        UnknownOption,
		Origin:      origin,
		Message:     "unknown option '" + name + "'",
		Suggestions: po.Similar(name, suggestCutoff, suggestMax),
	})
}
