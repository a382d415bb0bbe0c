// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"cmp"
	"slices"
)

// SimilarityFunc returns the distance between two option names. Smaller
// means more similar.
type SimilarityFunc func(a, b string) int

// Levenshtein returns the edit distance between a and b, counting rune
// insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

// Similar returns the display names of up to limit options whose full name is
// within cutoff of value, closest first. Options in obsolete sections and
// obsolete options are not considered; hidden ones are.
//
// Once two candidates have been accepted, the scan stops at the first
// candidate more than twice as far away as the previously accepted one.
func (po *ProgramOptions) Similar(value string, cutoff, limit int) []string {
	if po.similarity == nil {
		return nil
	}

	type candidate struct {
		distance int
		name     string
	}
	var candidates []candidate
	po.Walk(func(_ *Section, o *Option) {
		if o.FullName() == value {
			return
		}
		candidates = append(candidates, candidate{po.similarity(value, o.FullName()), o.DisplayName()})
	}, false)
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.distance, b.distance)
	})

	var result []string
	last := 0
	for _, c := range candidates {
		if len(result) >= 2 && c.distance > 2*last {
			break
		}
		if c.distance > cutoff {
			continue
		}
		result = append(result, c.name)
		if len(result) >= limit {
			break
		}
		last = c.distance
	}
	return result
}
