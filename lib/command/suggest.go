// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggestCommand returns the registered name closest to unknown, or ""
// if nothing is close enough. A name that contains the typed letters
// in order ("gret" in "greet") wins first; otherwise the smallest edit
// distance of at most 3 wins, which catches transpositions and
// substituted characters.
func suggestCommand(unknown string, names []string) string {
	if unknown == "" || len(names) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(unknown, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	bestName := ""
	bestDistance := 4 // threshold: only suggest if distance <= 3
	folded := strings.ToLower(unknown)
	for _, name := range names {
		distance := fuzzy.LevenshteinDistance(folded, strings.ToLower(name))
		if distance < bestDistance {
			bestDistance = distance
			bestName = name
		}
	}
	return bestName
}
