package internal

import (
	"sort"
	"strings"
)

// Suggestion thresholds
const (
	SuggestMinDistance = 2
	SuggestHintPrefix  = ". Did you mean '"
	SuggestHintSuffix  = "'?"
)

// Suggest returns the candidate closest to target by case-insensitive edit
// distance. Candidates further than half the target length (at least
// SuggestMinDistance) are ignored. Ties keep candidate order.
func Suggest(target string, candidates []string) (string, bool) {
	limit := max(len(target)/2, SuggestMinDistance)
	needle := strings.ToLower(target)

	type match struct {
		name     string
		distance int
	}
	var matches []match
	for _, c := range candidates {
		if d := editDistance(needle, strings.ToLower(c)); d <= limit {
			matches = append(matches, match{name: c, distance: d})
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})
	return matches[0].name, true
}

// SuggestionHint formats a suggestion for appending to an error message.
func SuggestionHint(suggestion string) string {
	if suggestion == "" {
		return ""
	}
	return SuggestHintPrefix + suggestion + SuggestHintSuffix
}

// editDistance is the Levenshtein distance between a and b over bytes.
func editDistance(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
