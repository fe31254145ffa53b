package lint

import "strings"

// maxSuggestDistance bounds how far a misspelling may be from a canonical
// key before no suggestion is offered.
const maxSuggestDistance = 3

// closestKey returns the canonical key nearest to the unknown key by edit
// distance, or "" when nothing is close enough to be a plausible typo.
//
// The Levenshtein computation is inlined here: the checked sets are a
// handful of short keys, so a dependency would buy nothing.
func closestKey(unknown string, known []string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1

	needle := strings.ToUpper(unknown)
	for _, key := range known {
		if d := editDistance(needle, strings.ToUpper(key)); d < bestDistance {
			best = key
			bestDistance = d
		}
	}

	return best
}

func editDistance(a, b string) int {
	if a == b {
		return 0
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
