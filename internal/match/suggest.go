package match

import (
	"slices"
	"strings"
)

// Closest returns the candidate nearest to name, compared case-insensitively.
// Candidates further than a third of name's length (at least 2 edits) are
// not offered; ties go to the lexically smallest candidate.
func Closest(name string, candidates []string) (string, bool) {
	limit := max(2, len(name)/3)
	key := strings.ToLower(name)

	best, bestDist := "", limit+1

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	for _, c := range sorted {
		if d := Levenshtein(key, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

// Hint formats the closest candidate as a "did you mean" suffix, or "".
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok && c != name {
		return " (did you mean " + c + "?)"
	}

	return ""
}
