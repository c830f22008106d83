package match

// Levenshtein is the number of single-rune insertions, deletions and
// substitutions turning a into b.
func Levenshtein(a, b string) int {
	src, dst := []rune(a), []rune(b)
	if len(src) < len(dst) {
		src, dst = dst, src
	}

	// row[j] is the distance between the consumed prefix of src and dst[:j].
	row := make([]int, len(dst)+1)
	for j := range row {
		row[j] = j
	}

	for _, s := range src {
		diag := row[0]
		row[0]++

		for j, d := range dst {
			subst := diag
			if s != d {
				subst++
			}

			diag = row[j+1]
			row[j+1] = min(row[j+1]+1, row[j]+1, subst)
		}
	}

	return row[len(dst)]
}
