package similarity

// NearDuplicateThreshold is the score above which two trigger phrases are
// flagged as near-duplicates.
const NearDuplicateThreshold = 0.7

// Score returns the normalized edit-distance similarity of two strings in
// [0, 1], computed as (L - editDistance) / L with L the longer length in
// runes. Two empty strings score 1.0.
func Score(a, b string) float64 {
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}

	if longer == 0 {
		return 1.0
	}

	return float64(longer-EditDistance(a, b)) / float64(longer)
}

// EditDistance computes the classic Levenshtein distance with unit costs for
// insertion, deletion and substitution over a full dynamic-programming table.
// Strings are compared rune by rune, so accented text costs one edit per
// character, not per byte.
func EditDistance(a, b string) int {
	s1, s2 := []rune(a), []rune(b)

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}
