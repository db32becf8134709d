package learning

import (
	"regexp"
	"strings"
)

// similarityThreshold is the normalized-similarity cutoff above which two
// values count as the same value refined rather than replaced.
const similarityThreshold = 0.7

var whitespaceRe = regexp.MustCompile(`\s+`)

// AreSimilar reports whether two values are close enough that an edit from
// one to the other is a refinement. Case and whitespace are ignored; exact
// match or substring containment short-circuits before the edit-distance
// ratio.
func AreSimilar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	a = whitespaceRe.ReplaceAllString(strings.ToLower(a), "")
	b = whitespaceRe.ReplaceAllString(strings.ToLower(b), "")

	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	return Similarity(a, b) >= similarityThreshold
}

// Similarity returns 1 - editDistance/maxLen in [0, 1].
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	dist := editDistance(ra, rb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

// editDistance is the classic dynamic-programming string distance with unit
// cost for insert, delete and substitute, computed over two rows.
func editDistance(a, b []rune) int {
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
			curr[j] = min3(
				prev[j]+1,      // delete
				curr[j-1]+1,    // insert
				prev[j-1]+cost, // substitute
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
