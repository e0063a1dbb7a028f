package match

import (
	"regexp"
	"strings"
)

// nonWord matches everything that is not a word character or whitespace.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// TitleSimilarity computes a character-level similarity ratio in [0, 1]
// between two listing titles. Titles are lower-cased and stripped of
// punctuation first, then compared with a Ratcliff/Obershelp matching-
// blocks ratio: twice the total length of the matching blocks divided by
// the combined length of both strings.
func TitleSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	t1 := []rune(nonWord.ReplaceAllString(strings.ToLower(a), ""))
	t2 := []rune(nonWord.ReplaceAllString(strings.ToLower(b), ""))

	total := len(t1) + len(t2)
	if total == 0 {
		return 1
	}

	return 2 * float64(matchingLen(t1, t2)) / float64(total)
}

// matchingLen sums the lengths of the matching blocks: the longest
// common substring, then recursively the pieces to its left and right.
func matchingLen(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}

	return size +
		matchingLen(a[:ai], b[:bi]) +
		matchingLen(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common substring of a and b,
// returning its start offsets and length. Ties resolve to the earliest
// occurrence in a, then in b.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	// lengths[j] is the length of the common suffix of a[:i+1] and
	// b[:j+1] from the previous row.
	prev := make([]int, len(b))
	cur := make([]int, len(b))

	for i := range a {
		for j := range b {
			if a[i] != b[j] {
				cur[j] = 0
				continue
			}
			if j == 0 {
				cur[j] = 1
			} else {
				cur[j] = prev[j-1] + 1
			}
			if cur[j] > size {
				size = cur[j]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
		prev, cur = cur, prev
	}

	return ai, bi, size
}
