package extract

import "strings"

// Context keywords inspected in a ±50-character window around a match.
// Positive terms are customs vocabulary; negative terms mark regions (dates,
// phone numbers, postal codes) that produce false positives.
var (
	positiveKeywords = []string{"کوتا", "کالا", "شرح", "وزن", "کشور", "ارز", "گمرک"}
	negativeKeywords = []string{"تاریخ", "ساعت", "شماره تلفن", "کد پستی"}
)

const contextWindow = 50

// qualityScore rates one candidate match. Earlier-listed patterns are
// hand-tuned to be more specific and score higher; matches in the first half
// of the document beat trailing boilerplate; surrounding keywords shift the
// score either way. The result is clamped to [0.1, 0.9].
func qualityScore(candidate string, patternIndex, matchStart int, fullText string) float64 {
	score := 0.5

	score += float64(10-patternIndex) * 0.05

	switch n := len([]rune(candidate)); {
	case n >= 5 && n <= 20:
		score += 0.1
	case n > 20:
		score -= 0.1
	}

	if len(fullText) > 0 && float64(matchStart)/float64(len(fullText)) < 0.5 {
		score += 0.1
	}

	ctx := contextAround(fullText, matchStart, matchStart+len(candidate))
	for _, kw := range positiveKeywords {
		if strings.Contains(ctx, kw) {
			score += 0.05
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(ctx, kw) {
			score -= 0.1
		}
	}

	return clamp(score, 0.1, 0.9)
}

func contextAround(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	if lo > hi {
		lo = hi
	}
	return text[lo:hi]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
