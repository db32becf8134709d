// Package learning converts user corrections into new extraction rules: it
// classifies each before/after edit, scores its quality, synthesizes regex
// candidates from the corrected value's shape and registers the best one
// with the pattern repository.
package learning

import (
	"regexp"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

var (
	digitRe         = regexp.MustCompile(`\d`)
	persianScriptRe = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
)

// ClassifyCorrection labels a before/after edit. Both-empty edits should not
// reach learning; they classify as unknown.
func ClassifyCorrection(original, corrected string) types.CorrectionType {
	switch {
	case original == "" && corrected != "":
		return types.CorrectionAddition
	case original != "" && corrected == "":
		return types.CorrectionDeletion
	case original != "" && corrected != "":
		if AreSimilar(original, corrected) {
			return types.CorrectionRefinement
		}
		return types.CorrectionReplacement
	default:
		return types.CorrectionUnknown
	}
}

// CorrectionQuality scores how much signal a correction carries for pattern
// synthesis, clamped to [0.1, 1.0]. Additions are worth the most: the user
// supplied a value the engine missed entirely.
func CorrectionQuality(original, corrected string) float64 {
	quality := 0.5

	if corrected != "" && len([]rune(corrected)) >= 3 && len([]rune(corrected)) <= 50 {
		quality += 0.2
	}

	switch ClassifyCorrection(original, corrected) {
	case types.CorrectionAddition:
		quality += 0.3
	case types.CorrectionRefinement:
		quality += 0.2
	case types.CorrectionReplacement:
		quality += 0.1
	}

	if corrected != "" {
		if digitRe.MatchString(corrected) {
			quality += 0.1
		}
		if persianScriptRe.MatchString(corrected) {
			quality += 0.1
		}
	}

	if quality < 0.1 {
		return 0.1
	}
	if quality > 1.0 {
		return 1.0
	}
	return quality
}
