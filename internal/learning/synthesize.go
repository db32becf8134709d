package learning

import (
	"regexp"
	"strings"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
)

// Value shapes recognized by the synthesizer.
var (
	integerRe      = regexp.MustCompile(`^\d+$`)
	decimalRe      = regexp.MustCompile(`^\d+\.\d+$`)
	persianTextRe  = regexp.MustCompile(`^[آ-ی\s]+$`)
	currencyCodeRe = regexp.MustCompile(`^[A-Z]{2,4}$`)
)

// Synthesize derives regex candidates from a corrected value's shape. Every
// variant captures the literal value; the bounded variants anchor it between
// the whitespace/colon separators that customs-form labels use.
func Synthesize(value string) []string {
	lit := regexp.QuoteMeta(value)

	switch {
	case integerRe.MatchString(value):
		return []string{
			`(` + lit + `)`,
			`[\s:](` + lit + `)[\s\n]`,
			lit + `\s*[^\d]`,
		}

	case decimalRe.MatchString(value):
		base := regexp.QuoteMeta(strings.SplitN(value, ".", 2)[0])
		return []string{
			`(` + lit + `)`,
			base + `\.?\d*`,
			`[\s:](` + lit + `)[\s\n]`,
		}

	case persianTextRe.MatchString(value):
		if len(strings.Fields(value)) == 1 {
			return []string{
				`(` + lit + `)`,
				`[\s:](` + lit + `)[\s\n]`,
				`(` + lit + `)\s*\d`,
			}
		}
		return []string{
			`(` + lit + `)`,
			`[\s:](` + lit + `)[\s\n]`,
		}

	case currencyCodeRe.MatchString(value):
		return []string{
			`(` + lit + `)`,
			`[\s:](` + lit + `)[\s\n]`,
			`ارز[\s:]*(` + lit + `)`,
		}

	default:
		return []string{`(` + lit + `)`}
	}
}

// SelectBestPattern ranks synthesized variants and returns the winner.
// Bounded variants beat bare literals; field-specific bonuses favor
// digit-anchored patterns for the declaration number and script-class
// patterns for the description field. Catalog order breaks exact ties.
func SelectBestPattern(variants []string, fieldName string) string {
	if len(variants) == 0 {
		return ""
	}

	best := variants[0]
	bestScore := -1.0

	for _, pattern := range variants {
		score := 0.5
		if strings.Contains(pattern, `\s`) {
			score += 0.2
		}
		if strings.Contains(pattern, `[\s:]`) {
			score += 0.3
		}
		if len(pattern) > 20 {
			score += 0.1
		}

		switch fieldName {
		case catalog.FieldDeclarationNumber:
			if strings.Contains(pattern, `\d`) {
				score += 0.2
			}
		case catalog.FieldDescription:
			if strings.Contains(pattern, `آ-ی`) {
				score += 0.2
			}
		}

		if score > bestScore {
			bestScore = score
			best = pattern
		}
	}
	return best
}
