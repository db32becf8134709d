// Package textnorm canonicalizes raw OCR text before classification and
// field extraction: Persian/Arabic digit glyphs become ASCII digits and
// non-semantic characters collapse to spaces.
package textnorm

import (
	"regexp"
	"strings"
)

// digitNormalizations maps Persian and Arabic-Indic digit glyphs to their
// ASCII equivalents.
var digitNormalizations = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// Characters outside the Arabic-script ranges, Latin letters, digits,
// whitespace and the small punctuation set used by customs-form labels are
// replaced by spaces.
var (
	nonSemanticRe = regexp.MustCompile(`[^\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}a-zA-Z0-9\s.:\-()]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// NormalizeDigits converts Persian and Arabic digit glyphs to ASCII digits.
func NormalizeDigits(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if ascii, ok := digitNormalizations[r]; ok {
			return ascii
		}
		return r
	}, text)
}

// CleanText replaces characters with no extraction semantics by spaces,
// collapses whitespace runs to a single space and trims the result.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = nonSemanticRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Normalize applies digit normalization followed by text cleaning.
// Normalize is idempotent: applying it to already-normalized text is a no-op.
func Normalize(text string) string {
	return CleanText(NormalizeDigits(text))
}
