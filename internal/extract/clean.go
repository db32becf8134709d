package extract

import (
	"regexp"
	"strings"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
)

var (
	nonDigitRe        = regexp.MustCompile(`[^\d]`)
	nonDecimalRe      = regexp.MustCompile(`[^\d.]`)
	digitsRe          = regexp.MustCompile(`\d+`)
	outOfScriptRe     = regexp.MustCompile(`[^\x{0600}-\x{06FF}a-zA-Z\s]`)
	spacesRe          = regexp.MustCompile(`\s+`)
	nonUppercaseRe    = regexp.MustCompile(`[^A-Z]`)
)

// CleanValue canonicalizes a raw captured group before validation, keyed by
// the field's cleaning class. CleanValue is idempotent for every class.
func CleanValue(value string, class catalog.FieldClass) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	switch class {
	case catalog.ClassNumeric:
		return nonDigitRe.ReplaceAllString(value, "")

	case catalog.ClassDecimal:
		value = nonDecimalRe.ReplaceAllString(value, "")
		// Keep the first dot as the decimal separator and splice the
		// remaining digit groups onto the fraction.
		parts := strings.Split(value, ".")
		if len(parts) > 2 {
			value = parts[0] + "." + strings.Join(parts[1:], "")
		}
		return value

	case catalog.ClassText:
		value = digitsRe.ReplaceAllString(value, "")
		value = outOfScriptRe.ReplaceAllString(value, " ")
		return strings.TrimSpace(spacesRe.ReplaceAllString(value, " "))

	case catalog.ClassCurrency:
		return nonUppercaseRe.ReplaceAllString(strings.ToUpper(value), "")

	default:
		return value
	}
}
