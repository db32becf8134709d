// Package classify infers a declaration's direction (import/export) and
// cardinality (single-item/multi-item) from normalized OCR text.
package classify

import (
	"regexp"
	"strings"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

// Direction keywords, matched case-insensitively as substrings.
var (
	importKeywords = []string{"واردات", "import", "ورود", "کوتا", "وارد"}
	exportKeywords = []string{"صادرات", "export", "خروج", "صادر"}
)

// multiItemIndicators are markers that repeat once per line item on
// multi-item declarations: commodity-code tags, description tags and weight
// tags, in both labeled and numbered-box form.
var multiItemIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)کد\s*کالا`),
	regexp.MustCompile(`(?i)33[\s.]*\d{8}`),
	regexp.MustCompile(`(?i)شرح\s*کالا`),
	regexp.MustCompile(`(?i)31[\s.]*[آ-ی]`),
	regexp.MustCompile(`(?i)وزن\s*خالص`),
	regexp.MustCompile(`(?i)38[\s.]*\d+`),
}

// longTextThreshold is the OCR output length above which a document is
// assumed to span multiple line items even without repeated indicators.
const longTextThreshold = 5000

// Classify combines direction and multiplicity heuristics into one of the
// four concrete document types. The empty-text failure path is handled by
// the caller; Classify itself never returns unknown.
func Classify(text string) types.DocumentType {
	lower := strings.ToLower(text)

	importCount := countKeywords(lower, importKeywords)
	exportCount := countKeywords(lower, exportKeywords)
	isImport := importCount >= exportCount

	repeated := 0
	for _, re := range multiItemIndicators {
		if len(re.FindAllStringIndex(text, 2)) > 1 {
			repeated++
		}
	}
	isMulti := repeated >= 2

	if len(text) > longTextThreshold && !isMulti {
		isMulti = true
	}

	return types.MakeDocumentType(isImport, isMulti)
}

func countKeywords(lowerText string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lowerText, kw) {
			count++
		}
	}
	return count
}
