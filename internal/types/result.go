package types

// Extraction methods recorded on a FieldResult.
const (
	MethodRegex = "regex"
	MethodNone  = "none"
)

// Page statuses recorded on a PageResult.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// FieldResult is the outcome of extracting one field from one page.
// An empty Value with method "none" means no candidate survived validation;
// a field is never absent from a page result.
type FieldResult struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"` // 0..0.95
	Method     string  `json:"method"`     // "regex" or "none"
	Pattern    string  `json:"pattern,omitempty"`
}

// Found reports whether the extraction produced a value.
func (r FieldResult) Found() bool {
	return r.Method != MethodNone && r.Value != ""
}

// NoResult is the explicit empty result returned when no pattern matched or
// the field is unknown.
func NoResult() FieldResult {
	return FieldResult{Method: MethodNone}
}

// PageResult aggregates per-field results for a single page of a document.
type PageResult struct {
	File            string                 `json:"file,omitempty"`
	Page            int                    `json:"page"`
	DocumentType    DocumentType           `json:"document_type"`
	Extracted       map[string]FieldResult `json:"extracted"`
	TextLength      int                    `json:"text_length"`
	SuccessRate     float64                `json:"success_rate"` // percentage of fields with a value
	SkippedPatterns int                    `json:"skipped_patterns,omitempty"`
	Status          string                 `json:"status"`
}
