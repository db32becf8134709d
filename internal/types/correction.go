package types

import "time"

// CorrectionType classifies a user's before/after edit.
type CorrectionType string

const (
	CorrectionAddition    CorrectionType = "addition"
	CorrectionDeletion    CorrectionType = "deletion"
	CorrectionRefinement  CorrectionType = "refinement"
	CorrectionReplacement CorrectionType = "replacement"
	CorrectionUnknown     CorrectionType = "unknown"
)

// Correction records one user edit of an extracted value. Corrections are
// immutable once recorded; learned patterns reference them by ID.
type Correction struct {
	ID                 string         `json:"correction_id"`
	FieldID            string         `json:"field_id"`
	FieldName          string         `json:"field_name"`
	OriginalValue      string         `json:"original_value"`
	CorrectedValue     string         `json:"corrected_value"`
	OriginalConfidence float64        `json:"original_confidence"`
	Method             string         `json:"extraction_method"`
	Type               CorrectionType `json:"correction_type"`
	QualityScore       float64        `json:"quality_score"` // 0.1..1.0
	Timestamp          time.Time      `json:"timestamp"`
}

// FieldEdit is the raw before/after pair handed to the learning subsystem,
// keyed by field ID in a learn request.
type FieldEdit struct {
	FieldName     string  `json:"field_name"`
	OriginalValue string  `json:"original_value"`
	CurrentValue  string  `json:"current_value"`
	Confidence    float64 `json:"confidence"`
	Method        string  `json:"method"`
}

// LearningSession groups the corrections applied together in one learn call
// with the patterns synthesized from them.
type LearningSession struct {
	ID          string           `json:"session_id"`
	Timestamp   time.Time        `json:"timestamp"`
	Corrections []Correction     `json:"corrections"`
	NewPatterns []LearnedPattern `json:"new_patterns"`
}
