package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// PatternType marks the provenance of a learned pattern.
type PatternType string

const (
	PatternUserGenerated PatternType = "user_generated"
	PatternManual        PatternType = "manual"
	PatternImported      PatternType = "imported"
)

// LearnedPattern is a regex synthesized from a user correction (or added
// manually/imported), with its performance tracked over later documents.
// Unique by pattern string within a field.
type LearnedPattern struct {
	Pattern       string      `json:"pattern" validate:"required"`
	FieldName     string      `json:"field_name" validate:"required"`
	SourceValue   string      `json:"source_value"`
	CorrectionID  string      `json:"correction_id"`
	CreatedAt     time.Time   `json:"created_at"`
	SuccessCount  int         `json:"success_count" validate:"min=0"`
	TotalAttempts int         `json:"total_attempts" validate:"min=0"`
	Accuracy      float64     `json:"accuracy" validate:"min=0,max=100"`
	QualityScore  float64     `json:"quality_score" validate:"min=0,max=1"`
	Type          PatternType `json:"pattern_type" validate:"required,oneof=user_generated manual imported"`
}

// RecordAttempt increments the attempt counters and recomputes Accuracy.
// Accuracy is never drifted independently of the counters.
func (p *LearnedPattern) RecordAttempt(success bool) {
	p.TotalAttempts++
	if success {
		p.SuccessCount++
	}
	p.recomputeAccuracy()
}

func (p *LearnedPattern) recomputeAccuracy() {
	if p.TotalAttempts == 0 {
		p.Accuracy = 0
		return
	}
	p.Accuracy = float64(p.SuccessCount) / float64(p.TotalAttempts) * 100
}

// Validate validates the LearnedPattern record using the validator.
func (p *LearnedPattern) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
