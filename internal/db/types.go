package db

import "time"

// SessionSummary mirrors a learning_sessions row.
type SessionSummary struct {
	ID              string    `json:"id"`
	OccurredAt      time.Time `json:"occurred_at"`
	CorrectionCount int       `json:"correction_count"`
	NewPatternCount int       `json:"new_pattern_count"`
}
