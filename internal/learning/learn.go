package learning

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

// Processor turns correction batches into repository mutations and session
// log entries.
type Processor struct {
	repo *patterns.Repository
}

// NewProcessor returns a processor writing to repo.
func NewProcessor(repo *patterns.Repository) *Processor {
	return &Processor{repo: repo}
}

// Learn processes a batch of field edits. Each changed field becomes an
// immutable Correction; non-deletion corrections synthesize a pattern that
// is merged into the repository. Returns the session and true when at least
// one correction was processed, or nil and false when nothing changed.
//
// The caller persists the repository afterwards; Learn itself only mutates
// in-memory state, under the repository's write lock per mutation.
func (p *Processor) Learn(edits map[string]types.FieldEdit) (*types.LearningSession, bool) {
	session := types.LearningSession{
		ID:        "learning_session_" + uuid.NewString(),
		Timestamp: time.Now(),
	}

	// Deterministic processing order regardless of map iteration.
	fieldIDs := make([]string, 0, len(edits))
	for id := range edits {
		fieldIDs = append(fieldIDs, id)
	}
	sort.Strings(fieldIDs)

	for _, fieldID := range fieldIDs {
		edit := edits[fieldID]
		if edit.CurrentValue == edit.OriginalValue {
			continue
		}

		correction := types.Correction{
			ID:                 uuid.NewString(),
			FieldID:            fieldID,
			FieldName:          edit.FieldName,
			OriginalValue:      edit.OriginalValue,
			CorrectedValue:     edit.CurrentValue,
			OriginalConfidence: edit.Confidence,
			Method:             edit.Method,
			Type:               ClassifyCorrection(edit.OriginalValue, edit.CurrentValue),
			QualityScore:       CorrectionQuality(edit.OriginalValue, edit.CurrentValue),
			Timestamp:          time.Now(),
		}
		session.Corrections = append(session.Corrections, correction)

		if pattern, ok := p.synthesizeFromCorrection(correction); ok {
			session.NewPatterns = append(session.NewPatterns, pattern)
		}
	}

	if len(session.Corrections) == 0 {
		return nil, false
	}

	p.repo.AppendCorrections(session.Corrections)
	p.repo.AppendSession(session)
	return &session, true
}

// synthesizeFromCorrection derives the best pattern for a correction and
// registers it. Deletions carry no positive value to encode and generate
// nothing.
func (p *Processor) synthesizeFromCorrection(c types.Correction) (types.LearnedPattern, bool) {
	if c.Type == types.CorrectionDeletion || c.CorrectedValue == "" {
		return types.LearnedPattern{}, false
	}

	variants := Synthesize(c.CorrectedValue)
	best := SelectBestPattern(variants, c.FieldName)
	if best == "" {
		return types.LearnedPattern{}, false
	}

	pattern := types.LearnedPattern{
		Pattern:       best,
		FieldName:     c.FieldName,
		SourceValue:   c.CorrectedValue,
		CorrectionID:  c.ID,
		CreatedAt:     time.Now(),
		SuccessCount:  1,
		TotalAttempts: 1,
		Accuracy:      100.0,
		QualityScore:  c.QualityScore,
		Type:          types.PatternUserGenerated,
	}

	if _, err := p.repo.Add(c.FieldName, pattern); err != nil {
		return types.LearnedPattern{}, false
	}
	return pattern, true
}
