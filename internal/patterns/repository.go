// Package patterns holds the learned-pattern repository and its persistent
// store. The repository is the single source of truth consulted by extraction
// and mutated by learning: extraction takes shared read locks, every mutating
// operation (learning, cleanup, import) takes the exclusive write lock, so
// readers observe either the pre- or post-update state and counter updates
// never interleave.
package patterns

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

// Default lifecycle thresholds.
const (
	DefaultBestMinAccuracy    = 70.0
	DefaultBestMaxPatterns    = 5
	DefaultCleanupMinAccuracy = 30.0
	DefaultCleanupMaxAgeDays  = 30
	exportMinAccuracy         = 60.0
	exportMinAttempts         = 3
)

// Repository holds learned patterns per field together with the correction
// and session logs. Construct with NewRepository (in-memory) or Open
// (file-backed); the zero value is not usable.
type Repository struct {
	mu sync.RWMutex

	learned     map[string][]types.LearnedPattern
	corrections []types.Correction
	sessions    []types.LearningSession

	dir       string // store directory; empty for in-memory repositories
	createdBy string
}

// NewRepository returns an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		learned:   make(map[string][]types.LearnedPattern),
		createdBy: "customs-agent",
	}
}

// LearnedFor returns the learned patterns for a field in insertion order.
// The returned slice is a copy and safe to retain.
func (r *Repository) LearnedFor(field string) []types.LearnedPattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.learned[field]
	out := make([]types.LearnedPattern, len(stored))
	copy(out, stored)
	return out
}

// PatternsFor returns the ordered candidate list for a field: the built-in
// patterns first (catalog priority order), then learned patterns in
// insertion order.
func (r *Repository) PatternsFor(field string, builtins []string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(builtins)+len(r.learned[field]))
	out = append(out, builtins...)
	for _, p := range r.learned[field] {
		out = append(out, p.Pattern)
	}
	return out
}

// Add inserts a learned pattern for a field, deduplicating by pattern
// string: a repeat increments the existing entry's counters instead of
// inserting a duplicate. Returns true when a new entry was appended.
func (r *Repository) Add(field string, p types.LearnedPattern) (bool, error) {
	if _, err := regexp.Compile(p.Pattern); err != nil {
		return false, &InvalidPatternError{FieldName: field, Pattern: p.Pattern, Cause: err}
	}
	if p.QualityScore < 0.1 || p.QualityScore > 1.0 {
		return false, fmt.Errorf("quality score %.2f outside [0.1, 1.0]", p.QualityScore)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.learned[field] {
		existing := &r.learned[field][i]
		if existing.Pattern == p.Pattern {
			existing.RecordAttempt(true)
			return false, nil
		}
	}

	p.FieldName = field
	r.learned[field] = append(r.learned[field], p)
	return true, nil
}

// AddCustom registers a hand-written pattern for a field. Manual patterns
// start with zero counters and are exempt from cleanup.
func (r *Repository) AddCustom(field, pattern string) error {
	custom := types.LearnedPattern{
		Pattern:      pattern,
		FieldName:    field,
		SourceValue:  "manual",
		CorrectionID: fmt.Sprintf("manual_%d", time.Now().UnixNano()),
		CreatedAt:    time.Now(),
		QualityScore: 0.5,
		Type:         types.PatternManual,
	}
	_, err := r.Add(field, custom)
	return err
}

// Remove deletes a pattern from a field. Returns true if an entry was removed.
func (r *Repository) Remove(field, pattern string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.learned[field]
	kept := stored[:0]
	for _, p := range stored {
		if p.Pattern != pattern {
			kept = append(kept, p)
		}
	}
	removed := len(kept) < len(stored)
	if len(kept) == 0 {
		delete(r.learned, field)
	} else {
		r.learned[field] = kept
	}
	return removed
}

// RecordOutcome records a live match attempt for a stored pattern,
// recomputing its accuracy from the counters. Returns false if the pattern
// is not stored for the field.
func (r *Repository) RecordOutcome(field, pattern string, success bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.learned[field] {
		p := &r.learned[field][i]
		if p.Pattern == pattern {
			p.RecordAttempt(success)
			return true
		}
	}
	return false
}

// BestPatterns returns up to DefaultBestMaxPatterns patterns for a field
// with accuracy >= minAccuracy and at least two recorded attempts, sorted by
// accuracy then success count, both descending.
func (r *Repository) BestPatterns(field string, minAccuracy float64) []types.LearnedPattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var good []types.LearnedPattern
	for _, p := range r.learned[field] {
		if p.Accuracy >= minAccuracy && p.TotalAttempts >= 2 {
			good = append(good, p)
		}
	}

	sort.SliceStable(good, func(i, j int) bool {
		if good[i].Accuracy != good[j].Accuracy {
			return good[i].Accuracy > good[j].Accuracy
		}
		return good[i].SuccessCount > good[j].SuccessCount
	})

	if len(good) > DefaultBestMaxPatterns {
		good = good[:DefaultBestMaxPatterns]
	}
	return good
}

// Cleanup removes patterns that are inaccurate AND stale: accuracy below
// minAccuracy and created more than maxAge ago. Manual patterns are never
// auto-removed regardless of accuracy or age. Returns the number removed.
func (r *Repository) Cleanup(minAccuracy float64, maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for field, stored := range r.learned {
		kept := stored[:0]
		for _, p := range stored {
			if p.Type == types.PatternManual || p.Accuracy >= minAccuracy || p.CreatedAt.After(cutoff) {
				kept = append(kept, p)
			} else {
				removed++
			}
		}
		if len(kept) == 0 {
			delete(r.learned, field)
		} else {
			r.learned[field] = kept
		}
	}
	return removed
}

// AppendCorrections appends immutable correction records to the log.
func (r *Repository) AppendCorrections(corrs []types.Correction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.corrections = append(r.corrections, corrs...)
}

// AppendSession appends a learning session to the performance log.
func (r *Repository) AppendSession(sess types.LearningSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, sess)
}

// Corrections returns a copy of the correction log.
func (r *Repository) Corrections() []types.Correction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Correction, len(r.corrections))
	copy(out, r.corrections)
	return out
}

// Sessions returns a copy of the session log.
func (r *Repository) Sessions() []types.LearningSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.LearningSession, len(r.sessions))
	copy(out, r.sessions)
	return out
}

// Reset discards all learned data. The confirm flag guards against
// accidental calls; Reset is a no-op without it.
func (r *Repository) Reset(confirm bool) bool {
	if !confirm {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.learned = make(map[string][]types.LearnedPattern)
	r.corrections = nil
	r.sessions = nil
	return true
}

// fieldNames returns the fields that currently have learned patterns, in
// sorted order for deterministic iteration.
func (r *Repository) fieldNames() []string {
	names := make([]string, 0, len(r.learned))
	for name := range r.learned {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
