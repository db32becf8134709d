package patterns

// FieldAnalysis summarizes learned-pattern performance for one field.
type FieldAnalysis struct {
	PatternCount       int     `json:"pattern_count"`
	AvgAccuracy        float64 `json:"avg_accuracy"`
	BestAccuracy       float64 `json:"best_accuracy"`
	TotalAttempts      int     `json:"total_attempts"`
	SuccessfulAttempts int     `json:"successful_attempts"`
}

// Statistics aggregates the learning state for reporting and export.
type Statistics struct {
	TotalPatterns      int                      `json:"total_patterns"`
	SuccessfulPatterns int                      `json:"successful_patterns"` // accuracy >= 70
	SuccessRate        float64                  `json:"success_rate"`        // percentage
	FieldsCount        int                      `json:"fields_count"`
	TotalCorrections   int                      `json:"total_corrections"`
	LearningSessions   int                      `json:"learning_sessions"`
	LastSessionID      string                   `json:"last_learning_session,omitempty"`
	FieldAnalysis      map[string]FieldAnalysis `json:"field_analysis,omitempty"`
}

// Stats computes aggregate learning statistics.
func (r *Repository) Stats() Statistics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.statsLocked()
}

func (r *Repository) statsLocked() Statistics {
	stats := Statistics{
		TotalCorrections: len(r.corrections),
		LearningSessions: len(r.sessions),
		FieldsCount:      len(r.learned),
		FieldAnalysis:    make(map[string]FieldAnalysis),
	}
	if len(r.sessions) > 0 {
		stats.LastSessionID = r.sessions[len(r.sessions)-1].ID
	}

	for field, list := range r.learned {
		analysis := FieldAnalysis{PatternCount: len(list)}
		accSum := 0.0
		tried := 0
		for _, p := range list {
			stats.TotalPatterns++
			if p.Accuracy >= DefaultBestMinAccuracy {
				stats.SuccessfulPatterns++
			}
			analysis.TotalAttempts += p.TotalAttempts
			analysis.SuccessfulAttempts += p.SuccessCount
			if p.TotalAttempts > 0 {
				accSum += p.Accuracy
				tried++
				if p.Accuracy > analysis.BestAccuracy {
					analysis.BestAccuracy = p.Accuracy
				}
			}
		}
		if tried > 0 {
			analysis.AvgAccuracy = accSum / float64(tried)
		}
		stats.FieldAnalysis[field] = analysis
	}

	if stats.TotalPatterns > 0 {
		stats.SuccessRate = float64(stats.SuccessfulPatterns) / float64(stats.TotalPatterns) * 100
	}
	return stats
}
