// Package db provides optional PostgreSQL archival of learning data. The
// JSON file store stays authoritative; the database is a queryable mirror
// activated by --db-url.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ArchiveSession stores a learning session record
func (db *DB) ArchiveSession(ctx context.Context, sess types.LearningSession) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO learning_sessions (id, occurred_at, correction_count, new_pattern_count)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		sess.ID, sess.Timestamp, len(sess.Corrections), len(sess.NewPatterns),
	)
	if err != nil {
		return fmt.Errorf("failed to archive session %s: %w", sess.ID, err)
	}
	return nil
}

// ArchiveCorrections stores correction records for a session
func (db *DB) ArchiveCorrections(ctx context.Context, sessionID string, corrs []types.Correction) error {
	for _, c := range corrs {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO corrections
			   (id, session_id, field_id, field_name, original_value, corrected_value,
			    original_confidence, correction_type, quality_score, occurred_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			c.ID, sessionID, c.FieldID, c.FieldName, c.OriginalValue, c.CorrectedValue,
			c.OriginalConfidence, string(c.Type), c.QualityScore, c.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to archive correction %s: %w", c.ID, err)
		}
	}
	return nil
}

// ArchivePatterns stores or refreshes learned pattern records
func (db *DB) ArchivePatterns(ctx context.Context, patterns []types.LearnedPattern) error {
	for _, p := range patterns {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO learned_patterns
			   (pattern, field_name, source_value, correction_id, created_at,
			    success_count, total_attempts, accuracy, quality_score, pattern_type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (field_name, pattern) DO UPDATE SET
			   success_count = $6, total_attempts = $7, accuracy = $8`,
			p.Pattern, p.FieldName, p.SourceValue, p.CorrectionID, p.CreatedAt,
			p.SuccessCount, p.TotalAttempts, p.Accuracy, p.QualityScore, string(p.Type),
		)
		if err != nil {
			return fmt.Errorf("failed to archive pattern for %s: %w", p.FieldName, err)
		}
	}
	return nil
}

// LoadPatterns retrieves the archived patterns for a field
func (db *DB) LoadPatterns(ctx context.Context, fieldName string) ([]types.LearnedPattern, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT pattern, field_name, source_value, correction_id, created_at,
		        success_count, total_attempts, accuracy, quality_score, pattern_type
		 FROM learned_patterns WHERE field_name = $1
		 ORDER BY created_at`,
		fieldName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns for %s: %w", fieldName, err)
	}
	defer rows.Close()

	var out []types.LearnedPattern
	for rows.Next() {
		var p types.LearnedPattern
		var typ string
		if err := rows.Scan(&p.Pattern, &p.FieldName, &p.SourceValue, &p.CorrectionID,
			&p.CreatedAt, &p.SuccessCount, &p.TotalAttempts, &p.Accuracy,
			&p.QualityScore, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan pattern row: %w", err)
		}
		p.Type = types.PatternType(typ)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pattern rows: %w", err)
	}
	return out, nil
}

// GetSession retrieves one archived session summary by ID
func (db *DB) GetSession(ctx context.Context, sessionID string) (*SessionSummary, error) {
	var s SessionSummary
	err := db.pool.QueryRow(ctx,
		`SELECT id, occurred_at, correction_count, new_pattern_count
		 FROM learning_sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.OccurredAt, &s.CorrectionCount, &s.NewPatternCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	return &s, nil
}
