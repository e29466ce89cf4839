package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// haptic pattern catalog operations; the catalog is read-only at engine
// runtime, rows change only through the administrative seed/update path

// GetPattern retrieves one catalog entry; returns nil without error when the
// pattern does not exist
func (db *DB) GetPattern(ctx context.Context, id string) (*domain.PatternSpec, error) {
	var row patternRow
	err := db.conn.GetContext(ctx, &row, "SELECT * FROM haptic_patterns WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pattern: %w", err)
	}

	p, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPatterns retrieves catalog entries, optionally filtered by category
func (db *DB) ListPatterns(ctx context.Context, category string) ([]domain.PatternSpec, error) {
	query := "SELECT * FROM haptic_patterns ORDER BY category, name"
	args := []any{}
	if category != "" {
		query = "SELECT * FROM haptic_patterns WHERE category = ? ORDER BY category, name"
		args = append(args, category)
	}

	var rows []patternRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}

	patterns := make([]domain.PatternSpec, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
