package storage

import (
	"context"
	"fmt"
	"time"
)

// CodexRepo tracks discovered species and owned characters.
type CodexRepo struct {
	db DBTX
}

func NewCodexRepo(db DBTX) *CodexRepo {
	return &CodexRepo{db: db}
}

// RecordDiscovery is first-catch-wins; repeat catches of a species are a
// no-op.
func (r *CodexRepo) RecordDiscovery(ctx context.Context, name string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO discoveries (name, first_caught_at) VALUES (?,?)
		ON CONFLICT(name) DO NOTHING
	`, name, at)
	if err != nil {
		return fmt.Errorf("discovery insert: %w", err)
	}
	return nil
}

func (r *CodexRepo) ListDiscoveries(ctx context.Context) ([]Discovery, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, first_caught_at FROM discoveries ORDER BY first_caught_at, name
	`)
	if err != nil {
		return nil, fmt.Errorf("discovery list: %w", err)
	}
	defer rows.Close()

	var out []Discovery
	for rows.Next() {
		var d Discovery
		if err := rows.Scan(&d.Name, &d.FirstCaughtAt); err != nil {
			return nil, fmt.Errorf("discovery scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *CodexRepo) AddCharacter(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wardrobe (character_id) VALUES (?)
		ON CONFLICT(character_id) DO NOTHING
	`, id)
	if err != nil {
		return fmt.Errorf("wardrobe insert: %w", err)
	}
	return nil
}

func (r *CodexRepo) HasCharacter(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wardrobe WHERE character_id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("wardrobe check: %w", err)
	}
	return n > 0, nil
}

func (r *CodexRepo) ListCharacters(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT character_id FROM wardrobe ORDER BY character_id`)
	if err != nil {
		return nil, fmt.Errorf("wardrobe list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("wardrobe scan: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
