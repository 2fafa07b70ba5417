package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type InventoryRepo struct {
	db DBTX
}

func NewInventoryRepo(db DBTX) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Insert(ctx context.Context, f CaughtFish) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (id, name, value, rarity, description, caught_at)
		VALUES (?,?,?,?,?,?)
	`, f.ID, f.Name, f.Value, f.Rarity, f.Description, f.CaughtAt)
	if err != nil {
		return fmt.Errorf("inventory insert: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Get(ctx context.Context, id string) (*CaughtFish, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, value, rarity, description, caught_at
		FROM inventory WHERE id = ?
	`, id)

	var f CaughtFish
	if err := row.Scan(&f.ID, &f.Name, &f.Value, &f.Rarity, &f.Description, &f.CaughtAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("inventory get: %w", err)
	}
	return &f, nil
}

// ListAll returns the bucket newest-first, matching the original display
// order of prepending fresh catches.
func (r *InventoryRepo) ListAll(ctx context.Context) ([]CaughtFish, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, value, rarity, description, caught_at
		FROM inventory ORDER BY caught_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("inventory list: %w", err)
	}
	defer rows.Close()

	var out []CaughtFish
	for rows.Next() {
		var f CaughtFish
		if err := rows.Scan(&f.ID, &f.Name, &f.Value, &f.Rarity, &f.Description, &f.CaughtAt); err != nil {
			return nil, fmt.Errorf("inventory scan: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *InventoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&n); err != nil {
		return 0, fmt.Errorf("inventory count: %w", err)
	}
	return n, nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("inventory delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("inventory delete: no fish %s", id)
	}
	return nil
}
