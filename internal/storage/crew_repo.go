package storage

import (
	"context"
	"fmt"
)

type CrewRepo struct {
	db DBTX
}

func NewCrewRepo(db DBTX) *CrewRepo {
	return &CrewRepo{db: db}
}

func (r *CrewRepo) Insert(ctx context.Context, m CrewMember) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO crew (id, role, income_per_second, hired_at)
		VALUES (?,?,?,?)
	`, m.ID, m.Role, m.IncomePerSecond, m.HiredAt)
	if err != nil {
		return fmt.Errorf("crew insert: %w", err)
	}
	return nil
}

func (r *CrewRepo) ListAll(ctx context.Context) ([]CrewMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, role, income_per_second, hired_at
		FROM crew ORDER BY hired_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("crew list: %w", err)
	}
	defer rows.Close()

	var out []CrewMember
	for rows.Next() {
		var m CrewMember
		if err := rows.Scan(&m.ID, &m.Role, &m.IncomePerSecond, &m.HiredAt); err != nil {
			return nil, fmt.Errorf("crew scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *CrewRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM crew`).Scan(&n); err != nil {
		return 0, fmt.Errorf("crew count: %w", err)
	}
	return n, nil
}

// TotalIncome is the summed per-second income across all hires.
func (r *CrewRepo) TotalIncome(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(income_per_second), 0) FROM crew`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("crew income: %w", err)
	}
	return total, nil
}
