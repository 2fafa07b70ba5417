package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestRepo struct {
	db DBTX
}

func NewQuestRepo(db DBTX) *QuestRepo {
	return &QuestRepo{db: db}
}

func (r *QuestRepo) Insert(ctx context.Context, q Quest) error {
	claimed := 0
	if q.Claimed {
		claimed = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (id, trigger_kind, description, target, progress, reward, claimed, created_at)
		VALUES (?,?,?,?,?,?,?,?)
	`, q.ID, q.Trigger, q.Description, q.Target, q.Progress, q.Reward, claimed, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("quest insert: %w", err)
	}
	return nil
}

func (r *QuestRepo) Get(ctx context.Context, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, trigger_kind, description, target, progress, reward, claimed, created_at
		FROM quests WHERE id = ?
	`, id)
	return scanQuestRow(row)
}

func (r *QuestRepo) ListAll(ctx context.Context) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, trigger_kind, description, target, progress, reward, claimed, created_at
		FROM quests ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		var q Quest
		var claimed int
		if err := rows.Scan(&q.ID, &q.Trigger, &q.Description, &q.Target, &q.Progress, &q.Reward, &claimed, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		q.Claimed = claimed != 0
		out = append(out, q)
	}
	return out, rows.Err()
}

// AddProgress bumps every unclaimed quest of the given trigger by amount.
func (r *QuestRepo) AddProgress(ctx context.Context, trigger string, amount int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE quests SET progress = progress + ?
		WHERE trigger_kind = ? AND claimed = 0
	`, amount, trigger)
	if err != nil {
		return fmt.Errorf("quest progress: %w", err)
	}
	return nil
}

func (r *QuestRepo) MarkClaimed(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE quests SET claimed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("quest claim: %w", err)
	}
	return nil
}

func (r *QuestRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quests`); err != nil {
		return fmt.Errorf("quest clear: %w", err)
	}
	return nil
}

func scanQuestRow(row *sql.Row) (*Quest, error) {
	var q Quest
	var claimed int
	if err := row.Scan(&q.ID, &q.Trigger, &q.Description, &q.Target, &q.Progress, &q.Reward, &claimed, &q.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest get: %w", err)
	}
	q.Claimed = claimed != 0
	return &q, nil
}
