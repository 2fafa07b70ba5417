package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainSessionKey = "main_save"

type SessionRepo struct {
	db DBTX
}

func NewSessionRepo(db DBTX) *SessionRepo {
	return &SessionRepo{db: db}
}

const sessionColumns = `key, player_name, money, vip, energy,
	rod_level, bait_level, depth_level, bucket_level, dock_level, boat_level,
	active_character, total_gold_earned, total_fish_caught, legendary_fish_caught`

func (r *SessionRepo) Get(ctx context.Context, key string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM session WHERE key = ?`, key)

	var s Session
	var vip int
	err := row.Scan(
		&s.Key, &s.PlayerName, &s.Money, &vip, &s.Energy,
		&s.RodLevel, &s.BaitLevel, &s.DepthLevel, &s.BucketLevel, &s.DockLevel, &s.BoatLevel,
		&s.ActiveCharacter, &s.TotalGoldEarned, &s.TotalFishCaught, &s.LegendaryFishCaught,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	s.VIP = vip != 0
	return &s, nil
}

func (r *SessionRepo) GetOrCreateMain(ctx context.Context) (*Session, error) {
	s, err := r.Get(ctx, MainSessionKey)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO session (key) VALUES (?)`, MainSessionKey); err != nil {
		return nil, fmt.Errorf("session insert: %w", err)
	}
	return r.Get(ctx, MainSessionKey)
}

func (r *SessionRepo) Update(ctx context.Context, s *Session) error {
	vip := 0
	if s.VIP {
		vip = 1
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE session
		SET player_name = ?, money = ?, vip = ?, energy = ?,
			rod_level = ?, bait_level = ?, depth_level = ?, bucket_level = ?, dock_level = ?, boat_level = ?,
			active_character = ?, total_gold_earned = ?, total_fish_caught = ?, legendary_fish_caught = ?
		WHERE key = ?
	`,
		s.PlayerName, s.Money, vip, s.Energy,
		s.RodLevel, s.BaitLevel, s.DepthLevel, s.BucketLevel, s.DockLevel, s.BoatLevel,
		s.ActiveCharacter, s.TotalGoldEarned, s.TotalFishCaught, s.LegendaryFishCaught,
		s.Key,
	)
	if err != nil {
		return fmt.Errorf("session update: %w", err)
	}
	return nil
}
