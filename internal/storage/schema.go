package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			player_name TEXT DEFAULT 'Angler',
			money INTEGER DEFAULT 0,
			vip INTEGER DEFAULT 0,
			energy INTEGER DEFAULT 100,

			rod_level INTEGER DEFAULT 1,
			bait_level INTEGER DEFAULT 1,
			depth_level INTEGER DEFAULT 1,
			bucket_level INTEGER DEFAULT 1,
			dock_level INTEGER DEFAULT 1,
			boat_level INTEGER DEFAULT 1,

			active_character TEXT DEFAULT 'drifter',

			total_gold_earned INTEGER DEFAULT 0,
			total_fish_caught INTEGER DEFAULT 0,
			legendary_fish_caught INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			value INTEGER NOT NULL,
			rarity TEXT NOT NULL,
			description TEXT,
			caught_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			trigger_kind TEXT NOT NULL,
			description TEXT NOT NULL,
			target INTEGER NOT NULL,
			progress INTEGER DEFAULT 0,
			reward INTEGER NOT NULL,
			claimed INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS crew (
			id TEXT PRIMARY KEY,
			role TEXT NOT NULL,
			income_per_second INTEGER NOT NULL,
			hired_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS discoveries (
			name TEXT PRIMARY KEY,
			first_caught_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS wardrobe (
			character_id TEXT PRIMARY KEY
		);`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_caught_at ON inventory(caught_at);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_trigger ON quests(trigger_kind);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release. A save missing them picks up
	// the defaults here; "duplicate column" means it already has them.
	alterStmts := []string{
		`ALTER TABLE session ADD COLUMN energy INTEGER DEFAULT 100;`,
		`ALTER TABLE session ADD COLUMN dock_level INTEGER DEFAULT 1;`,
		`ALTER TABLE session ADD COLUMN boat_level INTEGER DEFAULT 1;`,
		`ALTER TABLE session ADD COLUMN active_character TEXT DEFAULT 'drifter';`,
		`ALTER TABLE session ADD COLUMN player_name TEXT DEFAULT 'Angler';`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
