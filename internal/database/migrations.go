package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS groups (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		members JSONB NOT NULL DEFAULT '[]',
		owner_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		team_a TEXT[] NOT NULL,
		team_b TEXT[] NOT NULL,
		score_a INTEGER NOT NULL CHECK (score_a >= 0),
		score_b INTEGER NOT NULL CHECK (score_b >= 0),
		date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		owner_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_groups_owner_id ON groups(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_owner_id ON matches(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_owner_date ON matches(owner_id, date DESC)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
