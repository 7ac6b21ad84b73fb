package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ramorim1998/gerador-times-back/internal/database"
	"github.com/ramorim1998/gerador-times-back/internal/models"
)

type MatchService struct {
	db *database.DB
}

func NewMatchService(db *database.DB) *MatchService {
	return &MatchService{db: db}
}

// Create stores a match result. A nil date defaults to the insert time.
func (s *MatchService) Create(ctx context.Context, ownerID string, teamA, teamB []string, scoreA, scoreB int, date *time.Time) (*models.Match, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO matches (team_a, team_b, score_a, score_b, date, owner_id)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), $6)
		RETURNING id, team_a, team_b, score_a, score_b, date, owner_id, created_at, updated_at
	`, teamA, teamB, scoreA, scoreB, date, ownerID)

	match, err := scanMatch(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

func (s *MatchService) ListByOwner(ctx context.Context, ownerID string) ([]models.Match, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, team_a, team_b, score_a, score_b, date, owner_id, created_at, updated_at
		FROM matches WHERE owner_id = $1
		ORDER BY date DESC, created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func (s *MatchService) GetByID(ctx context.Context, ownerID string, matchID uuid.UUID) (*models.Match, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT id, team_a, team_b, score_a, score_b, date, owner_id, created_at, updated_at
		FROM matches WHERE id = $1 AND owner_id = $2
	`, matchID, ownerID)

	match, err := scanMatch(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

func (s *MatchService) Delete(ctx context.Context, ownerID string, matchID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM matches WHERE id = $1 AND owner_id = $2`, matchID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMatch(row pgx.Row) (*models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID, &m.TeamA, &m.TeamB, &m.ScoreA, &m.ScoreB,
		&m.Date, &m.OwnerID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
