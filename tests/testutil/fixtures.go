package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/ramorim1998/gerador-times-back/internal/database"
	"github.com/ramorim1998/gerador-times-back/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateGroup inserts a group owned by ownerID with three active members
func (f *Fixtures) CreateGroup(t *testing.T, ownerID string, opts ...GroupOption) *models.Group {
	t.Helper()
	f.counter++

	group := &models.Group{
		Name:    fmt.Sprintf("Test Group %d", f.counter),
		OwnerID: ownerID,
		Members: []models.Member{
			{Name: fmt.Sprintf("Player %d-1", f.counter), Active: true},
			{Name: fmt.Sprintf("Player %d-2", f.counter), Active: true},
			{Name: fmt.Sprintf("Player %d-3", f.counter), Active: true},
		},
	}

	for _, opt := range opts {
		opt(group)
	}

	data, err := json.Marshal(group.Members)
	if err != nil {
		t.Fatalf("failed to encode members: %v", err)
	}

	ctx := context.Background()
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO groups (name, members, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, group.Name, json.RawMessage(data), group.OwnerID).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create group: %v", err)
	}

	return group
}

type GroupOption func(*models.Group)

func WithGroupName(name string) GroupOption {
	return func(g *models.Group) {
		g.Name = name
	}
}

func WithMembers(members ...models.Member) GroupOption {
	return func(g *models.Group) {
		g.Members = members
	}
}

// CreateMatch inserts a finished match owned by ownerID
func (f *Fixtures) CreateMatch(t *testing.T, ownerID string, teamA, teamB []string, scoreA, scoreB int, opts ...MatchOption) *models.Match {
	t.Helper()

	match := &models.Match{
		TeamA:   teamA,
		TeamB:   teamB,
		ScoreA:  scoreA,
		ScoreB:  scoreB,
		Date:    time.Now().UTC(),
		OwnerID: ownerID,
	}

	for _, opt := range opts {
		opt(match)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO matches (team_a, team_b, score_a, score_b, date, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, match.TeamA, match.TeamB, match.ScoreA, match.ScoreB, match.Date, match.OwnerID).Scan(
		&match.ID, &match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	return match
}

type MatchOption func(*models.Match)

// PlayedAt sets the match date
func PlayedAt(date time.Time) MatchOption {
	return func(m *models.Match) {
		m.Date = date
	}
}
