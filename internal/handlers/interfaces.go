package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ramorim1998/gerador-times-back/internal/models"
	"github.com/ramorim1998/gerador-times-back/internal/standings"
)

// GroupServiceInterface defines the methods used by handlers from GroupService
type GroupServiceInterface interface {
	Create(ctx context.Context, ownerID, name string, members []models.Member) (*models.Group, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Group, error)
	GetByID(ctx context.Context, ownerID string, groupID uuid.UUID) (*models.Group, error)
	Update(ctx context.Context, ownerID string, groupID uuid.UUID, name string, members []models.Member) (*models.Group, error)
	Delete(ctx context.Context, ownerID string, groupID uuid.UUID) error
}

// MatchServiceInterface defines the methods used by handlers from MatchService
type MatchServiceInterface interface {
	Create(ctx context.Context, ownerID string, teamA, teamB []string, scoreA, scoreB int, date *time.Time) (*models.Match, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Match, error)
	GetByID(ctx context.Context, ownerID string, matchID uuid.UUID) (*models.Match, error)
	Delete(ctx context.Context, ownerID string, matchID uuid.UUID) error
}

// StatsServiceInterface defines the methods used by handlers from StatsService
type StatsServiceInterface interface {
	Standings(ctx context.Context, ownerID string) ([]standings.TeamStat, error)
}
