package services

import (
	"context"
	"fmt"

	"github.com/ramorim1998/gerador-times-back/internal/models"
	"github.com/ramorim1998/gerador-times-back/internal/standings"
)

type MatchLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Match, error)
}

type StatsService struct {
	matches MatchLister
}

func NewStatsService(matches MatchLister) *StatsService {
	return &StatsService{matches: matches}
}

// Standings ranks every team found in the owner's matches.
func (s *StatsService) Standings(ctx context.Context, ownerID string) ([]standings.TeamStat, error) {
	matches, err := s.matches.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats, err := standings.Compute(matches)
	if err != nil {
		return nil, fmt.Errorf("failed to compute standings: %w", err)
	}
	return stats, nil
}
