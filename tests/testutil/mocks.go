package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ramorim1998/gerador-times-back/internal/models"
	"github.com/ramorim1998/gerador-times-back/internal/standings"
	"github.com/stretchr/testify/mock"
)

// MockGroupService mocks the GroupService
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) Create(ctx context.Context, ownerID, name string, members []models.Member) (*models.Group, error) {
	args := m.Called(ctx, ownerID, name, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupService) ListByOwner(ctx context.Context, ownerID string) ([]models.Group, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupService) GetByID(ctx context.Context, ownerID string, groupID uuid.UUID) (*models.Group, error) {
	args := m.Called(ctx, ownerID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupService) Update(ctx context.Context, ownerID string, groupID uuid.UUID, name string, members []models.Member) (*models.Group, error) {
	args := m.Called(ctx, ownerID, groupID, name, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupService) Delete(ctx context.Context, ownerID string, groupID uuid.UUID) error {
	args := m.Called(ctx, ownerID, groupID)
	return args.Error(0)
}

// MockMatchService mocks the MatchService
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Create(ctx context.Context, ownerID string, teamA, teamB []string, scoreA, scoreB int, date *time.Time) (*models.Match, error) {
	args := m.Called(ctx, ownerID, teamA, teamB, scoreA, scoreB, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) ListByOwner(ctx context.Context, ownerID string) ([]models.Match, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Match), args.Error(1)
}

func (m *MockMatchService) GetByID(ctx context.Context, ownerID string, matchID uuid.UUID) (*models.Match, error) {
	args := m.Called(ctx, ownerID, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) Delete(ctx context.Context, ownerID string, matchID uuid.UUID) error {
	args := m.Called(ctx, ownerID, matchID)
	return args.Error(0)
}

// MockStatsService mocks the StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Standings(ctx context.Context, ownerID string) ([]standings.TeamStat, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]standings.TeamStat), args.Error(1)
}
