package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ramorim1998/gerador-times-back/internal/database"
	"github.com/ramorim1998/gerador-times-back/internal/models"
)

type GroupService struct {
	db *database.DB
}

func NewGroupService(db *database.DB) *GroupService {
	return &GroupService{db: db}
}

func (s *GroupService) Create(ctx context.Context, ownerID, name string, members []models.Member) (*models.Group, error) {
	data, err := encodeMembers(members)
	if err != nil {
		return nil, err
	}

	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO groups (name, members, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, members, owner_id, created_at, updated_at
	`, name, data, ownerID)

	group, err := scanGroup(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *GroupService) ListByOwner(ctx context.Context, ownerID string) ([]models.Group, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, members, owner_id, created_at, updated_at
		FROM groups WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, rows.Err()
}

func (s *GroupService) GetByID(ctx context.Context, ownerID string, groupID uuid.UUID) (*models.Group, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, members, owner_id, created_at, updated_at
		FROM groups WHERE id = $1 AND owner_id = $2
	`, groupID, ownerID)

	group, err := scanGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// Update replaces the name and the whole member list.
func (s *GroupService) Update(ctx context.Context, ownerID string, groupID uuid.UUID, name string, members []models.Member) (*models.Group, error) {
	data, err := encodeMembers(members)
	if err != nil {
		return nil, err
	}

	row := s.db.Pool.QueryRow(ctx, `
		UPDATE groups SET name = $1, members = $2, updated_at = NOW()
		WHERE id = $3 AND owner_id = $4
		RETURNING id, name, members, owner_id, created_at, updated_at
	`, name, data, groupID, ownerID)

	group, err := scanGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

func (s *GroupService) Delete(ctx context.Context, ownerID string, groupID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM groups WHERE id = $1 AND owner_id = $2`, groupID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeMembers(members []models.Member) (json.RawMessage, error) {
	if members == nil {
		members = []models.Member{}
	}
	data, err := json.Marshal(members)
	if err != nil {
		return nil, fmt.Errorf("failed to encode members: %w", err)
	}
	return data, nil
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	var group models.Group
	var members []byte
	if err := row.Scan(&group.ID, &group.Name, &members, &group.OwnerID, &group.CreatedAt, &group.UpdatedAt); err != nil {
		return nil, err
	}
	group.Members = []models.Member{}
	if len(members) > 0 {
		if err := json.Unmarshal(members, &group.Members); err != nil {
			return nil, fmt.Errorf("failed to decode members: %w", err)
		}
	}
	return &group, nil
}
