package dto

import (
	"time"

	"github.com/google/uuid"
)

type MemberPayload struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CreateGroupRequest struct {
	Name    string          `json:"name"`
	Members []MemberPayload `json:"members"`
}

type UpdateGroupRequest struct {
	Name    string          `json:"name"`
	Members []MemberPayload `json:"members"`
}

type GroupResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Members   []MemberPayload `json:"members"`
	OwnerID   string          `json:"ownerId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type DrawTeamsRequest struct {
	Teams int    `json:"teams"`
	Seed  *int64 `json:"seed,omitempty"`
}

type DrawTeamsResponse struct {
	GroupID uuid.UUID  `json:"groupId"`
	Teams   [][]string `json:"teams"`
	Seed    int64      `json:"seed"`
}
