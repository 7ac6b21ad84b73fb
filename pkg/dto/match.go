package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateMatchRequest uses pointers for scores so a missing score can be told
// apart from a zero.
type CreateMatchRequest struct {
	TeamA  []string   `json:"teamA"`
	TeamB  []string   `json:"teamB"`
	ScoreA *int       `json:"scoreA"`
	ScoreB *int       `json:"scoreB"`
	Date   *time.Time `json:"date,omitempty"`
}

type MatchResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamA     []string  `json:"teamA"`
	TeamB     []string  `json:"teamB"`
	ScoreA    int       `json:"scoreA"`
	ScoreB    int       `json:"scoreB"`
	Date      time.Time `json:"date"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
