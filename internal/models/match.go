package models

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
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
