package models

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Members   []Member  `json:"members"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActiveMembers returns the names of active members in roster order.
func (g *Group) ActiveMembers() []string {
	var names []string
	for _, m := range g.Members {
		if m.Active {
			names = append(names, m.Name)
		}
	}
	return names
}
