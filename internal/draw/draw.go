// Package draw splits a roster into randomly composed teams.
package draw

import (
	"errors"
	"math/rand"
)

var (
	ErrTooFewTeams   = errors.New("at least two teams are required")
	ErrTooFewPlayers = errors.New("not enough active players for the requested number of teams")
)

// Shuffler is the part of *rand.Rand used by Teams.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Teams shuffles players and deals them round-robin into n teams, so team
// sizes differ by at most one. players is not modified.
func Teams(players []string, n int, rng Shuffler) ([][]string, error) {
	if n < 2 {
		return nil, ErrTooFewTeams
	}
	if len(players) < n {
		return nil, ErrTooFewPlayers
	}

	pool := make([]string, len(players))
	copy(pool, players)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	teams := make([][]string, n)
	for i, p := range pool {
		teams[i%n] = append(teams[i%n], p)
	}
	return teams, nil
}

// NewSource returns a Shuffler seeded with seed.
func NewSource(seed int64) Shuffler {
	return rand.New(rand.NewSource(seed))
}
