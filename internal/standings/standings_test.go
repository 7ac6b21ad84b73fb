package standings

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/ramorim1998/gerador-times-back/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(teamA, teamB []string, scoreA, scoreB int) models.Match {
	return models.Match{
		ID:     uuid.New(),
		TeamA:  teamA,
		TeamB:  teamB,
		ScoreA: scoreA,
		ScoreB: scoreB,
	}
}

func TestTeamKey_OrderIndependent(t *testing.T) {
	assert.Equal(t, TeamKey([]string{"Alice", "Bob"}), TeamKey([]string{"Bob", "Alice"}))
	assert.Equal(t, "Alice,Bob", TeamKey([]string{"Bob", "Alice"}))
}

func TestTeamKey_CaseSensitive(t *testing.T) {
	assert.NotEqual(t, TeamKey([]string{"alice"}), TeamKey([]string{"Alice"}))
}

func TestTeamKey_DoesNotMutateInput(t *testing.T) {
	names := []string{"Zoe", "Amy"}
	_ = TeamKey(names)
	assert.Equal(t, []string{"Zoe", "Amy"}, names)
}

func TestTeamKey_CommaCollision(t *testing.T) {
	// Names containing the separator are not escaped.
	assert.Equal(t, TeamKey([]string{"A,B"}), TeamKey([]string{"A", "B"}))
}

func TestCompute_Empty(t *testing.T) {
	stats, err := Compute(nil)
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestCompute_SingleWin(t *testing.T) {
	stats, err := Compute([]models.Match{
		match([]string{"Alice", "Bob"}, []string{"Cara", "Dan"}, 3, 1),
	})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, TeamStat{
		Team: []string{"Alice", "Bob"}, Matches: 1, Wins: 1, GoalsFor: 3, GoalsAgainst: 1,
		Points: 3, GoalDifference: 2,
	}, stats[0])
	assert.Equal(t, TeamStat{
		Team: []string{"Cara", "Dan"}, Matches: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 3,
		Points: 0, GoalDifference: -2,
	}, stats[1])
}

func TestCompute_SameTeamsSplitResults(t *testing.T) {
	matches := []models.Match{
		match([]string{"Alice", "Bob"}, []string{"Cara", "Dan"}, 2, 1),
		match([]string{"Dan", "Cara"}, []string{"Bob", "Alice"}, 2, 1),
	}

	first, err := Compute(matches)
	require.NoError(t, err)
	require.Len(t, first, 2)

	for _, s := range first {
		assert.Equal(t, 2, s.Matches)
		assert.Equal(t, 1, s.Wins)
		assert.Equal(t, 1, s.Losses)
		assert.Equal(t, 3, s.Points)
		assert.Equal(t, 0, s.GoalDifference)
	}

	second, err := Compute(matches)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// Tied teams stay in first-seen order.
	assert.Equal(t, []string{"Alice", "Bob"}, first[0].Team)
}

func TestCompute_Draw(t *testing.T) {
	stats, err := Compute([]models.Match{
		match([]string{"Alice"}, []string{"Bob"}, 2, 2),
	})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	for _, s := range stats {
		assert.Equal(t, 1, s.Draws)
		assert.Equal(t, 1, s.Points)
		assert.Equal(t, 0, s.GoalDifference)
	}
}

func TestCompute_DisplayOrderFromFirstMatch(t *testing.T) {
	stats, err := Compute([]models.Match{
		match([]string{"Bob", "Alice"}, []string{"Cara"}, 1, 0),
		match([]string{"Alice", "Bob"}, []string{"Cara"}, 1, 0),
	})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, []string{"Bob", "Alice"}, stats[0].Team)
	assert.Equal(t, 2, stats[0].Wins)
}

func TestCompute_GoalDifferenceBreaksTie(t *testing.T) {
	stats, err := Compute([]models.Match{
		match([]string{"A"}, []string{"B"}, 1, 0),
		match([]string{"C"}, []string{"D"}, 5, 0),
	})
	require.NoError(t, err)
	require.Len(t, stats, 4)

	assert.Equal(t, []string{"C"}, stats[0].Team)
	assert.Equal(t, []string{"A"}, stats[1].Team)
	assert.Equal(t, []string{"B"}, stats[2].Team)
	assert.Equal(t, []string{"D"}, stats[3].Team)
}

func TestCompute_SelfMatchDoesNotPanic(t *testing.T) {
	stats, err := Compute([]models.Match{
		match([]string{"Alice", "Bob"}, []string{"Bob", "Alice"}, 3, 1),
	})
	require.NoError(t, err)
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, 2, s.Matches)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 4, s.GoalsFor)
	assert.Equal(t, 4, s.GoalsAgainst)
}

func TestCompute_NegativeScore(t *testing.T) {
	_, err := Compute([]models.Match{
		match([]string{"A"}, []string{"B"}, 1, 0),
		match([]string{"A"}, []string{"B"}, -1, 0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScore))
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	teamA := []string{"Zed", "Amy"}
	matches := []models.Match{match(teamA, []string{"Bo"}, 1, 0)}

	stats, err := Compute(matches)
	require.NoError(t, err)

	stats[0].Team[0] = "changed"
	assert.Equal(t, []string{"Zed", "Amy"}, matches[0].TeamA)
}

func TestCompute_Properties(t *testing.T) {
	pool := []string{"Ana", "Beto", "Caio", "Duda", "Edu", "Fabi"}
	rng := rand.New(rand.NewSource(42))

	pick := func() []string {
		n := 1 + rng.Intn(3)
		perm := rng.Perm(len(pool))[:n]
		team := make([]string, n)
		for i, p := range perm {
			team[i] = pool[p]
		}
		return team
	}

	for round := 0; round < 50; round++ {
		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			matches := make([]models.Match, rng.Intn(30))
			keys := map[string]struct{}{}
			appearances := map[string]int{}
			for i := range matches {
				matches[i] = match(pick(), pick(), rng.Intn(6), rng.Intn(6))
				ka, kb := TeamKey(matches[i].TeamA), TeamKey(matches[i].TeamB)
				keys[ka] = struct{}{}
				keys[kb] = struct{}{}
				appearances[ka]++
				appearances[kb]++
			}

			stats, err := Compute(matches)
			require.NoError(t, err)
			assert.Len(t, stats, len(keys))

			goalsFor, goalsAgainst := 0, 0
			for i, s := range stats {
				assert.Equal(t, appearances[TeamKey(s.Team)], s.Matches)
				assert.Equal(t, s.Matches, s.Wins+s.Losses+s.Draws)
				assert.Equal(t, 3*s.Wins+s.Draws, s.Points)
				assert.Equal(t, s.GoalsFor-s.GoalsAgainst, s.GoalDifference)
				goalsFor += s.GoalsFor
				goalsAgainst += s.GoalsAgainst

				if i > 0 {
					prev := stats[i-1]
					ordered := prev.Points > s.Points ||
						(prev.Points == s.Points && prev.GoalDifference >= s.GoalDifference)
					assert.True(t, ordered, "entries %d and %d out of order", i-1, i)
				}
			}
			assert.Equal(t, goalsFor, goalsAgainst)
		})
	}
}
