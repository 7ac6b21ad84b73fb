// Package standings ranks teams from a list of match results.
//
// A team is identified by the set of its member names, so the same roster
// listed in a different order counts as the same team. Names are compared
// case-sensitively.
package standings

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ramorim1998/gerador-times-back/internal/models"
)

const (
	PointsWin  = 3
	PointsDraw = 1
)

var ErrInvalidScore = errors.New("invalid score")

type TeamStat struct {
	Team           []string `json:"team"`
	Matches        int      `json:"matches"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	Draws          int      `json:"draws"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	Points         int      `json:"points"`
	GoalDifference int      `json:"goalDifference"`
}

// TeamKey returns the identity key of a roster: the names sorted and joined
// with a comma. A name that itself contains a comma can collide with a
// different roster.
func TeamKey(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// Compute folds matches into one TeamStat per distinct team and returns them
// ordered by points, then goal difference, both descending. Remaining ties
// keep the order in which teams were first seen. The input is not modified.
func Compute(matches []models.Match) ([]TeamStat, error) {
	stats := make([]TeamStat, 0)
	index := make(map[string]int)

	entry := func(team []string) int {
		key := TeamKey(team)
		if i, ok := index[key]; ok {
			return i
		}
		display := make([]string, len(team))
		copy(display, team)
		stats = append(stats, TeamStat{Team: display})
		index[key] = len(stats) - 1
		return len(stats) - 1
	}

	for i, m := range matches {
		if m.ScoreA < 0 || m.ScoreB < 0 {
			return nil, fmt.Errorf("match %d (%s): %w: %d-%d", i, m.ID, ErrInvalidScore, m.ScoreA, m.ScoreB)
		}

		a := entry(m.TeamA)
		b := entry(m.TeamB)

		// a and b may be the same entry; each side is applied independently.
		record(&stats[a], m.ScoreA, m.ScoreB)
		record(&stats[b], m.ScoreB, m.ScoreA)
	}

	for i := range stats {
		s := &stats[i]
		s.Points = s.Wins*PointsWin + s.Draws*PointsDraw
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Points != stats[j].Points {
			return stats[i].Points > stats[j].Points
		}
		return stats[i].GoalDifference > stats[j].GoalDifference
	})

	return stats, nil
}

func record(s *TeamStat, own, opponent int) {
	s.Matches++
	s.GoalsFor += own
	s.GoalsAgainst += opponent
	switch {
	case own > opponent:
		s.Wins++
	case own < opponent:
		s.Losses++
	default:
		s.Draws++
	}
}
