// Package ranking derives leaderboard entries and team points from raw activity history.
package ranking

import (
	"cmp"
	"slices"

	"github.com/yakoovad/octofit-tracker/internal/model"
)

type totals struct {
	calories   int
	activities int
}

// Recompute builds one entry per user and ranks them by total calories, highest first.
// Ranks are dense and 1-based. Users with equal totals keep their relative input order.
func Recompute(users []*model.User, activities []*model.Activity) []*model.LeaderboardEntry {
	byEmail := make(map[string]*totals, len(users))
	for _, u := range users {
		byEmail[u.Email] = &totals{}
	}
	for _, a := range activities {
		// activities of unknown users are ignored
		if t, ok := byEmail[a.UserEmail]; ok {
			t.calories += a.Calories
			t.activities++
		}
	}

	entries := make([]*model.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		t := byEmail[u.Email]
		entries = append(entries, &model.LeaderboardEntry{
			UserEmail:       u.Email,
			UserName:        u.Name,
			Team:            u.Team,
			TotalCalories:   t.calories,
			TotalActivities: t.activities,
		})
	}

	slices.SortStableFunc(entries, func(a, b *model.LeaderboardEntry) int {
		return cmp.Compare(b.TotalCalories, a.TotalCalories)
	})
	for i, e := range entries {
		e.Rank = i + 1
	}

	return entries
}

// RollupTeamPoints sums total calories of the entries belonging to teamName.
func RollupTeamPoints(teamName string, entries []*model.LeaderboardEntry) int {
	points := 0
	for _, e := range entries {
		if e.Team == teamName {
			points += e.TotalCalories
		}
	}
	return points
}
