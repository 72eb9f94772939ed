package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/octofit-tracker/internal/repository"
)

func newTestSeedService(store *repository.Store, now time.Time) *SeedService {
	return NewSeedService(store).
		WithRand(rand.New(rand.NewPCG(1, 2))).
		WithClock(func() time.Time { return now })
}

func TestSeedService_Populate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore()

	summary, err := newTestSeedService(store, now).Populate(ctx)
	require.Nil(t, err)

	assert.Equal(t, 2, summary.Teams)
	assert.Equal(t, 12, summary.Users)
	assert.Equal(t, 12, summary.LeaderboardEntries)
	assert.Equal(t, 10, summary.Workouts)
	assert.GreaterOrEqual(t, summary.Activities, 12*minActivitiesPerUser)
	assert.LessOrEqual(t, summary.Activities, 12*maxActivitiesPerUser)

	t.Run("activities follow the catalog", func(t *testing.T) {
		rates := make(map[string]int, len(ActivityTypes))
		for _, at := range ActivityTypes {
			rates[at.Name] = at.CaloriesPerMinute
		}

		activities, listErr := store.Activities.List(ctx)
		require.NoError(t, listErr)

		perUser := map[string]int{}
		for _, a := range activities {
			rate, ok := rates[a.ActivityType]
			require.True(t, ok, "unknown activity type %q", a.ActivityType)
			assert.Equal(t, a.Duration*rate, a.Calories)
			assert.GreaterOrEqual(t, a.Duration, minDurationMinutes)
			assert.LessOrEqual(t, a.Duration, maxDurationMinutes)
			assert.False(t, a.Date.After(now))
			assert.False(t, a.Date.Before(now.AddDate(0, 0, -maxDaysAgo)))
			perUser[a.UserEmail]++
		}

		assert.Len(t, perUser, 12)
		for email, n := range perUser {
			assert.GreaterOrEqual(t, n, minActivitiesPerUser, email)
			assert.LessOrEqual(t, n, maxActivitiesPerUser, email)
		}
	})

	t.Run("team members and points are filled in", func(t *testing.T) {
		teams, listErr := store.Teams.List(ctx)
		require.NoError(t, listErr)
		require.Len(t, teams, 2)

		entries, listErr := store.Leaderboard.List(ctx)
		require.NoError(t, listErr)

		for _, team := range teams {
			assert.Len(t, team.Members, 6)

			expected := 0
			for _, e := range entries {
				if e.Team == team.Name {
					expected += e.TotalCalories
				}
			}
			assert.Equal(t, expected, team.TotalPoints)
			assert.Equal(t, expected, summary.TeamPoints[team.Name])
		}
	})

	t.Run("leaderboard is ranked", func(t *testing.T) {
		entries, listErr := store.Leaderboard.List(ctx)
		require.NoError(t, listErr)

		for i, e := range entries {
			assert.Equal(t, i+1, e.Rank)
			if i > 0 {
				assert.GreaterOrEqual(t, entries[i-1].TotalCalories, e.TotalCalories)
			}
		}
	})
}

func TestSeedService_PopulateTwice(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := newTestSeedService(store, time.Now())

	_, err := svc.Populate(ctx)
	require.Nil(t, err)

	summary, err := svc.Populate(ctx)
	require.Nil(t, err)

	assert.Equal(t, 2, summary.Teams)
	assert.Equal(t, 12, summary.Users)
	assert.Equal(t, 12, summary.LeaderboardEntries)
	assert.Equal(t, 10, summary.Workouts)

	user, getErr := store.Users.GetByEmail(ctx, "tony.stark@marvel.com")
	require.NoError(t, getErr)
	assert.Equal(t, "Iron Man", user.Name)
	assert.Equal(t, "Team Marvel", user.Team)
}
