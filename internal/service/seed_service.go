package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/observability"
	"github.com/yakoovad/octofit-tracker/internal/ranking"
	"github.com/yakoovad/octofit-tracker/internal/repository"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

// Rand is the source of randomness for generated activities. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// SeedService wipes the store and fills it with the demo dataset. It is not atomic:
// a failure part way through leaves whatever was already written.
type SeedService struct {
	store *repository.Store

	rng Rand
	now func() time.Time
}

func NewSeedService(store *repository.Store) *SeedService {
	return &SeedService{
		store: store,
		rng:   globalRand{},
		now:   time.Now,
	}
}

func (s *SeedService) WithRand(r Rand) *SeedService {
	s.rng = r
	return s
}

func (s *SeedService) WithClock(now func() time.Time) *SeedService {
	s.now = now
	return s
}

func (s *SeedService) Populate(ctx context.Context) (*model.SeedSummary, *Error) {
	l := logger.FromContext(ctx)

	summary, err := s.populate(ctx)
	if err != nil {
		l.Error("failed to populate store", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, errors.Wrap(err, "populate").Error())
	}

	observability.RecordSeed()
	l.Info("store populated",
		zap.Int("users", summary.Users),
		zap.Int("teams", summary.Teams),
		zap.Int("activities", summary.Activities),
		zap.Int("leaderboard_entries", summary.LeaderboardEntries),
		zap.Int("workouts", summary.Workouts),
		zap.Any("team_points", summary.TeamPoints))

	return summary, nil
}

func (s *SeedService) populate(ctx context.Context) (*model.SeedSummary, error) {
	l := logger.FromContext(ctx)

	l.Debug("clearing existing data")
	if err := s.clear(ctx); err != nil {
		return nil, err
	}

	teams := make([]*repository.Team, 0, len(seedTeams))
	for _, st := range seedTeams {
		team := &repository.Team{Name: st.name, Members: []string{}}
		if err := s.store.Teams.Create(ctx, team); err != nil {
			return nil, errors.Wrapf(err, "create team %s", st.name)
		}
		teams = append(teams, team)
	}

	var users []*model.User
	for i, st := range seedTeams {
		members := make([]string, 0, len(st.members))
		for _, su := range st.members {
			user := &repository.User{Name: su.name, Email: su.email, Team: st.name}
			if err := s.store.Users.Create(ctx, user); err != nil {
				return nil, errors.Wrapf(err, "create user %s", su.email)
			}
			users = append(users, toModelUser(user))
			members = append(members, user.Email)
		}

		if err := s.store.Teams.SetMembers(ctx, teams[i].ID, members); err != nil {
			return nil, errors.Wrapf(err, "set members of team %s", st.name)
		}
		teams[i].Members = members
	}

	now := s.now()
	var activities []*model.Activity
	for _, u := range users {
		n := minActivitiesPerUser + s.rng.IntN(maxActivitiesPerUser-minActivitiesPerUser+1)
		for range n {
			activity := s.randomActivity(u.Email, now)
			if err := s.store.Activities.Create(ctx, activity); err != nil {
				return nil, errors.Wrapf(err, "create activity for %s", u.Email)
			}
			activities = append(activities, toModelActivity(activity))
		}
	}

	entries := ranking.Recompute(users, activities)
	if err := replaceEntries(ctx, s.store.Leaderboard, entries); err != nil {
		return nil, err
	}

	for _, w := range seedWorkouts {
		workout := w
		if err := s.store.Workouts.Create(ctx, &workout); err != nil {
			return nil, errors.Wrapf(err, "create workout %s", w.Name)
		}
	}

	points, err := storeTeamPoints(ctx, s.store.Teams, teams, entries)
	if err != nil {
		return nil, err
	}

	return s.summarize(ctx, points)
}

func (s *SeedService) randomActivity(email string, now time.Time) *repository.Activity {
	kind := ActivityTypes[s.rng.IntN(len(ActivityTypes))]
	duration := minDurationMinutes + s.rng.IntN(maxDurationMinutes-minDurationMinutes+1)
	daysAgo := s.rng.IntN(maxDaysAgo + 1)

	return &repository.Activity{
		UserEmail:    email,
		ActivityType: kind.Name,
		Duration:     duration,
		Calories:     duration * kind.CaloriesPerMinute,
		Date:         now.AddDate(0, 0, -daysAgo),
	}
}

func (s *SeedService) clear(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", s.store.Users.DeleteAll},
		{"teams", s.store.Teams.DeleteAll},
		{"activities", s.store.Activities.DeleteAll},
		{"leaderboard", s.store.Leaderboard.DeleteAll},
		{"workouts", s.store.Workouts.DeleteAll},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return errors.Wrapf(err, "clear %s", step.name)
		}
	}
	return nil
}

func (s *SeedService) summarize(ctx context.Context, points map[string]int) (*model.SeedSummary, error) {
	summary := &model.SeedSummary{TeamPoints: points}

	counts := []struct {
		name string
		dst  *int
		fn   func(context.Context) (int, error)
	}{
		{"users", &summary.Users, s.store.Users.Count},
		{"teams", &summary.Teams, s.store.Teams.Count},
		{"activities", &summary.Activities, s.store.Activities.Count},
		{"leaderboard", &summary.LeaderboardEntries, s.store.Leaderboard.Count},
		{"workouts", &summary.Workouts, s.store.Workouts.Count},
	}

	for _, c := range counts {
		n, err := c.fn(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "count %s", c.name)
		}
		*c.dst = n
	}
	return summary, nil
}
