package app

import (
	"github.com/yakoovad/octofit-tracker/internal/api"
	"github.com/yakoovad/octofit-tracker/internal/config"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"go.uber.org/zap"
)

const Version = "v0.1.0"

// NewHandler builds every service over s and returns the HTTP handler serving them.
func NewHandler(cfg *config.Config, l *zap.Logger, s *Storage) *api.Handler {
	store := s.Store

	users := service.NewUserService(s.Tx).WithUserRepo(store.Users)
	teams := service.NewTeamService(s.Tx).WithTeamRepo(store.Teams)
	activities := service.NewActivityService(s.Tx).WithActivityRepo(store.Activities)
	leaderboard := service.NewLeaderboardService(s.Tx).
		WithUserRepo(store.Users).
		WithTeamRepo(store.Teams).
		WithActivityRepo(store.Activities).
		WithLeaderboardRepo(store.Leaderboard)
	workouts := service.NewWorkoutService(s.Tx).WithWorkoutRepo(store.Workouts)
	seed := service.NewSeedService(store)

	return api.NewHandler(l).
		WithHealthChecker(api.MustNewHealthChecker(Version, s.HealthChecks()...)).
		WithUserService(users).
		WithTeamService(teams).
		WithActivityService(activities).
		WithLeaderboardService(leaderboard).
		WithWorkoutService(workouts).
		WithSeedService(seed).
		WithTopLimits(cfg.LeaderboardDefaultLimit, cfg.LeaderboardMaxLimit)
}
