package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/db"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/observability"
	"github.com/yakoovad/octofit-tracker/internal/ranking"
	"github.com/yakoovad/octofit-tracker/internal/repository"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

type LeaderboardService struct {
	tx db.Transactor

	users       repository.UserRepository
	teams       repository.TeamRepository
	activities  repository.ActivityRepository
	leaderboard repository.LeaderboardRepository
}

func NewLeaderboardService(tx db.Transactor) *LeaderboardService {
	return &LeaderboardService{tx: tx}
}

func (s *LeaderboardService) List(ctx context.Context) ([]*model.LeaderboardEntry, *Error) {
	entries, err := s.leaderboard.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list leaderboard", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list leaderboard")
	}
	return mapAll(entries, toModelEntry), nil
}

func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]*model.LeaderboardEntry, *Error) {
	entries, err := s.leaderboard.Top(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get top of leaderboard", zap.Int("limit", limit), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get leaderboard")
	}
	return mapAll(entries, toModelEntry), nil
}

func (s *LeaderboardService) Get(ctx context.Context, id string) (*model.LeaderboardEntry, *Error) {
	entry, err := s.leaderboard.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "leaderboard entry not found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get leaderboard entry")
	}
	return toModelEntry(entry), nil
}

// Update overwrites a single entry. The next recompute replaces it again.
func (s *LeaderboardService) Update(ctx context.Context, id string, entry *model.LeaderboardEntry) *Error {
	row := &repository.LeaderboardEntry{
		ID:              id,
		UserEmail:       entry.UserEmail,
		UserName:        entry.UserName,
		Team:            entry.Team,
		TotalCalories:   entry.TotalCalories,
		TotalActivities: entry.TotalActivities,
		Rank:            entry.Rank,
	}
	err := s.leaderboard.Update(ctx, row)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "leaderboard entry not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update leaderboard entry", zap.String("entry_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to update leaderboard entry")
	}

	entry.ID = id
	return nil
}

func (s *LeaderboardService) Delete(ctx context.Context, id string) *Error {
	err := s.leaderboard.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "leaderboard entry not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete leaderboard entry", zap.String("entry_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete leaderboard entry")
	}

	observability.RecordDeleted("leaderboard_entry")
	return nil
}

// Recompute rebuilds the leaderboard from every stored activity and refreshes team points.
// Readers see either the old or the new snapshot when the store supports transactions.
func (s *LeaderboardService) Recompute(ctx context.Context) ([]*model.LeaderboardEntry, *Error) {
	l := logger.FromContext(ctx)

	var entries []*model.LeaderboardEntry
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		users, err := s.users.List(txCtx)
		if err != nil {
			return errors.Wrap(err, "list users")
		}
		activities, err := s.activities.List(txCtx)
		if err != nil {
			return errors.Wrap(err, "list activities")
		}
		teams, err := s.teams.List(txCtx)
		if err != nil {
			return errors.Wrap(err, "list teams")
		}

		entries = ranking.Recompute(mapAll(users, toModelUser), mapAll(activities, toModelActivity))

		if err = replaceEntries(txCtx, s.leaderboard, entries); err != nil {
			return err
		}
		_, err = storeTeamPoints(txCtx, s.teams, teams, entries)
		return err
	})
	if err != nil {
		l.Error("failed to recompute leaderboard", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to recompute leaderboard")
	}

	observability.RecordRecompute(time.Now(), len(entries))
	l.Info("leaderboard recomputed", zap.Int("entries", len(entries)))
	return entries, nil
}

// replaceEntries swaps the stored leaderboard for entries and fills in their ids
func replaceEntries(ctx context.Context, repo repository.LeaderboardRepository, entries []*model.LeaderboardEntry) error {
	if err := repo.DeleteAll(ctx); err != nil {
		return errors.Wrap(err, "clear leaderboard")
	}

	for _, e := range entries {
		row := &repository.LeaderboardEntry{
			UserEmail:       e.UserEmail,
			UserName:        e.UserName,
			Team:            e.Team,
			TotalCalories:   e.TotalCalories,
			TotalActivities: e.TotalActivities,
			Rank:            e.Rank,
		}
		if err := repo.Create(ctx, row); err != nil {
			return errors.Wrapf(err, "create leaderboard entry for %s", e.UserEmail)
		}
		e.ID = row.ID
	}
	return nil
}

func storeTeamPoints(ctx context.Context, repo repository.TeamRepository, teams []*repository.Team, entries []*model.LeaderboardEntry) (map[string]int, error) {
	points := make(map[string]int, len(teams))
	for _, team := range teams {
		p := ranking.RollupTeamPoints(team.Name, entries)
		if err := repo.SetTotalPoints(ctx, team.ID, p); err != nil {
			return nil, errors.Wrapf(err, "set points of team %s", team.Name)
		}
		points[team.Name] = p
		observability.RecordTeamPoints(team.Name, p)
	}
	return points, nil
}

func (s *LeaderboardService) WithUserRepo(r repository.UserRepository) *LeaderboardService {
	s.users = r
	return s
}

func (s *LeaderboardService) WithTeamRepo(r repository.TeamRepository) *LeaderboardService {
	s.teams = r
	return s
}

func (s *LeaderboardService) WithActivityRepo(r repository.ActivityRepository) *LeaderboardService {
	s.activities = r
	return s
}

func (s *LeaderboardService) WithLeaderboardRepo(r repository.LeaderboardRepository) *LeaderboardService {
	s.leaderboard = r
	return s
}
