package service

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/db"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/observability"
	"github.com/yakoovad/octofit-tracker/internal/repository"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

type TeamService struct {
	tx db.Transactor

	teams repository.TeamRepository
}

func NewTeamService(tx db.Transactor) *TeamService {
	return &TeamService{
		tx: tx,
	}
}

func (t *TeamService) List(ctx context.Context) ([]*model.Team, *Error) {
	teams, err := t.teams.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list teams", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}
	return mapAll(teams, toModelTeam), nil
}

func (t *TeamService) Create(ctx context.Context, team *model.Team) *Error {
	l := logger.FromContext(ctx)
	l.Info("adding team", zap.String("team_name", team.Name), zap.Strings("members", team.Members))

	if team.Members == nil {
		team.Members = []string{}
	}
	row := &repository.Team{
		Name:        team.Name,
		Members:     team.Members,
		TotalPoints: team.TotalPoints,
	}
	err := t.teams.Create(ctx, row)
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("team already exists", zap.String("team_name", team.Name))
		return NewError(ErrorCodeTeamExists, "team name already exists")
	}
	if err != nil {
		l.Error("failed to create team", zap.String("team_name", team.Name), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to create team")
	}

	team.ID = row.ID
	observability.RecordCreated("team")
	return nil
}

func (t *TeamService) Get(ctx context.Context, id string) (*model.Team, *Error) {
	team, err := t.teams.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get team")
	}
	return toModelTeam(team), nil
}

func (t *TeamService) Update(ctx context.Context, id string, team *model.Team) *Error {
	l := logger.FromContext(ctx)

	if team.Members == nil {
		team.Members = []string{}
	}
	row := &repository.Team{
		ID:          id,
		Name:        team.Name,
		Members:     team.Members,
		TotalPoints: team.TotalPoints,
	}
	err := t.teams.Update(ctx, row)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "team not found")
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("team already exists", zap.String("team_name", team.Name))
		return NewError(ErrorCodeTeamExists, "team name already exists")
	}
	if err != nil {
		l.Error("failed to update team", zap.String("team_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to update team")
	}

	team.ID = id
	return nil
}

func (t *TeamService) Delete(ctx context.Context, id string) *Error {
	err := t.teams.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete team", zap.String("team_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete team")
	}

	observability.RecordDeleted("team")
	return nil
}

// AddMember appends email to the team's member list unless it is already there
func (t *TeamService) AddMember(ctx context.Context, id, email string) (*model.Team, *Error) {
	l := logger.FromContext(ctx)

	var res *model.Team
	err := t.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		team, err := t.teams.Get(txCtx, id)
		if errors.Is(err, repository.ErrNotFound) {
			l.Warn("team not found", zap.String("team_id", id))
			return NewError(ErrorCodeNotFound, "team not found")
		}
		if err != nil {
			l.Error("failed to get team", zap.String("team_id", id), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to get team")
		}

		if !slices.Contains(team.Members, email) {
			team.Members = append(team.Members, email)
			if err = t.teams.SetMembers(txCtx, id, team.Members); err != nil {
				l.Error("failed to update team members", zap.String("team_id", id), zap.Error(err))
				return NewError(ErrorCodeUnspecified, "failed to update team members")
			}
		}

		res = toModelTeam(team)
		return nil
	})

	if err != nil {
		var svcErr *Error
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, NewError(ErrorCodeUnspecified, "failed to add member")
	}

	l.Debug("member added", zap.String("team_id", id), zap.String("email", email))
	return res, nil
}

func (t *TeamService) WithTeamRepo(r repository.TeamRepository) *TeamService {
	t.teams = r
	return t
}
