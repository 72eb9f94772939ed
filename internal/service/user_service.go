package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/db"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/observability"
	"github.com/yakoovad/octofit-tracker/internal/repository"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

type UserService struct {
	tx db.Transactor

	users repository.UserRepository
}

func NewUserService(tx db.Transactor) *UserService {
	return &UserService{tx: tx}
}

func (u *UserService) List(ctx context.Context) ([]*model.User, *Error) {
	users, err := u.users.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list users", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list users")
	}
	return mapAll(users, toModelUser), nil
}

func (u *UserService) Create(ctx context.Context, user *model.User) *Error {
	l := logger.FromContext(ctx)

	row := &repository.User{Name: user.Name, Email: user.Email, Team: user.Team}
	err := u.users.Create(ctx, row)
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("user already exists", zap.String("email", user.Email))
		return NewError(ErrorCodeUserExists, "user with this email already exists")
	}
	if err != nil {
		l.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to create user")
	}

	user.ID = row.ID
	observability.RecordCreated("user")
	return nil
}

func (u *UserService) Get(ctx context.Context, id string) (*model.User, *Error) {
	user, err := u.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "user not found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get user")
	}
	return toModelUser(user), nil
}

func (u *UserService) GetByEmail(ctx context.Context, email string) (*model.User, *Error) {
	user, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "user not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get user by email", zap.String("email", email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get user")
	}
	return toModelUser(user), nil
}

// Update replaces every field of the user with id
func (u *UserService) Update(ctx context.Context, id string, user *model.User) *Error {
	l := logger.FromContext(ctx)

	row := &repository.User{ID: id, Name: user.Name, Email: user.Email, Team: user.Team}
	err := u.users.Update(ctx, row)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "user not found")
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("user already exists", zap.String("email", user.Email))
		return NewError(ErrorCodeUserExists, "user with this email already exists")
	}
	if err != nil {
		l.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to update user")
	}

	user.ID = id
	return nil
}

func (u *UserService) Delete(ctx context.Context, id string) *Error {
	err := u.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "user not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete user", zap.String("user_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete user")
	}

	observability.RecordDeleted("user")
	return nil
}

func (u *UserService) WithUserRepo(userRepo repository.UserRepository) *UserService {
	u.users = userRepo
	return u
}
