package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yakoovad/octofit-tracker/internal/repository"
)

type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func mockList[T any](args mock.Arguments) ([]*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func mockOne[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *repository.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id string) (*repository.User, error) {
	return mockOne[repository.User](m.Called(ctx, id))
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	return mockOne[repository.User](m.Called(ctx, email))
}

func (m *MockUserRepository) List(ctx context.Context) ([]*repository.User, error) {
	return mockList[repository.User](m.Called(ctx))
}

func (m *MockUserRepository) Update(ctx context.Context, user *repository.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *repository.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Get(ctx context.Context, id string) (*repository.Team, error) {
	return mockOne[repository.Team](m.Called(ctx, id))
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*repository.Team, error) {
	return mockList[repository.Team](m.Called(ctx))
}

func (m *MockTeamRepository) SetMembers(ctx context.Context, id string, members []string) error {
	return m.Called(ctx, id, members).Error(0)
}

func (m *MockTeamRepository) SetTotalPoints(ctx context.Context, id string, points int) error {
	return m.Called(ctx, id, points).Error(0)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *repository.Team) error {
	return m.Called(ctx, team).Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTeamRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTeamRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *repository.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) Get(ctx context.Context, id string) (*repository.Activity, error) {
	return mockOne[repository.Activity](m.Called(ctx, id))
}

func (m *MockActivityRepository) List(ctx context.Context) ([]*repository.Activity, error) {
	return mockList[repository.Activity](m.Called(ctx))
}

func (m *MockActivityRepository) ListByUser(ctx context.Context, email string) ([]*repository.Activity, error) {
	return mockList[repository.Activity](m.Called(ctx, email))
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *repository.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockActivityRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockActivityRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Create(ctx context.Context, entry *repository.LeaderboardEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLeaderboardRepository) Get(ctx context.Context, id string) (*repository.LeaderboardEntry, error) {
	return mockOne[repository.LeaderboardEntry](m.Called(ctx, id))
}

func (m *MockLeaderboardRepository) List(ctx context.Context) ([]*repository.LeaderboardEntry, error) {
	return mockList[repository.LeaderboardEntry](m.Called(ctx))
}

func (m *MockLeaderboardRepository) Top(ctx context.Context, limit int) ([]*repository.LeaderboardEntry, error) {
	return mockList[repository.LeaderboardEntry](m.Called(ctx, limit))
}

func (m *MockLeaderboardRepository) Update(ctx context.Context, entry *repository.LeaderboardEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLeaderboardRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLeaderboardRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockLeaderboardRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *repository.Workout) error {
	return m.Called(ctx, workout).Error(0)
}

func (m *MockWorkoutRepository) Get(ctx context.Context, id string) (*repository.Workout, error) {
	return mockOne[repository.Workout](m.Called(ctx, id))
}

func (m *MockWorkoutRepository) List(ctx context.Context) ([]*repository.Workout, error) {
	return mockList[repository.Workout](m.Called(ctx))
}

func (m *MockWorkoutRepository) ListByCategory(ctx context.Context, category string) ([]*repository.Workout, error) {
	return mockList[repository.Workout](m.Called(ctx, category))
}

func (m *MockWorkoutRepository) ListByDifficulty(ctx context.Context, difficulty string) ([]*repository.Workout, error) {
	return mockList[repository.Workout](m.Called(ctx, difficulty))
}

func (m *MockWorkoutRepository) Update(ctx context.Context, workout *repository.Workout) error {
	return m.Called(ctx, workout).Error(0)
}

func (m *MockWorkoutRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWorkoutRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWorkoutRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
