package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/repository"
)

type leaderboardMocks struct {
	users       *MockUserRepository
	teams       *MockTeamRepository
	activities  *MockActivityRepository
	leaderboard *MockLeaderboardRepository
}

func newLeaderboardMocks() *leaderboardMocks {
	return &leaderboardMocks{
		users:       new(MockUserRepository),
		teams:       new(MockTeamRepository),
		activities:  new(MockActivityRepository),
		leaderboard: new(MockLeaderboardRepository),
	}
}

func (m *leaderboardMocks) service() *LeaderboardService {
	return NewLeaderboardService(new(MockTransactor)).
		WithUserRepo(m.users).
		WithTeamRepo(m.teams).
		WithActivityRepo(m.activities).
		WithLeaderboardRepo(m.leaderboard)
}

func (m *leaderboardMocks) assertExpectations(t *testing.T) {
	m.users.AssertExpectations(t)
	m.teams.AssertExpectations(t)
	m.activities.AssertExpectations(t)
	m.leaderboard.AssertExpectations(t)
}

func TestLeaderboardService_Recompute(t *testing.T) {
	users := []*repository.User{
		{ID: "a", Name: "A", Email: "a@example.com", Team: "X"},
		{ID: "b", Name: "B", Email: "b@example.com", Team: "X"},
		{ID: "c", Name: "C", Email: "c@example.com", Team: "Y"},
	}
	activities := []*repository.Activity{
		{ID: "1", UserEmail: "a@example.com", Calories: 100},
		{ID: "2", UserEmail: "b@example.com", Calories: 50},
		{ID: "3", UserEmail: "c@example.com", Calories: 200},
	}
	teams := []*repository.Team{
		{ID: "tx", Name: "X"},
		{ID: "ty", Name: "Y"},
	}

	t.Run("success", func(t *testing.T) {
		m := newLeaderboardMocks()
		m.users.On("List", mock.Anything).Return(users, nil)
		m.activities.On("List", mock.Anything).Return(activities, nil)
		m.teams.On("List", mock.Anything).Return(teams, nil)
		m.leaderboard.On("DeleteAll", mock.Anything).Return(nil)
		m.leaderboard.On("Create", mock.Anything, mock.Anything).Return(nil).Times(3)
		m.teams.On("SetTotalPoints", mock.Anything, "tx", 150).Return(nil)
		m.teams.On("SetTotalPoints", mock.Anything, "ty", 200).Return(nil)

		entries, err := m.service().Recompute(context.Background())
		require.Nil(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "c@example.com", entries[0].UserEmail)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "a@example.com", entries[1].UserEmail)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "b@example.com", entries[2].UserEmail)
		assert.Equal(t, 3, entries[2].Rank)

		m.assertExpectations(t)
	})

	t.Run("store failure while persisting", func(t *testing.T) {
		m := newLeaderboardMocks()
		m.users.On("List", mock.Anything).Return(users, nil)
		m.activities.On("List", mock.Anything).Return(activities, nil)
		m.teams.On("List", mock.Anything).Return(teams, nil)
		m.leaderboard.On("DeleteAll", mock.Anything).Return(errors.New("db error"))

		entries, err := m.service().Recompute(context.Background())
		require.NotNil(t, err)
		assert.Equal(t, ErrorCodeUnspecified, err.Code)
		assert.Nil(t, entries)

		m.assertExpectations(t)
	})

	t.Run("no users", func(t *testing.T) {
		m := newLeaderboardMocks()
		m.users.On("List", mock.Anything).Return([]*repository.User{}, nil)
		m.activities.On("List", mock.Anything).Return([]*repository.Activity{}, nil)
		m.teams.On("List", mock.Anything).Return([]*repository.Team{}, nil)
		m.leaderboard.On("DeleteAll", mock.Anything).Return(nil)

		entries, err := m.service().Recompute(context.Background())
		require.Nil(t, err)
		assert.Empty(t, entries)

		m.assertExpectations(t)
	})
}

func TestLeaderboardService_Top(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		setupMocks    func(*MockLeaderboardRepository)
		expectedError bool
		expectedLen   int
	}{
		{
			name:  "success",
			limit: 2,
			setupMocks: func(lr *MockLeaderboardRepository) {
				lr.On("Top", mock.Anything, 2).Return([]*repository.LeaderboardEntry{
					{ID: "e1", Rank: 1},
					{ID: "e2", Rank: 2},
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name:  "empty leaderboard",
			limit: 10,
			setupMocks: func(lr *MockLeaderboardRepository) {
				lr.On("Top", mock.Anything, 10).Return([]*repository.LeaderboardEntry{}, nil)
			},
			expectedLen: 0,
		},
		{
			name:  "store failure",
			limit: 10,
			setupMocks: func(lr *MockLeaderboardRepository) {
				lr.On("Top", mock.Anything, 10).Return(nil, errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLeaderboardMocks()
			tt.setupMocks(m.leaderboard)

			got, err := m.service().Top(context.Background(), tt.limit)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, ErrorCodeUnspecified, err.Code)
			} else {
				assert.Nil(t, err)
				assert.Len(t, got, tt.expectedLen)
			}

			m.assertExpectations(t)
		})
	}
}

func TestLeaderboardService_Update(t *testing.T) {
	mockLeaderboardRepo := new(MockLeaderboardRepository)
	mockLeaderboardRepo.On("Update", mock.Anything, &repository.LeaderboardEntry{
		ID: "e1", UserEmail: "bruce.wayne@dc.com", UserName: "Batman", Team: "Team DC", TotalCalories: 500, TotalActivities: 2, Rank: 1,
	}).Return(nil)
	mockLeaderboardRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *repository.LeaderboardEntry) bool {
		return e.ID == "missing"
	})).Return(repository.ErrNotFound)

	service := NewLeaderboardService(new(MockTransactor)).WithLeaderboardRepo(mockLeaderboardRepo)

	entry := &model.LeaderboardEntry{UserEmail: "bruce.wayne@dc.com", UserName: "Batman", Team: "Team DC", TotalCalories: 500, TotalActivities: 2, Rank: 1}
	require.Nil(t, service.Update(context.Background(), "e1", entry))
	assert.Equal(t, "e1", entry.ID)

	err := service.Update(context.Background(), "missing", &model.LeaderboardEntry{UserEmail: "x@example.com"})
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)

	mockLeaderboardRepo.AssertExpectations(t)
}

func TestLeaderboardService_Delete(t *testing.T) {
	mockLeaderboardRepo := new(MockLeaderboardRepository)
	mockLeaderboardRepo.On("Delete", mock.Anything, "e1").Return(nil)
	mockLeaderboardRepo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)
	mockLeaderboardRepo.On("Delete", mock.Anything, "broken").Return(errors.New("db error"))

	service := NewLeaderboardService(new(MockTransactor)).WithLeaderboardRepo(mockLeaderboardRepo)

	assert.Nil(t, service.Delete(context.Background(), "e1"))

	err := service.Delete(context.Background(), "missing")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)

	err = service.Delete(context.Background(), "broken")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeUnspecified, err.Code)

	mockLeaderboardRepo.AssertExpectations(t)
}
