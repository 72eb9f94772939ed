package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/repository"
)

func TestTeamService_AddMember(t *testing.T) {
	tests := []struct {
		name          string
		teamID        string
		email         string
		setupMocks    func(*MockTeamRepository)
		expectedError bool
		errorCode     ErrorCode
		expectedTeam  *model.Team
	}{
		{
			name:   "success",
			teamID: "t1",
			email:  "peter.parker@marvel.com",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "t1").Return(&repository.Team{
					ID:      "t1",
					Name:    "Team Marvel",
					Members: []string{"tony.stark@marvel.com"},
				}, nil)
				tr.On("SetMembers", mock.Anything, "t1", []string{"tony.stark@marvel.com", "peter.parker@marvel.com"}).Return(nil)
			},
			expectedTeam: &model.Team{
				ID:      "t1",
				Name:    "Team Marvel",
				Members: []string{"tony.stark@marvel.com", "peter.parker@marvel.com"},
			},
		},
		{
			name:   "already a member",
			teamID: "t1",
			email:  "tony.stark@marvel.com",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "t1").Return(&repository.Team{
					ID:      "t1",
					Name:    "Team Marvel",
					Members: []string{"tony.stark@marvel.com"},
				}, nil)
			},
			expectedTeam: &model.Team{
				ID:      "t1",
				Name:    "Team Marvel",
				Members: []string{"tony.stark@marvel.com"},
			},
		},
		{
			name:   "team not found",
			teamID: "missing",
			email:  "tony.stark@marvel.com",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name:   "update failure",
			teamID: "t1",
			email:  "peter.parker@marvel.com",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "t1").Return(&repository.Team{ID: "t1", Name: "Team Marvel"}, nil)
				tr.On("SetMembers", mock.Anything, "t1", mock.Anything).Return(errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			tt.setupMocks(mockTeamRepo)

			service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

			got, err := service.AddMember(context.Background(), tt.teamID, tt.email)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
				assert.Nil(t, got)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tt.expectedTeam, got)
			}

			mockTeamRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_Create(t *testing.T) {
	tests := []struct {
		name          string
		team          *model.Team
		setupMocks    func(*MockTeamRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name: "success",
			team: &model.Team{Name: "Team DC", Members: []string{}},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Create", mock.Anything, mock.MatchedBy(func(t *repository.Team) bool {
					return t.Name == "Team DC"
				})).Return(nil)
			},
		},
		{
			name: "team already exists",
			team: &model.Team{Name: "Team DC"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Create", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists)
			},
			expectedError: true,
			errorCode:     ErrorCodeTeamExists,
		},
		{
			name: "store failure",
			team: &model.Team{Name: "Team DC"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			tt.setupMocks(mockTeamRepo)

			service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

			err := service.Create(context.Background(), tt.team)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code, "unexpected error code", err.Code)
			} else {
				assert.Nil(t, err)
			}

			mockTeamRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_Update(t *testing.T) {
	tests := []struct {
		name          string
		team          *model.Team
		setupMocks    func(*MockTeamRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name: "nil members stored as empty",
			team: &model.Team{Name: "Team DC"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Update", mock.Anything, &repository.Team{
					ID: "t1", Name: "Team DC", Members: []string{},
				}).Return(nil)
			},
		},
		{
			name: "team not found",
			team: &model.Team{Name: "Team DC"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name: "name taken by another team",
			team: &model.Team{Name: "Team Marvel"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Update", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists)
			},
			expectedError: true,
			errorCode:     ErrorCodeTeamExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			tt.setupMocks(mockTeamRepo)

			service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

			err := service.Update(context.Background(), "t1", tt.team)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, "t1", tt.team.ID)
				assert.NotNil(t, tt.team.Members)
			}

			mockTeamRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_Delete(t *testing.T) {
	mockTeamRepo := new(MockTeamRepository)
	mockTeamRepo.On("Delete", mock.Anything, "t1").Return(nil)
	mockTeamRepo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)

	service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

	assert.Nil(t, service.Delete(context.Background(), "t1"))

	err := service.Delete(context.Background(), "missing")
	assert.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)

	mockTeamRepo.AssertExpectations(t)
}
