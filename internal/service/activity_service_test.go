package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/repository"
)

func TestActivityService_Create(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	given := time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		activity      *model.Activity
		setupMocks    func(*MockActivityRepository)
		expectedError *Error
		expectedDate  time.Time
	}{
		{
			name:     "date defaults to now",
			activity: &model.Activity{UserEmail: "a@example.com", ActivityType: "Running", Duration: 30, Calories: 300},
			setupMocks: func(ar *MockActivityRepository) {
				ar.On("Create", mock.Anything, mock.MatchedBy(func(a *repository.Activity) bool {
					return a.Date.Equal(now) && a.Calories == 300
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*repository.Activity).ID = "generated"
				}).Return(nil)
			},
			expectedDate: now,
		},
		{
			name:     "explicit date is kept",
			activity: &model.Activity{UserEmail: "a@example.com", ActivityType: "Yoga", Duration: 60, Calories: 240, Date: given},
			setupMocks: func(ar *MockActivityRepository) {
				ar.On("Create", mock.Anything, mock.MatchedBy(func(a *repository.Activity) bool {
					return a.Date.Equal(given)
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*repository.Activity).ID = "generated"
				}).Return(nil)
			},
			expectedDate: given,
		},
		{
			name:     "store failure",
			activity: &model.Activity{UserEmail: "a@example.com", ActivityType: "Running", Duration: 30, Calories: 300},
			setupMocks: func(ar *MockActivityRepository) {
				ar.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError: NewError(ErrorCodeUnspecified, "failed to create activity"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockActivityRepo := new(MockActivityRepository)
			tt.setupMocks(mockActivityRepo)

			service := NewActivityService(new(MockTransactor)).
				WithActivityRepo(mockActivityRepo).
				WithClock(func() time.Time { return now })

			err := service.Create(context.Background(), tt.activity)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, "generated", tt.activity.ID)
				assert.True(t, tt.activity.Date.Equal(tt.expectedDate))
			}

			mockActivityRepo.AssertExpectations(t)
		})
	}
}

func TestActivityService_ListByUser(t *testing.T) {
	mockActivityRepo := new(MockActivityRepository)
	mockActivityRepo.On("ListByUser", mock.Anything, "nobody@example.com").Return([]*repository.Activity{}, nil)

	service := NewActivityService(new(MockTransactor)).WithActivityRepo(mockActivityRepo)

	got, err := service.ListByUser(context.Background(), "nobody@example.com")
	assert.Nil(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestActivityService_Update(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		activity      *model.Activity
		setupMocks    func(*MockActivityRepository)
		expectedError bool
		errorCode     ErrorCode
		expectedDate  time.Time
	}{
		{
			name:     "missing date is stamped",
			activity: &model.Activity{UserEmail: "bruce.wayne@dc.com", ActivityType: "Cycling", Duration: 30, Calories: 300},
			setupMocks: func(ar *MockActivityRepository) {
				ar.On("Update", mock.Anything, mock.MatchedBy(func(a *repository.Activity) bool {
					return a.ID == "a1" && a.Date.Equal(now) && a.Calories == 300
				})).Return(nil)
			},
			expectedDate: now,
		},
		{
			name:     "activity not found",
			activity: &model.Activity{UserEmail: "bruce.wayne@dc.com", ActivityType: "Cycling", Duration: 30},
			setupMocks: func(ar *MockActivityRepository) {
				ar.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name:     "store failure",
			activity: &model.Activity{UserEmail: "bruce.wayne@dc.com", ActivityType: "Cycling", Duration: 30},
			setupMocks: func(ar *MockActivityRepository) {
				ar.On("Update", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockActivityRepo := new(MockActivityRepository)
			tt.setupMocks(mockActivityRepo)

			service := NewActivityService(new(MockTransactor)).
				WithActivityRepo(mockActivityRepo).
				WithClock(func() time.Time { return now })

			err := service.Update(context.Background(), "a1", tt.activity)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, "a1", tt.activity.ID)
				assert.True(t, tt.activity.Date.Equal(tt.expectedDate))
			}

			mockActivityRepo.AssertExpectations(t)
		})
	}
}

func TestActivityService_Delete(t *testing.T) {
	mockActivityRepo := new(MockActivityRepository)
	mockActivityRepo.On("Delete", mock.Anything, "a1").Return(nil)
	mockActivityRepo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)
	mockActivityRepo.On("Delete", mock.Anything, "broken").Return(errors.New("db error"))

	service := NewActivityService(new(MockTransactor)).WithActivityRepo(mockActivityRepo)

	assert.Nil(t, service.Delete(context.Background(), "a1"))

	err := service.Delete(context.Background(), "missing")
	assert.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)

	err = service.Delete(context.Background(), "broken")
	assert.NotNil(t, err)
	assert.Equal(t, ErrorCodeUnspecified, err.Code)

	mockActivityRepo.AssertExpectations(t)
}
