package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/db"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/observability"
	"github.com/yakoovad/octofit-tracker/internal/repository"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

type ActivityService struct {
	tx db.Transactor

	activities repository.ActivityRepository

	now func() time.Time
}

func NewActivityService(tx db.Transactor) *ActivityService {
	return &ActivityService{tx: tx, now: time.Now}
}

func (a *ActivityService) List(ctx context.Context) ([]*model.Activity, *Error) {
	activities, err := a.activities.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list activities", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list activities")
	}
	return mapAll(activities, toModelActivity), nil
}

func (a *ActivityService) ListByUser(ctx context.Context, email string) ([]*model.Activity, *Error) {
	activities, err := a.activities.ListByUser(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list user activities", zap.String("email", email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list activities")
	}
	return mapAll(activities, toModelActivity), nil
}

// Create stores the activity as given; the user is referenced by email only and is not checked.
func (a *ActivityService) Create(ctx context.Context, activity *model.Activity) *Error {
	if activity.Date.IsZero() {
		activity.Date = a.now()
	}

	row := &repository.Activity{
		UserEmail:    activity.UserEmail,
		ActivityType: activity.ActivityType,
		Duration:     activity.Duration,
		Calories:     activity.Calories,
		Date:         activity.Date,
	}
	if err := a.activities.Create(ctx, row); err != nil {
		logger.FromContext(ctx).Error("failed to create activity", zap.String("email", activity.UserEmail), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to create activity")
	}

	activity.ID = row.ID
	observability.RecordCreated("activity")
	return nil
}

func (a *ActivityService) Get(ctx context.Context, id string) (*model.Activity, *Error) {
	activity, err := a.activities.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "activity not found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get activity")
	}
	return toModelActivity(activity), nil
}

// Update replaces the activity with id. A missing date is stamped with the current time, as on create.
func (a *ActivityService) Update(ctx context.Context, id string, activity *model.Activity) *Error {
	if activity.Date.IsZero() {
		activity.Date = a.now()
	}

	row := &repository.Activity{
		ID:           id,
		UserEmail:    activity.UserEmail,
		ActivityType: activity.ActivityType,
		Duration:     activity.Duration,
		Calories:     activity.Calories,
		Date:         activity.Date,
	}
	err := a.activities.Update(ctx, row)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "activity not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update activity", zap.String("activity_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to update activity")
	}

	activity.ID = id
	return nil
}

func (a *ActivityService) Delete(ctx context.Context, id string) *Error {
	err := a.activities.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "activity not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete activity", zap.String("activity_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete activity")
	}

	observability.RecordDeleted("activity")
	return nil
}

func (a *ActivityService) WithActivityRepo(r repository.ActivityRepository) *ActivityService {
	a.activities = r
	return a
}

func (a *ActivityService) WithClock(now func() time.Time) *ActivityService {
	a.now = now
	return a
}
