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

type WorkoutService struct {
	tx db.Transactor

	workouts repository.WorkoutRepository
}

func NewWorkoutService(tx db.Transactor) *WorkoutService {
	return &WorkoutService{tx: tx}
}

func (w *WorkoutService) List(ctx context.Context) ([]*model.Workout, *Error) {
	return w.list(ctx, w.workouts.List)
}

func (w *WorkoutService) ListByCategory(ctx context.Context, category string) ([]*model.Workout, *Error) {
	return w.list(ctx, func(ctx context.Context) ([]*repository.Workout, error) {
		return w.workouts.ListByCategory(ctx, category)
	})
}

func (w *WorkoutService) ListByDifficulty(ctx context.Context, difficulty string) ([]*model.Workout, *Error) {
	return w.list(ctx, func(ctx context.Context) ([]*repository.Workout, error) {
		return w.workouts.ListByDifficulty(ctx, difficulty)
	})
}

func (w *WorkoutService) list(ctx context.Context, fetch func(context.Context) ([]*repository.Workout, error)) ([]*model.Workout, *Error) {
	workouts, err := fetch(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list workouts", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list workouts")
	}
	return mapAll(workouts, toModelWorkout), nil
}

func (w *WorkoutService) Create(ctx context.Context, workout *model.Workout) *Error {
	row := &repository.Workout{
		Name:               workout.Name,
		Category:           workout.Category,
		Description:        workout.Description,
		Difficulty:         workout.Difficulty,
		Duration:           workout.Duration,
		CaloriesPerSession: workout.CaloriesPerSession,
	}
	if err := w.workouts.Create(ctx, row); err != nil {
		logger.FromContext(ctx).Error("failed to create workout", zap.String("name", workout.Name), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to create workout")
	}

	workout.ID = row.ID
	observability.RecordCreated("workout")
	return nil
}

func (w *WorkoutService) Get(ctx context.Context, id string) (*model.Workout, *Error) {
	workout, err := w.workouts.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "workout not found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get workout")
	}
	return toModelWorkout(workout), nil
}

func (w *WorkoutService) Update(ctx context.Context, id string, workout *model.Workout) *Error {
	row := &repository.Workout{
		ID:                 id,
		Name:               workout.Name,
		Category:           workout.Category,
		Description:        workout.Description,
		Difficulty:         workout.Difficulty,
		Duration:           workout.Duration,
		CaloriesPerSession: workout.CaloriesPerSession,
	}
	err := w.workouts.Update(ctx, row)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "workout not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update workout", zap.String("workout_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to update workout")
	}

	workout.ID = id
	return nil
}

func (w *WorkoutService) Delete(ctx context.Context, id string) *Error {
	err := w.workouts.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "workout not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete workout", zap.String("workout_id", id), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete workout")
	}

	observability.RecordDeleted("workout")
	return nil
}

func (w *WorkoutService) WithWorkoutRepo(r repository.WorkoutRepository) *WorkoutService {
	w.workouts = r
	return w
}
