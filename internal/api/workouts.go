package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) ListWorkouts(e echo.Context) error {
	workouts, err := h.workout.List(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, workouts)
}

func (h *Handler) CreateWorkout(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	workout := &model.Workout{}
	if err := decodeRequest(e, workout); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	if err := h.workout.Create(e.Request().Context(), workout); err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusCreated, workout)
}

func (h *Handler) ListWorkoutsByCategory(e echo.Context) error {
	category, err := requiredQuery(e, "category")
	if err != nil {
		return transportError(e, err)
	}

	workouts, err := h.workout.ListByCategory(e.Request().Context(), category)
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, workouts)
}

func (h *Handler) ListWorkoutsByDifficulty(e echo.Context) error {
	difficulty, err := requiredQuery(e, "difficulty")
	if err != nil {
		return transportError(e, err)
	}

	workouts, err := h.workout.ListByDifficulty(e.Request().Context(), difficulty)
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, workouts)
}

func (h *Handler) GetWorkout(e echo.Context) error {
	workout, err := h.workout.Get(e.Request().Context(), e.Param("id"))
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, workout)
}

func (h *Handler) ReplaceWorkout(e echo.Context) error {
	return replaceRecord[model.Workout](e, h.workout, "workout")
}

func (h *Handler) PatchWorkout(e echo.Context) error {
	return patchRecord[model.Workout](e, h.workout, "workout")
}

func (h *Handler) DeleteWorkout(e echo.Context) error {
	return deleteRecord[model.Workout](e, h.workout, "workout")
}
