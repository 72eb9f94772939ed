package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) ListActivities(e echo.Context) error {
	activities, err := h.activity.List(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, activities)
}

func (h *Handler) CreateActivity(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	activity := &model.Activity{}
	if err := decodeRequest(e, activity); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	if err := h.activity.Create(e.Request().Context(), activity); err != nil {
		return transportError(e, err)
	}

	return e.JSON(http.StatusCreated, activity)
}

func (h *Handler) ListUserActivities(e echo.Context) error {
	email, err := requiredQuery(e, "email")
	if err != nil {
		return transportError(e, err)
	}

	activities, err := h.activity.ListByUser(e.Request().Context(), email)
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, activities)
}

func (h *Handler) GetActivity(e echo.Context) error {
	activity, err := h.activity.Get(e.Request().Context(), e.Param("id"))
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, activity)
}

func (h *Handler) ReplaceActivity(e echo.Context) error {
	return replaceRecord[model.Activity](e, h.activity, "activity")
}

func (h *Handler) PatchActivity(e echo.Context) error {
	return patchRecord[model.Activity](e, h.activity, "activity")
}

func (h *Handler) DeleteActivity(e echo.Context) error {
	return deleteRecord[model.Activity](e, h.activity, "activity")
}
