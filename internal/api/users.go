package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) ListUsers(e echo.Context) error {
	users, err := h.user.List(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	user := &model.User{}
	if err := decodeRequest(e, user); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	l.Info("creating user", zap.String("email", user.Email))

	if err := h.user.Create(e.Request().Context(), user); err != nil {
		l.Error("failed to create user", zap.String("email", user.Email), zap.Any("error", err))
		return transportError(e, err)
	}

	return e.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUserByEmail(e echo.Context) error {
	email, err := requiredQuery(e, "email")
	if err != nil {
		return transportError(e, err)
	}

	user, err := h.user.GetByEmail(e.Request().Context(), email)
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, user)
}

func (h *Handler) GetUser(e echo.Context) error {
	user, err := h.user.Get(e.Request().Context(), e.Param("id"))
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, user)
}

func (h *Handler) ReplaceUser(e echo.Context) error {
	return replaceRecord[model.User](e, h.user, "user")
}

func (h *Handler) PatchUser(e echo.Context) error {
	return patchRecord[model.User](e, h.user, "user")
}

func (h *Handler) DeleteUser(e echo.Context) error {
	return deleteRecord[model.User](e, h.user, "user")
}
