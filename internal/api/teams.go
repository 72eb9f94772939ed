package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) ListTeams(e echo.Context) error {
	teams, err := h.team.List(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, teams)
}

func (h *Handler) CreateTeam(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	team := &model.Team{}
	if err := decodeRequest(e, team); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	if err := h.team.Create(e.Request().Context(), team); err != nil {
		l.Error("failed to add team", zap.String("team_name", team.Name), zap.Any("error", err))
		return transportError(e, err)
	}

	return e.JSON(http.StatusCreated, team)
}

func (h *Handler) GetTeam(e echo.Context) error {
	team, err := h.team.Get(e.Request().Context(), e.Param("id"))
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, team)
}

func (h *Handler) AddTeamMember(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Email string `json:"email" validate:"required"`
	}

	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	teamID := e.Param("id")
	l.Info("adding team member", zap.String("team_id", teamID), zap.String("email", req.Email))

	if _, err := h.team.AddMember(e.Request().Context(), teamID, req.Email); err != nil {
		l.Error("failed to add team member", zap.String("team_id", teamID), zap.Any("error", err))
		return transportError(e, err)
	}

	return e.JSON(http.StatusOK, map[string]string{"status": "member added"})
}

func (h *Handler) ReplaceTeam(e echo.Context) error {
	return replaceRecord[model.Team](e, h.team, "team")
}

func (h *Handler) PatchTeam(e echo.Context) error {
	return patchRecord[model.Team](e, h.team, "team")
}

func (h *Handler) DeleteTeam(e echo.Context) error {
	return deleteRecord[model.Team](e, h.team, "team")
}
