package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
)

func (h *Handler) ListLeaderboard(e echo.Context) error {
	entries, err := h.leaderboard.List(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, entries)
}

func (h *Handler) TopLeaderboard(e echo.Context) error {
	limit, err := h.topLimit(e.QueryParam("limit"))
	if err != nil {
		return transportError(e, err)
	}

	entries, err := h.leaderboard.Top(e.Request().Context(), limit)
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, entries)
}

// topLimit falls back to the default when raw is empty and clamps to the configured maximum.
func (h *Handler) topLimit(raw string) (int, *service.Error) {
	if raw == "" {
		return h.topDefault, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, service.NewError(service.ErrorCodeInvalidBody, "limit must be a positive integer")
	}
	return min(limit, h.topMax), nil
}

func (h *Handler) GetLeaderboardEntry(e echo.Context) error {
	entry, err := h.leaderboard.Get(e.Request().Context(), e.Param("id"))
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, entry)
}

func (h *Handler) RecomputeLeaderboard(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	l.Info("recomputing leaderboard")

	entries, err := h.leaderboard.Recompute(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, entries)
}

func (h *Handler) Populate(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	l.Info("populating store with demo data")

	summary, err := h.seed.Populate(e.Request().Context())
	if err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, summary)
}

func (h *Handler) ReplaceLeaderboardEntry(e echo.Context) error {
	return replaceRecord[model.LeaderboardEntry](e, h.leaderboard, "leaderboard entry")
}

func (h *Handler) PatchLeaderboardEntry(e echo.Context) error {
	return patchRecord[model.LeaderboardEntry](e, h.leaderboard, "leaderboard entry")
}

func (h *Handler) DeleteLeaderboardEntry(e echo.Context) error {
	return deleteRecord[model.LeaderboardEntry](e, h.leaderboard, "leaderboard entry")
}
