package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/octofit-tracker/internal/config"
	"go.uber.org/zap"
)

func TestOpenStorage_Memory(t *testing.T) {
	cfg := config.New()
	cfg.Storage = config.StorageMemory

	s, err := OpenStorage(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.Store.Users)
	assert.NotNil(t, s.Tx)
	assert.Empty(t, s.HealthChecks())
}

func TestNewHandler_ServesHealth(t *testing.T) {
	cfg := config.New()
	cfg.Storage = config.StorageMemory

	s, err := OpenStorage(context.Background(), cfg)
	require.NoError(t, err)

	e := echo.New()
	NewHandler(cfg, zap.NewNop(), s).RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.New()
	cfg.LogLevel = "loud"

	_, err := NewLogger(cfg)
	assert.Error(t, err)
}
