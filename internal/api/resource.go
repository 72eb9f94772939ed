package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

// recordService is the by-id surface shared by every collection
type recordService[M any] interface {
	Get(ctx context.Context, id string) (*M, *service.Error)
	Update(ctx context.Context, id string, record *M) *service.Error
	Delete(ctx context.Context, id string) *service.Error
}

// replaceRecord serves PUT: the body becomes the whole record
func replaceRecord[M any](e echo.Context, svc recordService[M], entity string) error {
	l := logger.FromContext(e.Request().Context())
	id := e.Param("id")

	record := new(M)
	if err := decodeRequest(e, record); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	l.Info("replacing "+entity, zap.String("id", id))

	if err := svc.Update(e.Request().Context(), id, record); err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, record)
}

// patchRecord serves PATCH: fields present in the body overwrite the stored record
func patchRecord[M any](e echo.Context, svc recordService[M], entity string) error {
	l := logger.FromContext(e.Request().Context())
	id := e.Param("id")

	record, err := svc.Get(e.Request().Context(), id)
	if err != nil {
		return transportError(e, err)
	}

	if err = decodeRequest(e, record); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return transportError(e, err)
	}

	l.Info("updating "+entity, zap.String("id", id))

	if err = svc.Update(e.Request().Context(), id, record); err != nil {
		return transportError(e, err)
	}
	return e.JSON(http.StatusOK, record)
}

func deleteRecord[M any](e echo.Context, svc recordService[M], entity string) error {
	id := e.Param("id")
	logger.FromContext(e.Request().Context()).Info("deleting "+entity, zap.String("id", id))

	if err := svc.Delete(e.Request().Context(), id); err != nil {
		return transportError(e, err)
	}
	return e.NoContent(http.StatusNoContent)
}
