package api

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/service"
)

type requestStep[T any] func(echo.Context, *T) *service.Error

// ProcessRequest runs steps in order and stops at the first failure.
func ProcessRequest[T any](e echo.Context, req *T, steps ...requestStep[T]) *service.Error {
	for _, step := range steps {
		if err := step(e, req); err != nil {
			return err
		}
	}
	return nil
}

func bindBody[T any](e echo.Context, req *T) *service.Error {
	if err := e.Bind(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, "invalid request body")
	}
	return nil
}

func validateBody[T any](e echo.Context, req *T) *service.Error {
	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, errors.Wrap(err, "request validation failed").Error())
	}
	return nil
}

func decodeRequest[T any](e echo.Context, req *T) *service.Error {
	return ProcessRequest(e, req, bindBody[T], validateBody[T])
}

func requiredQuery(e echo.Context, name string) (string, *service.Error) {
	v := e.QueryParam(name)
	if v == "" {
		return "", service.NewError(service.ErrorCodeInvalidBody, "query parameter "+name+" is required")
	}
	return v, nil
}
