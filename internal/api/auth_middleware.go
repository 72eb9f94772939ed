package api

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/auth"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// AuthMiddleware admits requests carrying a valid bearer token of one of the allowed types.
func AuthMiddleware(allowed ...auth.TokenType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(e echo.Context) error {
			l := logger.FromContext(e.Request().Context())

			header := e.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return transportError(e, service.NewError(service.ErrorCodeUnauthorized, "missing bearer token"))
			}

			claims, err := auth.VerifyToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				l.Warn("rejected token", zap.Error(err))
				msg := auth.ErrInvalidToken.Error()
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = auth.ErrExpiredToken.Error()
				}
				return transportError(e, service.NewError(service.ErrorCodeUnauthorized, msg))
			}

			if !auth.IsAllowed(claims.Type, allowed...) {
				l.Warn("token type not allowed", zap.String("type", string(claims.Type)))
				return transportError(e, service.NewError(service.ErrorCodeForbidden, "insufficient permissions"))
			}

			return next(e)
		}
	}
}
