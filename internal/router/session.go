package router

import (
	stderrors "errors"

	"github.com/labstack/echo/v4"

	"nocturna/internal/auth"
	"nocturna/internal/errors"
	"nocturna/internal/service"
)

// RequireSession rejects tokens whose session was replaced, ended or expired.
// It runs after the JWT middleware has put the parsed token on the context.
func RequireSession(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.ClaimsFromToken(c.Get("user"))
			if !ok {
				return sessionRejected()
			}

			err := authService.ValidateSession(c.Request().Context(), claims.AdminID, claims.ID)
			if err != nil {
				if stderrors.Is(err, errors.ErrSessionInvalid) {
					return sessionRejected()
				}
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

func sessionRejected() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrSessionInvalid)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
