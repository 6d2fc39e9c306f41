package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// roleMiddleware gates an API route to one session role. It runs after the JWT
// middleware and fails closed: a mismatch never reaches the handler.
func roleMiddleware(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.Role == role {
				return next(ctx)
			}
			return errUnauthorized
		}
	}
}

// pageGuard gates an HTML page to one session role, redirecting to the login
// page instead of answering with a JSON error.
func pageGuard(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := parseSessionCookie(ctx)
			if err != nil || claims.Role != role {
				return ctx.Redirect(http.StatusFound, "/")
			}
			return next(ctx)
		}
	}
}
