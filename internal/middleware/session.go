package middleware // middleware contains reusable HTTP middleware functions

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-book/internal/session"
)

// SessionAuth returns an Echo middleware that validates the opaque session
// token and injects the bound uid into the request context under "uid".
// The token is the verbatim value of the Authorization header; there is no
// "Bearer " prefix in this API. A missing header means the client never
// logged in (401 "Not login"), while an unknown token covers both a
// never-issued value and a revoked session (401 "Login expired").
func SessionAuth(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not login")
			}
			uid, err := store.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Login expired")
				}
				// Store failure, not an auth failure. Let the error
				// handler log it and answer 500.
				return err
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
