package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/contact-book/internal/handler"
	"github.com/iliyamo/contact-book/internal/middleware"
	"github.com/iliyamo/contact-book/internal/session"
)

func newProtectedEcho(store session.Store) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.GET("/whoami", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"uid": c.Get("uid")})
	}, middleware.SessionAuth(store))
	return e
}

func get(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionAuthMissingHeader(t *testing.T) {
	e := newProtectedEcho(session.NewMemoryStore())
	rec := get(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Not login"}`, rec.Body.String())
}

func TestSessionAuthUnknownToken(t *testing.T) {
	e := newProtectedEcho(session.NewMemoryStore())
	rec := get(e, "bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Login expired"}`, rec.Body.String())
}

func TestSessionAuthValidToken(t *testing.T) {
	store := session.NewMemoryStore()
	token, err := store.Issue(context.Background(), 5)
	require.NoError(t, err)

	e := newProtectedEcho(store)
	rec := get(e, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":5}`, rec.Body.String())
}

// The raw header value is the token; a client sending a conventional
// "Bearer xyz" prefix is simply presenting an unknown token.
func TestSessionAuthNoBearerStripping(t *testing.T) {
	store := session.NewMemoryStore()
	token, err := store.Issue(context.Background(), 5)
	require.NoError(t, err)

	e := newProtectedEcho(store)
	rec := get(e, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Login expired"}`, rec.Body.String())
}
