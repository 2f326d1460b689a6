package handler // handler contains one HTTP handler per API endpoint

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-book/internal/model"
	"github.com/iliyamo/contact-book/internal/repository"
	"github.com/iliyamo/contact-book/internal/session"
)

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 5 * time.Second

// UserStore is the slice of the user repository the handlers depend on.
// Declaring it here keeps the handlers testable with an in-memory fake.
type UserStore interface {
	NextUID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, u *model.User) error
	FindByUID(ctx context.Context, uid int64) (*model.User, error)
	FindByAccount(ctx context.Context, account string) (*model.User, error)
	EmailTaken(ctx context.Context, email string, excludeUID int64) (bool, error)
	PhoneTaken(ctx context.Context, phone string, excludeUID int64) (bool, error)
	UpdateProfile(ctx context.Context, uid int64, p model.ProfileUpdate) error
	UpdatePassword(ctx context.Context, uid int64, hash string) error
}

// ContactStore is the slice of the contact repository the handlers depend on.
type ContactStore interface {
	ListByOwner(ctx context.Context, owner int64) ([]model.Contact, error)
	Insert(ctx context.Context, ct *model.Contact) error
	Update(ctx context.Context, id string, owner int64, f model.ContactFields) error
	Delete(ctx context.Context, id string, owner int64) error
	HasEmailOrPhone(ctx context.Context, owner int64, email, phone string) (bool, error)
}

// API bundles the dependencies shared by all endpoint handlers.
type API struct {
	Users      UserStore
	Contacts   ContactStore
	Sessions   session.Store
	BcryptCost int
}

// NewAPI constructs the handler set and panics on a missing dependency.
func NewAPI(users UserStore, contacts ContactStore, sessions session.Store, bcryptCost int) *API {
	if users == nil || contacts == nil || sessions == nil {
		panic("nil dependency passed to NewAPI")
	}
	return &API{Users: users, Contacts: contacts, Sessions: sessions, BcryptCost: bcryptCost}
}

// getUID extracts the uid placed in the context by the session middleware.
func getUID(c echo.Context) (int64, error) {
	switch t := c.Get("uid").(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	}
	return 0, echo.NewHTTPError(http.StatusUnauthorized, "Not login")
}

// currentUser loads the full user record for the authenticated caller. A
// uid with no matching document should not happen since users are never
// deleted, but it is mapped to 404 for robustness.
func (h *API) currentUser(c echo.Context) (*model.User, error) {
	uid, err := getUID(c)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	u, err := h.Users.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "User not exist!")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// fail maps sentinel errors from the storage and session layers onto HTTP
// responses. Anything unrecognized falls through untouched and becomes a
// plain 500 in the error handler, with the cause logged rather than leaked.
func fail(err error) error {
	switch {
	case errors.Is(err, repository.ErrContactNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Contact not found")
	case errors.Is(err, repository.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User does not exist")
	case errors.Is(err, session.ErrNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "Login expired")
	}
	return err
}
