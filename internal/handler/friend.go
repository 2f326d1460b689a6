package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-book/internal/model"
	"github.com/iliyamo/contact-book/internal/repository"
)

// AddFriend copies another registered user's public fields into a new
// contact owned by the caller. The copy is a snapshot: later edits to the
// friend's profile do not propagate. Adding yourself is rejected, and so is
// adding a friend whose non-empty email or phone already appears in the
// caller's address book.
func (h *API) AddFriend(c echo.Context) error {
	uid, err := getUID(c)
	if err != nil {
		return err
	}
	target, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid uid")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	friend, err := h.Users.FindByUID(ctx, target)
	if errors.Is(err, repository.ErrUserNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User does not exist")
	}
	if err != nil {
		return err
	}
	if friend.UID == uid {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot add yourself as a friend")
	}

	exists, err := h.Contacts.HasEmailOrPhone(ctx, uid, friend.Email, friend.Phone)
	if err != nil {
		return err
	}
	if exists {
		return echo.NewHTTPError(http.StatusBadRequest, "This contact is already in use")
	}

	ct := &model.Contact{
		OwnerUID: uid,
		Name:     friend.Name,
		Email:    friend.Email,
		Phone:    friend.Phone,
		Address:  friend.Address,
	}
	if err := h.Contacts.Insert(ctx, ct); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Added"})
}
