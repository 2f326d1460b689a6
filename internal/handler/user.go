package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/contact-book/internal/model"
)

type passwordChangeReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Profile returns the authenticated caller's own record.
func (h *API) Profile(c echo.Context) error {
	u, err := h.currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"uid":     u.UID,
		"name":    u.Name,
		"email":   u.Email,
		"phone":   u.Phone,
		"address": u.Address,
	})
}

// UpdateProfile applies a partial profile change. Fields absent from the
// body stay untouched, which is why the DTO uses pointers: an explicit empty
// string is a value, a missing key is not. A changed email or phone is
// re-checked for uniqueness against every other user before anything is
// written, and an empty change set still succeeds.
func (h *API) UpdateProfile(c echo.Context) error {
	var req model.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	u, err := h.currentUser(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if req.Email != nil && *req.Email != u.Email {
		taken, err := h.Users.EmailTaken(ctx, *req.Email, u.UID)
		if err != nil {
			return err
		}
		if taken {
			return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
		}
	}
	if req.Phone != nil && *req.Phone != u.Phone {
		taken, err := h.Users.PhoneTaken(ctx, *req.Phone, u.UID)
		if err != nil {
			return err
		}
		if taken {
			return echo.NewHTTPError(http.StatusBadRequest, "Phone already registered")
		}
	}

	if err := h.Users.UpdateProfile(ctx, u.UID, req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated"})
}

// ChangePassword verifies the old password against the stored hash and
// overwrites it with a hash of the new one.
func (h *API) ChangePassword(c echo.Context) error {
	var req passwordChangeReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	u, err := h.currentUser(c)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Incorrect old password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.BcryptCost)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := h.Users.UpdatePassword(ctx, u.UID, string(hash)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed"})
}
