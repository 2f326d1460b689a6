package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-book/internal/model"
)

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ListContacts returns every contact owned by the caller, each with its id
// rendered as a hex string.
func (h *API) ListContacts(c echo.Context) error {
	uid, err := getUID(c)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	items, err := h.Contacts.ListByOwner(ctx, uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateContact adds a new entry to the caller's address book. Only the
// name is required; the other fields default to the empty string.
func (h *API) CreateContact(c echo.Context) error {
	uid, err := getUID(c)
	if err != nil {
		return err
	}
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	ct := &model.Contact{
		OwnerUID: uid,
		Name:     name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := h.Contacts.Insert(ctx, ct); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Added", "id": ct.ID.Hex()})
}

// UpdateContact replaces the fields of one contact. The match is on id AND
// owner, so someone else's contact reads as not found rather than forbidden.
func (h *API) UpdateContact(c echo.Context) error {
	uid, err := getUID(c)
	if err != nil {
		return err
	}
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	fields := model.ContactFields{
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := h.Contacts.Update(ctx, c.Param("id"), uid, fields); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Updated"})
}

// DeleteContact removes one contact under the same owner-scoped match as
// UpdateContact.
func (h *API) DeleteContact(c echo.Context) error {
	uid, err := getUID(c)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := h.Contacts.Delete(ctx, c.Param("id"), uid); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted"})
}
