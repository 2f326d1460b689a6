package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/contact-book/internal/model"
	"github.com/iliyamo/contact-book/internal/queue"
	"github.com/iliyamo/contact-book/internal/repository"
	queue_publisher "github.com/iliyamo/contact-book/internal/service"
)

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type loginReq struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// Register creates a new account. Email is checked before phone, both
// against all existing users, and the uid is allocated from the sequence
// only after both checks pass. The response never includes the uid or a
// session; the client logs in separately.
func (h *API) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email, phone and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	taken, err := h.Users.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
	}
	taken, err = h.Users.PhoneTaken(ctx, req.Phone, 0)
	if err != nil {
		return err
	}
	if taken {
		return echo.NewHTTPError(http.StatusBadRequest, "Phone already registered")
	}

	uid, err := h.Users.NextUID(ctx)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		return err
	}
	u := &model.User{
		UID:      uid,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
		Address:  req.Address,
	}
	if err := h.Users.Insert(ctx, u); err != nil {
		return err
	}

	// Best effort notification for downstream consumers; a broker outage
	// must never fail the registration itself.
	_ = queue_publisher.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
		UID:          uid,
		Name:         u.Name,
		Email:        u.Email,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Registered"})
}

// Login resolves the identity first (a numeric account is a uid, anything
// else matches name, email or phone) and only then verifies the password.
// Every failure is the same 401 so the response does not reveal whether the
// identity or the password was wrong.
func (h *API) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	account := strings.TrimSpace(req.Account)
	if account == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wrong password or username")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.FindByAccount(ctx, account)
	if errors.Is(err, repository.ErrUserNotFound) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wrong password or username")
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wrong password or username")
	}

	token, err := h.Sessions.Issue(ctx, u.UID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"uid":   u.UID,
		"name":  u.Name,
	})
}

// Logout revokes the exact token from the Authorization header. The call is
// idempotent and always succeeds; only the message tells whether a live
// session was actually ended.
func (h *API) Logout(c echo.Context) error {
	token := c.Request().Header.Get("Authorization")
	live := false
	if token != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()
		var err error
		live, err = h.Sessions.Revoke(ctx, token)
		if err != nil {
			return err
		}
	}
	if live {
		return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "You've been logged out or not login!"})
}
