package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers GET /api/ and lets clients verify the backend is reachable.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Connected"})
}
