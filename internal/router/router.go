package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-book/internal/handler"
	"github.com/iliyamo/contact-book/internal/middleware"
	"github.com/iliyamo/contact-book/internal/session"
)

// RegisterRoutes wires the whole /api surface onto the provided Echo
// instance. Register, login and the connectivity probe are open; logout
// accepts a token but works without one; everything else sits behind the
// session middleware, which resolves the Authorization header through the
// session store and puts the caller's uid into the request context.
func RegisterRoutes(e *echo.Echo, api *handler.API, store session.Store) {
	g := e.Group("/api")

	g.GET("/", handler.Root)
	g.POST("/register", api.Register)
	g.POST("/login", api.Login)
	g.POST("/logout", api.Logout)

	auth := g.Group("", middleware.SessionAuth(store))
	auth.GET("/user", api.Profile)
	auth.PUT("/user", api.UpdateProfile)
	auth.POST("/user/password", api.ChangePassword)
	auth.GET("/contacts", api.ListContacts)
	auth.POST("/contacts", api.CreateContact)
	auth.PUT("/contacts/:id", api.UpdateContact)
	auth.DELETE("/contacts/:id", api.DeleteContact)
	auth.GET("/addfriend/:uid", api.AddFriend)
}
