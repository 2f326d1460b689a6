package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-book/internal/config"
	"github.com/iliyamo/contact-book/internal/database"
	"github.com/iliyamo/contact-book/internal/handler"
	"github.com/iliyamo/contact-book/internal/repository"
	"github.com/iliyamo/contact-book/internal/router"
	"github.com/iliyamo/contact-book/internal/session"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}

	users := repository.NewUserRepo(db)
	contacts := repository.NewContactRepo(db)

	// Sessions live in process memory unless Redis is configured, in which
	// case every instance shares one directory and idle sessions can expire.
	var sessions session.Store = session.NewMemoryStore()
	if rdb := config.NewRedisClient(); rdb != nil {
		sessions = session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
		log.Printf("session directory backed by redis")
	}

	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler

	api := handler.NewAPI(users, contacts, sessions, cfg.BcryptCost)
	router.RegisterRoutes(e, api, sessions)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
