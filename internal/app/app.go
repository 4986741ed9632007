// Package app assembles the HTTP application from a store and its services.
package app

import (
	"time"

	"messageboard/internal/database"
	"messageboard/internal/handlers"
	"messageboard/internal/middleware"
	"messageboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
)

// Options tunes NewApp.
type Options struct {
	// Publisher receives message change events. Nil disables events.
	Publisher services.EventPublisher
	// RequestTimeout bounds the store calls of one request.
	RequestTimeout time.Duration
	// AccessLog enables Fiber's request logger.
	AccessLog bool
}

// NewApp builds the Fiber app serving the message and user API on store.
func NewApp(store *database.Store, opts Options) *fiber.App {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	messageService := services.NewMessageService(store.Messages, opts.Publisher)
	userService := services.NewUserService(store.Users)

	messageHandler := handlers.NewMessageHandler(messageService, opts.RequestTimeout)
	userHandler := handlers.NewUserHandler(userService, opts.RequestTimeout)
	healthHandler := handlers.NewHealthHandler(store, opts.RequestTimeout)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(fiberrecover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	healthHandler.RegisterRoutes(app)
	messageHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)

	return app
}
