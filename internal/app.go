package internal

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/middleware"
	"github.com/lk16/othello/internal/repository"
	"github.com/lk16/othello/internal/routes"
	"github.com/lk16/othello/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
)

// SetupApp creates the analysis server. Services without a connection disable the routes that need them.
func SetupApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Without Redis the counters only live as long as the process.
	decisionStats := repository.NewDecisionStats(services.Redis)

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		c.Locals("decision_stats", decisionStats)
		return c.Next()
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
