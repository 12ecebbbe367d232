package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	// Analysis routes
	apiGroup.Post("/analysis/moves", PostMoves)
	apiGroup.Post("/analysis/place", PostPlace)
	apiGroup.Post("/analysis/decide", PostDecide)

	// Stats routes
	apiGroup.Get("/stats", GetDecisionStats)
	apiGroup.Get("/matches/summary", GetMatchSummary)
}
