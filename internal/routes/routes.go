package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/routes/api"
	"github.com/lk16/othello/internal/routes/version"
	"github.com/lk16/othello/internal/routes/ws"
)

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)
}
