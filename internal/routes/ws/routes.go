package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/repository"
	"github.com/lk16/othello/internal/ws"
)

func handleWs(c *websocket.Conn) {
	cfg := c.Locals("config").(*config.ServerConfig)               //nolint: errcheck
	stats := c.Locals("decision_stats").(repository.DecisionStats) //nolint: errcheck

	h := ws.NewHandler(c, cfg.MaxSearchDepth, stats)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgradeRequired rejects plain HTTP requests on the websocket route.
func upgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", upgradeRequired, websocket.New(handleWs))
}
