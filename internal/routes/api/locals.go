package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/repository"
	"github.com/lk16/othello/internal/services"
)

func getServices(c *fiber.Ctx) *services.Services {
	return c.Locals("services").(*services.Services) //nolint: errcheck
}

func getConfig(c *fiber.Ctx) *config.ServerConfig {
	return c.Locals("config").(*config.ServerConfig) //nolint: errcheck
}

func getDecisionStats(c *fiber.Ctx) repository.DecisionStats {
	return c.Locals("decision_stats").(repository.DecisionStats) //nolint: errcheck
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
