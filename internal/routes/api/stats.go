package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/repository"
)

// GetDecisionStats returns how many decisions were served per strategy and depth.
func GetDecisionStats(c *fiber.Ctx) error {
	stats, err := getDecisionStats(c).Get(c.Context())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetMatchSummary returns the tournament results per pair of strategies.
func GetMatchSummary(c *fiber.Ctx) error {
	postgres := getServices(c).Postgres
	if postgres == nil {
		return errorResponse(c, fiber.StatusServiceUnavailable, errors.New("match storage is not configured"))
	}

	summary, err := repository.NewMatchRepository(postgres).Summary(c.Context())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
