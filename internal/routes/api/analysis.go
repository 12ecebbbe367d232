package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello/internal/analysis"
	"github.com/lk16/othello/internal/models"
)

func analysisErrorStatus(err error) int {
	if errors.Is(err, analysis.ErrBadRequest) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// PostMoves returns the legal moves of a board.
func PostMoves(c *fiber.Ctx) error {
	var payload models.MovesRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	resp, err := analysis.Moves(payload)
	if err != nil {
		return errorResponse(c, analysisErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// PostPlace plays a move on a board.
func PostPlace(c *fiber.Ctx) error {
	var payload models.PlaceRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	resp, err := analysis.Place(payload)
	if err != nil {
		return errorResponse(c, analysisErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// PostDecide lets a computer strategy pick a move.
func PostDecide(c *fiber.Ctx) error {
	var payload models.DecideRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	resp, err := analysis.Decide(payload, getConfig(c).MaxSearchDepth)
	if err != nil {
		return errorResponse(c, analysisErrorStatus(err), err)
	}

	// Failing to count a decision should not fail the request.
	if err = getDecisionStats(c).Record(c.Context(), payload.Strategy, resp.Depth, int(resp.Nodes)); err != nil {
		slog.Warn("Failed to record decision", "error", err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
