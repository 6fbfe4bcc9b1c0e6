package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/CASCAD1AN/basic-chess-game/internal/core"
	"github.com/CASCAD1AN/basic-chess-game/internal/game"
)

var validate = validator.New()

// CreateGame creates a new game and returns its initial state
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	gameID := h.svc.GenerateGameID()

	if err := h.svc.CreateGame(gameID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "failed to create game",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	g, _ := h.svc.GetGame(gameID)
	return c.Status(fiber.StatusCreated).JSON(gameResponse(gameID, g))
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(gameResponse(gameID, g))
}

// GetBoard returns the rendered board alongside the game state
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(BoardResponse{
		GameID:  gameID,
		Board:   g.Board().ToText(),
		Turn:    g.Turn().String(),
		Outcome: g.Outcome().String(),
	})
}

// MakeMove submits a move for the player whose turn it is
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request body",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	if errs := validate.Struct(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation failed",
			Code:    core.ErrInvalidRequest,
			Details: validationDetails(errs),
		})
	}

	from, err := core.ParseSquare(req.From)
	if err != nil {
		return invalidSquare(c, err)
	}
	to, err := core.ParseSquare(req.To)
	if err != nil {
		return invalidSquare(c, err)
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	if err := h.svc.ApplyMove(gameID, from, to); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "move rejected",
			Code:    moveErrorCode(err),
			Details: err.Error(),
		})
	}

	return c.JSON(gameResponse(gameID, g))
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return gameNotFound(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func gameResponse(gameID string, g *game.Game) GameResponse {
	return GameResponse{
		GameID:  gameID,
		Turn:    g.Turn().String(),
		Outcome: g.Outcome().String(),
	}
}

func gameNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error: "game not found",
		Code:  core.ErrGameNotFound,
	})
}

func invalidSquare(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid square",
		Code:    core.ErrInvalidSquare,
		Details: err.Error(),
	})
}

// moveErrorCode maps game rejection reasons to API error codes
func moveErrorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return core.ErrGameOver
	case errors.Is(err, game.ErrWrongTurn):
		return core.ErrNotPlayersTurn
	default:
		return core.ErrInvalidMove
	}
}

func validationDetails(errs error) string {
	var details strings.Builder
	var verrs validator.ValidationErrors
	if !errors.As(errs, &verrs) {
		return errs.Error()
	}
	for _, err := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(err.Field() + " is required")
		case "len":
			details.WriteString(err.Field() + " must be exactly " + err.Param() + " characters")
		default:
			details.WriteString(err.Field() + " failed " + err.Tag() + " validation")
		}
	}
	return details.String()
}
