package handlers

import (
	"highscore-backend/internal/models"
	"highscore-backend/internal/services"
	"highscore-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GameHandler struct {
	service services.HighscoreService
	logger  *logrus.Logger
}

func NewGameHandler(service services.HighscoreService, logger *logrus.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		logger:  logger,
	}
}

// GetGames godoc
// @Summary Get all games
// @Description Get the catalog ordered by id, or the games whose title contains the given text (case-insensitive)
// @Tags games
// @Accept json
// @Produce json
// @Param title query string false "Title search term"
// @Success 200 {object} utils.StandardResponse{data=[]models.GameSummary} "List of games"
// @Failure 503 {object} utils.StandardResponse "Database unavailable"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /games [get]
func (h *GameHandler) GetGames(c *fiber.Ctx) error {
	ctx := c.Context()

	var (
		games []models.GameSummary
		err   error
	)
	if title := c.Query("title"); title != "" {
		games, err = h.service.SearchResults(ctx, title)
	} else {
		games, err = h.service.Catalog(ctx)
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get games")
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve games")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Games retrieved successfully", games)
}

// GetGame godoc
// @Summary Get game by slug
// @Description Get a game and its top 10 scores
// @Tags games
// @Accept json
// @Produce json
// @Param urlSlug path string true "Game URL slug"
// @Success 200 {object} utils.StandardResponse{data=models.GameWithScores} "Game details"
// @Failure 404 {object} utils.StandardResponse "Game not found"
// @Router /games/{urlSlug} [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	ctx := c.Context()
	urlSlug := c.Params("urlSlug")

	detail, err := h.service.GameDetail(ctx, urlSlug)
	if err != nil {
		if utils.StatusFor(err) != fiber.StatusNotFound {
			h.logger.WithError(err).WithField("url_slug", urlSlug).Error("Failed to get game")
		}
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve game")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Game retrieved successfully", detail)
}

// CreateGame godoc
// @Summary Create a new game
// @Description Create a game linked to one genre. The URL slug is derived from the title.
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.NewGame true "Game details"
// @Success 201 {object} utils.StandardResponse{data=models.Game} "Game created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 409 {object} utils.StandardResponse "Duplicate slug or unknown genre"
// @Router /games [post]
func (h *GameHandler) CreateGame(c *fiber.Ctx) error {
	ctx := c.Context()

	var req models.NewGame
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	game, err := h.service.CreateGame(ctx, req)
	if err != nil {
		h.logger.WithError(err).WithField("title", req.Title).Error("Failed to create game")
		return utils.ServiceErrorResponse(c, err, "Failed to create game")
	}

	c.Location("/api/games/" + game.URLSlug)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Game created successfully", game)
}

// DeleteGame godoc
// @Summary Delete a game
// @Description Delete a game by slug. Unknown slugs are ignored.
// @Tags games
// @Param urlSlug path string true "Game URL slug"
// @Success 204 "Game deleted"
// @Failure 409 {object} utils.StandardResponse "Game still has scores"
// @Router /games/{urlSlug} [delete]
func (h *GameHandler) DeleteGame(c *fiber.Ctx) error {
	ctx := c.Context()
	urlSlug := c.Params("urlSlug")

	if err := h.service.DeleteGame(ctx, urlSlug); err != nil {
		h.logger.WithError(err).WithField("url_slug", urlSlug).Error("Failed to delete game")
		return utils.ServiceErrorResponse(c, err, "Failed to delete game")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetGameHighscores godoc
// @Summary Get game highscores
// @Description Get every score recorded for a game, highest first
// @Tags games
// @Produce json
// @Param urlSlug path string true "Game URL slug"
// @Success 200 {object} utils.StandardResponse{data=[]models.Highscore} "Game highscores"
// @Router /games/{urlSlug}/highscores [get]
func (h *GameHandler) GetGameHighscores(c *fiber.Ctx) error {
	ctx := c.Context()
	urlSlug := c.Params("urlSlug")

	scores, err := h.service.GameHighscores(ctx, urlSlug)
	if err != nil {
		h.logger.WithError(err).WithField("url_slug", urlSlug).Error("Failed to get game highscores")
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve highscores")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Highscores retrieved successfully", scores)
}

// GetGameOptions godoc
// @Summary Get game options
// @Description Get (id, title) pairs for picking a game when entering a score
// @Tags games
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.GameOption} "Game options"
// @Router /games/options [get]
func (h *GameHandler) GetGameOptions(c *fiber.Ctx) error {
	options, err := h.service.GameOptions(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get game options")
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve game options")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Game options retrieved successfully", options)
}
