package handlers

import (
	"highscore-backend/internal/models"
	"highscore-backend/internal/services"
	"highscore-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ScoreHandler struct {
	service services.HighscoreService
	logger  *logrus.Logger
}

func NewScoreHandler(service services.HighscoreService, logger *logrus.Logger) *ScoreHandler {
	return &ScoreHandler{
		service: service,
		logger:  logger,
	}
}

// GetHighscores godoc
// @Summary Get all highscores
// @Description Get every score with the title of its game
// @Tags highscores
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Highscore} "List of highscores"
// @Router /scores/highscores [get]
func (h *ScoreHandler) GetHighscores(c *fiber.Ctx) error {
	scores, err := h.service.AllHighscores(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get highscores")
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve highscores")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Highscores retrieved successfully", scores)
}

// GetFeed godoc
// @Summary Get the global highscore feed
// @Description One row per game title with its best score; games without scores show 0 points and N/A
// @Tags highscores
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.GameWithLatestScore} "Global feed"
// @Router /scores/feed [get]
func (h *ScoreHandler) GetFeed(c *fiber.Ctx) error {
	feed, err := h.service.GlobalFeed(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get feed")
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve feed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Feed retrieved successfully", feed)
}

// CreateScore godoc
// @Summary Create new highscore
// @Description Record a score. Points may be sent as a number or numeric text.
// @Tags highscores
// @Accept json
// @Produce json
// @Param score body models.NewScore true "Highscore details"
// @Success 201 {object} utils.StandardResponse{data=models.Score} "Highscore created"
// @Failure 400 {object} utils.StandardResponse "Invalid highscore"
// @Failure 409 {object} utils.StandardResponse "Unknown game or missing field"
// @Router /scores [post]
func (h *ScoreHandler) CreateScore(c *fiber.Ctx) error {
	ctx := c.Context()

	var req models.NewScore
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	score, err := h.service.CreateScore(ctx, req)
	if err != nil {
		h.logger.WithError(err).WithField("game_id", req.GameID).Error("Failed to create highscore")
		return utils.ServiceErrorResponse(c, err, "Failed to create highscore")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Highscore created successfully", score)
}
