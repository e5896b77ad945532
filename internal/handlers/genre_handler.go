package handlers

import (
	"highscore-backend/internal/services"
	"highscore-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.HighscoreService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.HighscoreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

type GenreRequest struct {
	Genre string `json:"genre" example:"Shooter"`
}

// GetGenres godoc
// @Summary Get all genres
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Genre} "List of genres"
// @Router /genres [get]
func (h *GenreHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.service.Genres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.ServiceErrorResponse(c, err, "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} utils.StandardResponse{data=models.Genre} "Genre created"
// @Failure 409 {object} utils.StandardResponse "Duplicate or empty genre"
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.CreateGenre(c.Context(), req.Genre)
	if err != nil {
		h.logger.WithError(err).WithField("genre", req.Genre).Error("Failed to create genre")
		return utils.ServiceErrorResponse(c, err, "Failed to create genre")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}
