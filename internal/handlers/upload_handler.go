package handlers

import (
	"context"

	"highscore-backend/internal/services"
	"highscore-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CoverPresigner hands out upload URLs for cover images.
type CoverPresigner interface {
	PresignUpload(ctx context.Context, filename string) (*services.PresignedUpload, error)
}

type UploadHandler struct {
	covers CoverPresigner
	logger *logrus.Logger
}

// NewUploadHandler accepts a nil presigner when cover storage is disabled.
func NewUploadHandler(covers CoverPresigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		covers: covers,
		logger: logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a cover image upload
// @Description Generate a presigned PUT URL for uploading a game cover to MinIO/S3. Use public_url as the game's image_url.
// @Tags uploads
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse{data=services.PresignedUpload}
// @Failure 400 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse "Cover storage disabled"
// @Router /uploads/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.covers == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "cover storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	upload, err := h.covers.PresignUpload(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}
