package utils

import (
	"errors"
	"fmt"
	"testing"

	"highscore-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: tetris", models.ErrGameNotFound), fiber.StatusNotFound},
		{fmt.Errorf("%w: duplicate slug", models.ErrConstraintViolation), fiber.StatusConflict},
		{fmt.Errorf("%w: points", models.ErrTypeCoercion), fiber.StatusBadRequest},
		{fmt.Errorf("query: %w", models.ErrStoreUnavailable), fiber.StatusServiceUnavailable},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
