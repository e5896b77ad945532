package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"highscore-backend/internal/database"
	"highscore-backend/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, name string) (*models.Genre, error)
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) Create(ctx context.Context, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: genre name is required", models.ErrConstraintViolation)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	genre := models.Genre{Genre: name}
	if err := r.db.WithContext(ctx).Create(&genre).Error; err != nil {
		return nil, translateError(err)
	}
	return &genre, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genres []models.Genre
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error; err != nil {
		return nil, translateError(err)
	}
	return genres, nil
}
