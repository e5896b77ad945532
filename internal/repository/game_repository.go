package repository

import (
	"context"
	"fmt"
	"time"

	"highscore-backend/internal/config"
	"highscore-backend/internal/database"
	"highscore-backend/internal/models"
	"highscore-backend/internal/slug"

	"github.com/spf13/cast"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	List(ctx context.Context) ([]models.GameSummary, error)
	Search(ctx context.Context, term string) ([]models.GameSummary, error)
	FindBySlug(ctx context.Context, urlSlug string) (*models.GameDetail, error)
	Create(ctx context.Context, input models.NewGame) (*models.Game, error)
	Delete(ctx context.Context, urlSlug string) (*models.Game, error)
	ListOptions(ctx context.Context) ([]models.GameOption, error)
}

type gameRepository struct {
	db           *database.Database
	timeout      time.Duration
	deletePolicy config.DeletePolicy
}

func NewGameRepository(db *database.Database, deletePolicy config.DeletePolicy) GameRepository {
	return &gameRepository{
		db:           db,
		timeout:      db.GetQueryTimeout(),
		deletePolicy: deletePolicy,
	}
}

type gameRow struct {
	ID          uint
	Title       string
	Description *string
	ImageURL    *string
	ReleaseDate *time.Time
	URLSlug     string
	GenreID     *uint
	Genre       *string
}

func (row gameRow) summary() models.GameSummary {
	return models.GameSummary{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		ReleaseYear: releaseYear(row.ReleaseDate),
		Genre:       genreOrDefault(row.Genre),
		URLSlug:     row.URLSlug,
	}
}

// catalogQuery outer-joins genres, so games without a genre link still show.
// It yields one row per genre link; Create writes exactly one.
func (r *gameRepository) catalogQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("game").
		Select("game.id, game.title, game.description, game.image_url, game.release_date, game.url_slug, genre.genre").
		Joins("LEFT JOIN game_genre ON game_genre.game_id = game.id").
		Joins("LEFT JOIN genre ON genre.id = game_genre.genre_id")
}

func (r *gameRepository) List(ctx context.Context) ([]models.GameSummary, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []gameRow
	if err := r.catalogQuery(ctx).Order("game.id ASC").Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toSummaries(rows), nil
}

// Search matches term anywhere in the title, ignoring case. LIKE wildcards
// in term are matched literally and an empty term matches every game.
func (r *gameRepository) Search(ctx context.Context, term string) ([]models.GameSummary, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []gameRow
	err := r.catalogQuery(ctx).
		Where(r.db.LowerFunc()+`(game.title) LIKE ? ESCAPE '\'`, likePattern(term)).
		Order("game.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toSummaries(rows), nil
}

// FindBySlug inner-joins the genre, so a game without a genre link is not
// found. It returns nil, nil when nothing matches.
func (r *gameRepository) FindBySlug(ctx context.Context, urlSlug string) (*models.GameDetail, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []gameRow
	err := r.db.WithContext(ctx).
		Table("game").
		Select("game.id, game.title, game.description, game.image_url, game.release_date, game.url_slug, game_genre.genre_id, genre.genre").
		Joins("INNER JOIN game_genre ON game_genre.game_id = game.id").
		Joins("INNER JOIN genre ON genre.id = game_genre.genre_id").
		Where("game.url_slug = ?", urlSlug).
		Order("game_genre.genre_id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	detail := &models.GameDetail{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		ReleaseDate: row.ReleaseDate,
		Genre:       genreOrDefault(row.Genre),
		URLSlug:     row.URLSlug,
	}
	if row.GenreID != nil {
		detail.GenreID = *row.GenreID
	}
	return detail, nil
}

// Create derives the slug from the title and stores the game together with
// its single genre link. Both rows are written in one transaction.
func (r *gameRepository) Create(ctx context.Context, input models.NewGame) (*models.Game, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	releaseDate, err := parseDate(input.ReleaseDate)
	if err != nil {
		return nil, err
	}

	urlSlug := slug.Make(input.Title)
	if urlSlug == "" {
		return nil, fmt.Errorf("%w: title %q has no letters or digits to build a slug from", models.ErrConstraintViolation, input.Title)
	}

	game := models.Game{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ReleaseDate: releaseDate,
		URLSlug:     urlSlug,
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&game).Error; err != nil {
			return err
		}
		link := models.GameGenre{GameID: game.ID, GenreID: input.GenreID}
		return tx.Omit(clause.Associations).Create(&link).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &game, nil
}

// Delete removes the game with the given slug along with its genre links.
// Scores are handled by the delete policy. An unknown slug is a no-op and
// returns nil, nil.
func (r *gameRepository) Delete(ctx context.Context, urlSlug string) (*models.Game, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var deleted *models.Game
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		res := tx.Where("url_slug = ?", urlSlug).Limit(1).Find(&game)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		switch r.deletePolicy {
		case config.DeleteCascade:
			if err := tx.Where("game_id = ?", game.ID).Delete(&models.Score{}).Error; err != nil {
				return err
			}
		default:
			var scores int64
			if err := tx.Model(&models.Score{}).Where("game_id = ?", game.ID).Count(&scores).Error; err != nil {
				return err
			}
			if scores > 0 {
				return fmt.Errorf("%w: game %q still has %d score(s)", models.ErrConstraintViolation, urlSlug, scores)
			}
		}

		if err := tx.Where("game_id = ?", game.ID).Delete(&models.GameGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Game{}, game.ID).Error; err != nil {
			return err
		}
		deleted = &game
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return deleted, nil
}

func (r *gameRepository) ListOptions(ctx context.Context) ([]models.GameOption, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var options []models.GameOption
	err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Select("id, title").
		Order("title ASC, id ASC").
		Scan(&options).Error
	if err != nil {
		return nil, translateError(err)
	}
	return options, nil
}

func toSummaries(rows []gameRow) []models.GameSummary {
	games := make([]models.GameSummary, 0, len(rows))
	for _, row := range rows {
		games = append(games, row.summary())
	}
	return games
}

// parseDate accepts "2006-01-02", RFC3339 and the other layouts cast knows.
// An empty value means the date is unknown.
func parseDate(value any) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	if s, ok := value.(string); ok && s == "" {
		return nil, nil
	}
	t, err := cast.ToTimeE(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a date: %w", models.ErrTypeCoercion, fmt.Sprint(value), err)
	}
	t = t.UTC()
	return &t, nil
}
