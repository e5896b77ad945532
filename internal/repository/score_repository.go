package repository

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"highscore-backend/internal/config"
	"highscore-backend/internal/database"
	"highscore-backend/internal/models"

	"github.com/spf13/cast"
	"gorm.io/gorm/clause"
)

// MaxRanking caps the number of rows in a game's ranking.
const MaxRanking = 10

type ScoreRepository interface {
	Create(ctx context.Context, input models.NewScore) (*models.Score, error)
	ListAll(ctx context.Context) ([]models.Highscore, error)
	ListForGame(ctx context.Context, urlSlug string) ([]models.Highscore, error)
	TopForGame(ctx context.Context, urlSlug string, limit int) ([]models.ScoreRow, error)
	LatestPerGame(ctx context.Context) ([]models.GameWithLatestScore, error)
}

type scoreRepository struct {
	db        *database.Database
	timeout   time.Duration
	feedDedup config.FeedDedup
}

func NewScoreRepository(db *database.Database, feedDedup config.FeedDedup) ScoreRepository {
	return &scoreRepository{
		db:        db,
		timeout:   db.GetQueryTimeout(),
		feedDedup: feedDedup,
	}
}

// Create coerces points and created_at and appends the score. Nothing is
// written when coercion fails.
func (r *scoreRepository) Create(ctx context.Context, input models.NewScore) (*models.Score, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	points, err := coercePoints(input.Points)
	if err != nil {
		return nil, err
	}

	createdAt, err := parseDate(input.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdAt == nil {
		return nil, fmt.Errorf("%w: missing required field(s) CreatedAt", models.ErrConstraintViolation)
	}

	score := models.Score{
		GameID:    input.GameID,
		Player:    input.Player,
		CreatedAt: *createdAt,
		Points:    points,
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&score).Error; err != nil {
		return nil, translateError(err)
	}
	return &score, nil
}

type highscoreRow struct {
	ID        uint
	Title     *string
	Player    string
	CreatedAt time.Time
	Points    float64
}

// ListAll returns every score with its game title. The title is nil for a
// score whose game row is gone.
func (r *scoreRepository) ListAll(ctx context.Context) ([]models.Highscore, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []highscoreRow
	err := r.db.WithContext(ctx).
		Table("score").
		Select("score.id, game.title, score.player, score.created_at, score.points").
		Joins("LEFT JOIN game ON game.id = score.game_id").
		Order("score.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toHighscores(rows), nil
}

func (r *scoreRepository) ListForGame(ctx context.Context, urlSlug string) ([]models.Highscore, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []highscoreRow
	err := r.db.WithContext(ctx).
		Table("score").
		Select("score.id, game.title, score.player, score.created_at, score.points").
		Joins("INNER JOIN game ON game.id = score.game_id").
		Where("game.url_slug = ?", urlSlug).
		Order("score.points DESC, score.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toHighscores(rows), nil
}

type rankingRow struct {
	Title       string
	Description *string
	ImageURL    *string
	ReleaseDate *time.Time
	Genre       *string
	Player      string
	CreatedAt   time.Time
	Points      float64
}

// TopForGame ranks a game's scores by points, highest first. Equal points
// keep insertion order. At most MaxRanking rows are returned; a limit
// outside 1..MaxRanking means MaxRanking. The genre shown is the game's
// lowest-id genre, as in FindBySlug.
func (r *scoreRepository) TopForGame(ctx context.Context, urlSlug string, limit int) ([]models.ScoreRow, error) {
	if limit <= 0 || limit > MaxRanking {
		limit = MaxRanking
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []rankingRow
	err := r.db.WithContext(ctx).
		Table("score").
		Select("game.title, game.description, game.image_url, game.release_date, genre.genre, score.player, score.created_at, score.points").
		Joins("INNER JOIN game ON game.id = score.game_id").
		Joins("LEFT JOIN (SELECT game_id, MIN(genre_id) AS genre_id FROM game_genre GROUP BY game_id) gg ON gg.game_id = game.id").
		Joins("LEFT JOIN genre ON genre.id = gg.genre_id").
		Where("game.url_slug = ?", urlSlug).
		Order("score.points DESC, score.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	ranking := make([]models.ScoreRow, 0, len(rows))
	for _, row := range rows {
		ranking = append(ranking, models.ScoreRow{
			Title:       row.Title,
			Description: row.Description,
			ImageURL:    row.ImageURL,
			ReleaseYear: releaseYear(row.ReleaseDate),
			Genre:       genreOrDefault(row.Genre),
			Player:      row.Player,
			CreatedAt:   row.CreatedAt.UTC().Format(models.DateLayout),
			Points:      row.Points,
		})
	}
	return ranking, nil
}

type feedRow struct {
	GameID    *uint
	Title     *string
	URLSlug   *string
	ScoreID   *uint
	Player    *string
	CreatedAt *time.Time
	Points    *float64
}

func (row feedRow) hasScore() bool {
	return row.ScoreID != nil
}

// beats reports whether row is a better feed entry than other: a score
// beats no score, then higher points, then the more recent date, then the
// later insert.
func (row feedRow) beats(other feedRow) bool {
	if row.hasScore() != other.hasScore() {
		return row.hasScore()
	}
	if !row.hasScore() {
		return false
	}
	if *row.Points != *other.Points {
		return *row.Points > *other.Points
	}
	if !row.CreatedAt.Equal(*other.CreatedAt) {
		return row.CreatedAt.After(*other.CreatedAt)
	}
	return *row.ScoreID > *other.ScoreID
}

// LatestPerGame builds the global feed: one row per title (or per game,
// depending on the dedup policy) ordered by title, carrying that group's
// best score. Games without scores get 0 points and "N/A" player and date.
func (r *scoreRepository) LatestPerGame(ctx context.Context) ([]models.GameWithLatestScore, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []feedRow
	err := r.db.WithContext(ctx).
		Table("game").
		Select("game.id AS game_id, game.title AS title, game.url_slug AS url_slug, " +
			"score.id AS score_id, score.player AS player, score.created_at AS created_at, score.points AS points").
		Joins("FULL OUTER JOIN score ON score.game_id = game.id").
		Order("game.title ASC, game.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	best := make([]feedRow, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		key := r.dedupKey(row)
		i, seen := index[key]
		if !seen {
			index[key] = len(best)
			best = append(best, row)
			continue
		}
		if row.beats(best[i]) {
			best[i] = row
		}
	}

	feed := make([]models.GameWithLatestScore, 0, len(best))
	for _, row := range best {
		feed = append(feed, row.toFeedEntry())
	}
	return feed, nil
}

func (r *scoreRepository) dedupKey(row feedRow) string {
	if r.feedDedup == config.DedupByGame {
		if row.GameID == nil {
			return "score:" + cast.ToString(*row.ScoreID)
		}
		return "game:" + cast.ToString(*row.GameID)
	}
	if row.Title == nil {
		return "untitled"
	}
	return "title:" + *row.Title
}

func (row feedRow) toFeedEntry() models.GameWithLatestScore {
	entry := models.GameWithLatestScore{
		Points:    0,
		Player:    models.NoScore,
		CreatedAt: models.NoScore,
	}
	if row.GameID != nil {
		entry.GameID = *row.GameID
	}
	if row.Title != nil {
		entry.Title = *row.Title
	}
	if row.URLSlug != nil {
		entry.URLSlug = *row.URLSlug
	}
	if row.hasScore() {
		entry.Points = *row.Points
		entry.Player = *row.Player
		entry.CreatedAt = row.CreatedAt.UTC().Format(models.DateLayout)
	}
	return entry
}

func toHighscores(rows []highscoreRow) []models.Highscore {
	scores := make([]models.Highscore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, models.Highscore{
			ID:        row.ID,
			Title:     row.Title,
			Player:    row.Player,
			CreatedAt: row.CreatedAt.UTC(),
			Points:    row.Points,
		})
	}
	return scores
}

// coercePoints turns a number or numeric text into a finite float64.
func coercePoints(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("%w: points are required", models.ErrTypeCoercion)
	case bool:
		return 0, fmt.Errorf("%w: points must be a number, got %v", models.ErrTypeCoercion, v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("%w: points must be a number, got empty text", models.ErrTypeCoercion)
		}
		value = trimmed
	}

	points, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("%w: points %q is not a number: %w", models.ErrTypeCoercion, fmt.Sprint(value), err)
	}
	if math.IsNaN(points) || math.IsInf(points, 0) {
		return 0, fmt.Errorf("%w: points must be finite, got %v", models.ErrTypeCoercion, points)
	}
	return points, nil
}
