package services

import (
	"context"
	"fmt"

	"highscore-backend/internal/models"
	"highscore-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// HighscoreService is the query layer over the game, genre and score
// repositories. Reads have no side effects and are safe to call
// concurrently.
type HighscoreService interface {
	// Read models
	Catalog(ctx context.Context) ([]models.GameSummary, error)
	SearchResults(ctx context.Context, term string) ([]models.GameSummary, error)
	GameDetail(ctx context.Context, urlSlug string) (*models.GameWithScores, error)
	GlobalFeed(ctx context.Context) ([]models.GameWithLatestScore, error)

	// Score listings
	AllHighscores(ctx context.Context) ([]models.Highscore, error)
	GameHighscores(ctx context.Context, urlSlug string) ([]models.Highscore, error)

	// Lookups for entry forms
	GameOptions(ctx context.Context) ([]models.GameOption, error)
	Genres(ctx context.Context) ([]models.Genre, error)

	// Writes
	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	CreateGame(ctx context.Context, input models.NewGame) (*models.Game, error)
	DeleteGame(ctx context.Context, urlSlug string) error
	CreateScore(ctx context.Context, input models.NewScore) (*models.Score, error)
}

// CoverRemover deletes a stored cover image. Implemented by CoverStore.
type CoverRemover interface {
	DeleteCover(ctx context.Context, imageURL string) error
}

type highscoreService struct {
	games  repository.GameRepository
	genres repository.GenreRepository
	scores repository.ScoreRepository
	covers CoverRemover
	logger *logrus.Logger
}

func NewHighscoreService(games repository.GameRepository, genres repository.GenreRepository, scores repository.ScoreRepository, logger *logrus.Logger) HighscoreService {
	return &highscoreService{
		games:  games,
		genres: genres,
		scores: scores,
		logger: logger,
	}
}

func (s *highscoreService) SetCoverRemover(covers CoverRemover) {
	s.covers = covers
}

func (s *highscoreService) Catalog(ctx context.Context) ([]models.GameSummary, error) {
	return s.games.List(ctx)
}

func (s *highscoreService) SearchResults(ctx context.Context, term string) ([]models.GameSummary, error) {
	return s.games.Search(ctx, term)
}

// GameDetail combines the game with its top ranking. It returns
// models.ErrGameNotFound when the slug does not resolve.
func (s *highscoreService) GameDetail(ctx context.Context, urlSlug string) (*models.GameWithScores, error) {
	game, err := s.games.FindBySlug(ctx, urlSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find game %q: %w", urlSlug, err)
	}
	if game == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrGameNotFound, urlSlug)
	}

	ranking, err := s.scores.TopForGame(ctx, urlSlug, repository.MaxRanking)
	if err != nil {
		return nil, fmt.Errorf("failed to rank scores for %q: %w", urlSlug, err)
	}

	return &models.GameWithScores{
		Game:   *game,
		Scores: ranking,
	}, nil
}

func (s *highscoreService) GlobalFeed(ctx context.Context) ([]models.GameWithLatestScore, error) {
	return s.scores.LatestPerGame(ctx)
}

func (s *highscoreService) AllHighscores(ctx context.Context) ([]models.Highscore, error) {
	return s.scores.ListAll(ctx)
}

func (s *highscoreService) GameHighscores(ctx context.Context, urlSlug string) ([]models.Highscore, error) {
	return s.scores.ListForGame(ctx, urlSlug)
}

func (s *highscoreService) GameOptions(ctx context.Context) ([]models.GameOption, error) {
	return s.games.ListOptions(ctx)
}

func (s *highscoreService) Genres(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *highscoreService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	genre, err := s.genres.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"genre_id": genre.ID,
		"genre":    genre.Genre,
	}).Info("Genre created")
	return genre, nil
}

func (s *highscoreService) CreateGame(ctx context.Context, input models.NewGame) (*models.Game, error) {
	game, err := s.games.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"game_id":  game.ID,
		"url_slug": game.URLSlug,
		"genre_id": input.GenreID,
	}).Info("Game created")
	return game, nil
}

// DeleteGame deletes by slug; an unknown slug is not an error. A cover image
// owned by the cover store is removed afterwards on a best-effort basis.
func (s *highscoreService) DeleteGame(ctx context.Context, urlSlug string) error {
	game, err := s.games.Delete(ctx, urlSlug)
	if err != nil {
		return err
	}
	if game == nil {
		s.logger.WithField("url_slug", urlSlug).Debug("Delete of unknown game ignored")
		return nil
	}

	s.logger.WithFields(logrus.Fields{
		"game_id":  game.ID,
		"url_slug": game.URLSlug,
	}).Info("Game deleted")

	if s.covers != nil && game.ImageURL != nil && *game.ImageURL != "" {
		if err := s.covers.DeleteCover(ctx, *game.ImageURL); err != nil {
			s.logger.WithError(err).WithField("url_slug", urlSlug).Warn("Failed to delete cover image")
		}
	}
	return nil
}

func (s *highscoreService) CreateScore(ctx context.Context, input models.NewScore) (*models.Score, error) {
	score, err := s.scores.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"score_id": score.ID,
		"game_id":  score.GameID,
		"points":   score.Points,
	}).Debug("Score recorded")
	return score, nil
}
