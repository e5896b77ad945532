package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"highscore-backend/internal/config"
	"highscore-backend/internal/database"
	"highscore-backend/internal/models"
	"highscore-backend/internal/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm/clause"
)

type ScoreRepositorySuite struct {
	suite.Suite
	db      *database.Database
	games   GameRepository
	scores  ScoreRepository
	genreID uint
	ctx     context.Context
}

func TestScoreRepositorySuite(t *testing.T) {
	suite.Run(t, new(ScoreRepositorySuite))
}

func (s *ScoreRepositorySuite) SetupTest() {
	s.db = testutil.OpenDatabase(s.T())
	s.games = NewGameRepository(s.db, config.DeleteRestrict)
	s.scores = NewScoreRepository(s.db, config.DedupByTitle)
	s.ctx = context.Background()

	genre, err := NewGenreRepository(s.db).Create(s.ctx, "Shooter")
	s.Require().NoError(err)
	s.genreID = genre.ID
}

func (s *ScoreRepositorySuite) game(title string) *models.Game {
	game, err := s.games.Create(s.ctx, models.NewGame{Title: title, ReleaseDate: "1993-02-21", GenreID: s.genreID})
	s.Require().NoError(err)
	return game
}

func (s *ScoreRepositorySuite) score(gameID uint, player, date string, points any) *models.Score {
	score, err := s.scores.Create(s.ctx, models.NewScore{GameID: gameID, Player: player, CreatedAt: date, Points: points})
	s.Require().NoError(err)
	return score
}

func (s *ScoreRepositorySuite) countScores() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Score{}).Count(&n).Error)
	return n
}

// Create tests

func (s *ScoreRepositorySuite) TestCreateCoercesTextPoints() {
	game := s.game("Star Fox")

	score := s.score(game.ID, "Ann", "2024-01-01", "42.5")
	s.NotZero(score.ID)
	s.Equal(42.5, score.Points)
	s.Equal("2024-01-01", score.CreatedAt.Format(models.DateLayout))
}

func (s *ScoreRepositorySuite) TestCreateAcceptsNumericPoints() {
	game := s.game("Star Fox")

	for i, points := range []any{7, 7.25, int64(-3), json.Number("12.5"), " 99 "} {
		score := s.score(game.ID, fmt.Sprintf("p%d", i), "2024-01-01T10:00:00Z", points)
		s.NotZero(score.ID)
	}
	s.Equal(int64(5), s.countScores())
}

func (s *ScoreRepositorySuite) TestCreateRejectsNonNumericPoints() {
	game := s.game("Star Fox")

	for _, points := range []any{"lots", "", "   ", nil, true, math.NaN(), math.Inf(1), "NaN"} {
		_, err := s.scores.Create(s.ctx, models.NewScore{GameID: game.ID, Player: "Ann", CreatedAt: "2024-01-01", Points: points})
		s.ErrorIs(err, models.ErrTypeCoercion, "points %v", points)
	}
	s.Zero(s.countScores())
}

func (s *ScoreRepositorySuite) TestCreateRejectsBadDate() {
	game := s.game("Star Fox")

	_, err := s.scores.Create(s.ctx, models.NewScore{GameID: game.ID, Player: "Ann", CreatedAt: "yesterday", Points: 1})
	s.ErrorIs(err, models.ErrTypeCoercion)
	s.Zero(s.countScores())
}

func (s *ScoreRepositorySuite) TestCreateRequiresPlayerAndGame() {
	game := s.game("Star Fox")

	_, err := s.scores.Create(s.ctx, models.NewScore{GameID: game.ID, CreatedAt: "2024-01-01", Points: 1})
	s.ErrorIs(err, models.ErrConstraintViolation)

	_, err = s.scores.Create(s.ctx, models.NewScore{Player: "Ann", CreatedAt: "2024-01-01", Points: 1})
	s.ErrorIs(err, models.ErrConstraintViolation)
	s.Zero(s.countScores())
}

func (s *ScoreRepositorySuite) TestCreateUnknownGameIsConstraintViolation() {
	_, err := s.scores.Create(s.ctx, models.NewScore{GameID: 999, Player: "Ann", CreatedAt: "2024-01-01", Points: 1})
	s.ErrorIs(err, models.ErrConstraintViolation)
	s.Zero(s.countScores())
}

func (s *ScoreRepositorySuite) TestCreateAllowsZeroPoints() {
	game := s.game("Star Fox")
	score := s.score(game.ID, "Ann", "2024-01-01", 0)
	s.Zero(score.Points)
}

// TopForGame tests

func (s *ScoreRepositorySuite) TestTopForGameStarFoxScenario() {
	game := s.game("Star Fox")
	s.Equal("star-fox", game.URLSlug)
	s.score(game.ID, "Ann", "2024-01-01", "42.5")

	rows, err := s.scores.TopForGame(s.ctx, "star-fox", 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(42.5, rows[0].Points)
	s.Equal("Ann", rows[0].Player)
	s.Equal("Star Fox", rows[0].Title)
	s.Equal("Shooter", rows[0].Genre)
	s.Equal("1993", rows[0].ReleaseYear)
	s.Equal("2024-01-01", rows[0].CreatedAt)
}

func (s *ScoreRepositorySuite) TestTopForGameCapsAtTenAndSortsDescending() {
	game := s.game("Star Fox")
	other := s.game("Doom")
	for i := 0; i < 15; i++ {
		s.score(game.ID, fmt.Sprintf("p%02d", i), "2024-01-01", float64((i*7)%11)+0.5)
	}
	s.score(other.ID, "intruder", "2024-01-01", 1000)

	for _, limit := range []int{10, 0, -1, 50} {
		rows, err := s.scores.TopForGame(s.ctx, game.URLSlug, limit)
		s.Require().NoError(err)
		s.Len(rows, MaxRanking)
		for i := 1; i < len(rows); i++ {
			s.GreaterOrEqual(rows[i-1].Points, rows[i].Points)
		}
		for _, row := range rows {
			s.NotEqual("intruder", row.Player)
		}
	}

	rows, err := s.scores.TopForGame(s.ctx, game.URLSlug, 3)
	s.Require().NoError(err)
	s.Len(rows, 3)
}

func (s *ScoreRepositorySuite) TestTopForGameTiesAreDeterministic() {
	game := s.game("Star Fox")
	for _, player := range []string{"Ann", "Bob", "Cid", "Dee"} {
		s.score(game.ID, player, "2024-01-01", 50)
	}

	first, err := s.scores.TopForGame(s.ctx, game.URLSlug, 10)
	s.Require().NoError(err)
	second, err := s.scores.TopForGame(s.ctx, game.URLSlug, 10)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal("Ann", first[0].Player)
	s.Equal("Dee", first[3].Player)
}

func (s *ScoreRepositorySuite) TestTopForGameWithSeveralGenreLinks() {
	game := s.game("Star Fox")
	arcade, err := NewGenreRepository(s.db).Create(s.ctx, "Arcade")
	s.Require().NoError(err)
	s.Require().NoError(s.db.Omit(clause.Associations).Create(&models.GameGenre{GameID: game.ID, GenreID: arcade.ID}).Error)

	for i := 0; i < 6; i++ {
		s.score(game.ID, fmt.Sprintf("p%d", i), "2024-01-01", i)
	}

	rows, err := s.scores.TopForGame(s.ctx, game.URLSlug, 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 6)
	for i, row := range rows {
		s.Equal(float64(5-i), row.Points)
		s.Equal(fmt.Sprintf("p%d", 5-i), row.Player)
		s.Equal("Shooter", row.Genre)
	}

	detail, err := s.games.FindBySlug(s.ctx, game.URLSlug)
	s.Require().NoError(err)
	s.Equal(detail.Genre, rows[0].Genre)
}

func (s *ScoreRepositorySuite) TestTopForGameUnknownSlug() {
	rows, err := s.scores.TopForGame(s.ctx, "nope", 10)
	s.Require().NoError(err)
	s.Empty(rows)
}

// ListAll / ListForGame tests

func (s *ScoreRepositorySuite) TestListAllJoinsTitles() {
	fox := s.game("Star Fox")
	doom := s.game("Doom")
	s.score(fox.ID, "Ann", "2024-01-01", 10)
	s.score(doom.ID, "Bob", "2024-01-02", 20)

	scores, err := s.scores.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Require().NotNil(scores[0].Title)
	s.Equal("Star Fox", *scores[0].Title)
	s.Equal(10.0, scores[0].Points)
	s.Equal("Doom", *scores[1].Title)
}

func (s *ScoreRepositorySuite) TestListAllKeepsDanglingScores() {
	sqlDB, err := s.db.DB.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(s.db.Exec("PRAGMA foreign_keys = OFF").Error)
	s.Require().NoError(s.db.Exec(
		"INSERT INTO score (game_id, player, created_at, points) VALUES (?, ?, ?, ?)",
		4242, "Ghost", "2024-01-01 00:00:00+00:00", 5.0,
	).Error)

	scores, err := s.scores.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Nil(scores[0].Title)
	s.Equal("Ghost", scores[0].Player)
}

func (s *ScoreRepositorySuite) TestListForGameReturnsOnlyThatGame() {
	fox := s.game("Star Fox")
	doom := s.game("Doom")
	for i := 0; i < 12; i++ {
		s.score(fox.ID, "Ann", "2024-01-01", i)
	}
	s.score(doom.ID, "Bob", "2024-01-01", 100)

	scores, err := s.scores.ListForGame(s.ctx, fox.URLSlug)
	s.Require().NoError(err)
	s.Len(scores, 12)
	s.Equal(11.0, scores[0].Points)
}

// LatestPerGame tests

func (s *ScoreRepositorySuite) TestLatestPerGameDefaultsForGamesWithoutScores() {
	s.game("Tetris")

	feed, err := s.scores.LatestPerGame(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feed, 1)
	s.Equal("Tetris", feed[0].Title)
	s.Equal("tetris", feed[0].URLSlug)
	s.Zero(feed[0].Points)
	s.Equal("N/A", feed[0].Player)
	s.Equal("N/A", feed[0].CreatedAt)
}

func (s *ScoreRepositorySuite) TestLatestPerGameOneRowPerTitleOrderedByTitle() {
	zelda := s.game("Zelda")
	doom := s.game("Doom")
	s.game("Asteroids")
	s.score(zelda.ID, "Ann", "2024-01-01", 10)
	s.score(zelda.ID, "Bob", "2024-02-01", 30)
	s.score(zelda.ID, "Cid", "2024-03-01", 20)
	s.score(doom.ID, "Dee", "2023-05-05", 5)

	feed, err := s.scores.LatestPerGame(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feed, 3)

	s.Equal("Asteroids", feed[0].Title)
	s.Equal("N/A", feed[0].Player)

	s.Equal("Doom", feed[1].Title)
	s.Equal("Dee", feed[1].Player)
	s.Equal(5.0, feed[1].Points)
	s.Equal("2023-05-05", feed[1].CreatedAt)

	s.Equal("Zelda", feed[2].Title)
	s.Equal("Bob", feed[2].Player)
	s.Equal(30.0, feed[2].Points)
}

func (s *ScoreRepositorySuite) TestLatestPerGamePrefersMostRecentOnEqualPoints() {
	game := s.game("Doom")
	s.score(game.ID, "Old", "2020-01-01", 50)
	s.score(game.ID, "New", "2024-01-01", 50)

	feed, err := s.scores.LatestPerGame(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feed, 1)
	s.Equal("New", feed[0].Player)
}

func (s *ScoreRepositorySuite) sameTitleGames() (*models.Game, *models.Game) {
	first := s.game("Doom")
	second := models.Game{Title: "Doom", URLSlug: "doom-2016"}
	s.Require().NoError(s.db.Create(&second).Error)
	s.Require().NoError(s.db.Create(&models.GameGenre{GameID: second.ID, GenreID: s.genreID}).Error)
	s.score(first.ID, "Ann", "2024-01-01", 10)
	s.score(second.ID, "Bob", "2024-01-01", 20)
	return first, &second
}

func (s *ScoreRepositorySuite) TestLatestPerGameTitleDedupCollapsesSharedTitles() {
	_, second := s.sameTitleGames()

	feed, err := s.scores.LatestPerGame(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feed, 1)
	s.Equal(second.ID, feed[0].GameID)
	s.Equal("Bob", feed[0].Player)
}

func (s *ScoreRepositorySuite) TestLatestPerGameGameDedupKeepsEachGame() {
	first, second := s.sameTitleGames()
	byGame := NewScoreRepository(s.db, config.DedupByGame)

	feed, err := byGame.LatestPerGame(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feed, 2)
	s.Equal(first.ID, feed[0].GameID)
	s.Equal("Ann", feed[0].Player)
	s.Equal(second.ID, feed[1].GameID)
	s.Equal("Bob", feed[1].Player)
}
