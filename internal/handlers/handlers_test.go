package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"highscore-backend/internal/config"
	"highscore-backend/internal/handlers"
	"highscore-backend/internal/repository"
	"highscore-backend/internal/routes"
	"highscore-backend/internal/services"
	"highscore-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type HandlersSuite struct {
	suite.Suite
	app *fiber.App
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	db := testutil.OpenDatabase(s.T())
	log := testutil.NopLogger()
	service := services.NewHighscoreService(
		repository.NewGameRepository(db, config.DeleteRestrict),
		repository.NewGenreRepository(db),
		repository.NewScoreRepository(db, config.DedupByTitle),
		log,
	)

	s.app = fiber.New()
	routes.Setup(s.app,
		handlers.NewGameHandler(service, log),
		handlers.NewScoreHandler(service, log),
		handlers.NewGenreHandler(service, log),
		handlers.NewUploadHandler(nil, log),
	)
}

func (s *HandlersSuite) do(method, path string, body any) (*http.Response, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &env))
	}
	return resp, env
}

func (s *HandlersSuite) seedStarFox() uint {
	resp, env := s.do(http.MethodPost, "/api/genres", map[string]string{"genre": "Shooter"})
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var genre struct {
		ID uint `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &genre))

	resp, env = s.do(http.MethodPost, "/api/games", map[string]any{
		"title":        "Star Fox",
		"release_date": "1993-02-21",
		"genre_id":     genre.ID,
	})
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal("/api/games/star-fox", resp.Header.Get(fiber.HeaderLocation))
	var game struct {
		ID      uint   `json:"id"`
		URLSlug string `json:"url_slug"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &game))
	s.Equal("star-fox", game.URLSlug)
	return game.ID
}

func (s *HandlersSuite) TestGameLifecycle() {
	gameID := s.seedStarFox()

	resp, _ := s.do(http.MethodPost, "/api/scores", map[string]any{
		"game_id":    gameID,
		"player":     "Ann",
		"created_at": "2024-01-01",
		"points":     "42.5",
	})
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	resp, env := s.do(http.MethodGet, "/api/games/star-fox", nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var detail struct {
		Game struct {
			Title string `json:"title"`
			Genre string `json:"genre"`
		} `json:"game"`
		Scores []struct {
			Player      string  `json:"player"`
			Points      float64 `json:"points"`
			ReleaseYear string  `json:"release_date"`
		} `json:"scores"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &detail))
	s.Equal("Star Fox", detail.Game.Title)
	s.Equal("Shooter", detail.Game.Genre)
	s.Require().Len(detail.Scores, 1)
	s.Equal("Ann", detail.Scores[0].Player)
	s.Equal(42.5, detail.Scores[0].Points)
	s.Equal("1993", detail.Scores[0].ReleaseYear)

	resp, _ = s.do(http.MethodDelete, "/api/games/star-fox", nil)
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *HandlersSuite) TestGetGameNotFound() {
	resp, env := s.do(http.MethodGet, "/api/games/missing", nil)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal("error", env.Status)
}

func (s *HandlersSuite) TestGetGamesSearchesByTitle() {
	s.seedStarFox()

	resp, env := s.do(http.MethodGet, "/api/games?title=STAR", nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var games []map[string]any
	s.Require().NoError(json.Unmarshal(env.Data, &games))
	s.Len(games, 1)

	resp, env = s.do(http.MethodGet, "/api/games?title=zelda", nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Require().NoError(json.Unmarshal(env.Data, &games))
	s.Empty(games)
}

func (s *HandlersSuite) TestGameOptionsRouteIsNotASlug() {
	gameID := s.seedStarFox()

	resp, env := s.do(http.MethodGet, "/api/games/options", nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var options []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &options))
	s.Require().Len(options, 1)
	s.Equal(gameID, options[0].ID)
}

func (s *HandlersSuite) TestCreateScoreRejectsNonNumericPoints() {
	gameID := s.seedStarFox()

	resp, _ := s.do(http.MethodPost, "/api/scores", map[string]any{
		"game_id":    gameID,
		"player":     "Ann",
		"created_at": "2024-01-01",
		"points":     "lots",
	})
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *HandlersSuite) TestCreateScoreForUnknownGame() {
	resp, _ := s.do(http.MethodPost, "/api/scores", map[string]any{
		"game_id":    999,
		"player":     "Ann",
		"created_at": "2024-01-01",
		"points":     10,
	})
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *HandlersSuite) TestCreateGameRejectsMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader([]byte("{")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *HandlersSuite) TestDeleteUnknownGameIsNoContent() {
	resp, _ := s.do(http.MethodDelete, "/api/games/missing", nil)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
}

func (s *HandlersSuite) TestFeedListsGamesWithoutScores() {
	s.seedStarFox()

	resp, env := s.do(http.MethodGet, "/api/scores/feed", nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var feed []struct {
		Title  string  `json:"title"`
		Player string  `json:"player"`
		Points float64 `json:"points"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &feed))
	s.Require().Len(feed, 1)
	s.Equal("Star Fox", feed[0].Title)
	s.Equal("N/A", feed[0].Player)
	s.Zero(feed[0].Points)
}

func (s *HandlersSuite) TestPresignWithoutCoverStorage() {
	resp, _ := s.do(http.MethodGet, "/api/uploads/presign?filename=cover.png", nil)
	s.Equal(fiber.StatusServiceUnavailable, resp.StatusCode)
}
