package routes

import (
	"highscore-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, gameHandler *handlers.GameHandler, scoreHandler *handlers.ScoreHandler, genreHandler *handlers.GenreHandler, uploadHandler *handlers.UploadHandler) {
	api := app.Group("/api")

	// Game routes; options must precede the slug lookup
	games := api.Group("/games")
	{
		games.Get("/", gameHandler.GetGames)
		games.Get("/options", gameHandler.GetGameOptions)
		games.Post("/", gameHandler.CreateGame)
		games.Get("/:urlSlug", gameHandler.GetGame)
		games.Delete("/:urlSlug", gameHandler.DeleteGame)
		games.Get("/:urlSlug/highscores", gameHandler.GetGameHighscores)
	}

	scores := api.Group("/scores")
	{
		scores.Get("/highscores", scoreHandler.GetHighscores)
		scores.Get("/feed", scoreHandler.GetFeed)
		scores.Post("/", scoreHandler.CreateScore)
	}

	genres := api.Group("/genres")
	{
		genres.Get("/", genreHandler.GetGenres)
		genres.Post("/", genreHandler.CreateGenre)
	}

	upload := api.Group("/uploads")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
