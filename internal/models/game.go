package models

import (
	"time"
)

type Game struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	Title       string     `gorm:"not null;index" json:"title" example:"Star Fox"`
	Description *string    `gorm:"type:text" json:"description,omitempty" example:"On-rails shooter"`
	ImageURL    *string    `gorm:"column:image_url" json:"image_url,omitempty" example:"https://cdn.example.com/starfox.jpg"`
	ReleaseDate *time.Time `gorm:"type:date" json:"release_date,omitempty"`
	URLSlug     string     `gorm:"column:url_slug;not null;uniqueIndex" json:"url_slug" example:"star-fox"`
}

func (Game) TableName() string {
	return "game"
}

// NewGame is the write model for a game. Each game is linked to exactly one
// genre at creation time even though game_genre allows many.
type NewGame struct {
	Title       string  `json:"title" validate:"required" example:"Star Fox"`
	Description *string `json:"description" example:"On-rails shooter"`
	ImageURL    *string `json:"image_url" example:"https://cdn.example.com/starfox.jpg"`
	ReleaseDate string  `json:"release_date" example:"1993-02-21"`
	GenreID     uint    `json:"genre_id" validate:"required" example:"3"`
}

// GameSummary is a catalog or search row.
type GameSummary struct {
	ID          uint    `json:"id" example:"1"`
	Title       string  `json:"title" example:"Star Fox"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	ReleaseYear string  `json:"release_date" example:"1993"`
	Genre       string  `json:"genre" example:"Shooter"`
	URLSlug     string  `json:"url_slug" example:"star-fox"`
}

type GameDetail struct {
	ID          uint       `json:"id" example:"1"`
	Title       string     `json:"title" example:"Star Fox"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	GenreID     uint       `json:"genre_id" example:"3"`
	Genre       string     `json:"genre" example:"Shooter"`
	URLSlug     string     `json:"url_slug" example:"star-fox"`
}

// GameOption is an (id, title) pair used to pick a game when entering a score.
type GameOption struct {
	ID    uint   `json:"id" example:"1"`
	Title string `json:"title" example:"Star Fox"`
}

// GameWithScores is the game page read model: the game plus its top ranking.
type GameWithScores struct {
	Game   GameDetail `json:"game"`
	Scores []ScoreRow `json:"scores"`
}
