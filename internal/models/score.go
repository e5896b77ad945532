package models

import "time"

// Score is append-only. Nothing updates or deletes a score except the
// cascade delete policy for games.
type Score struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	GameID    uint      `gorm:"not null;index:idx_score_game_points,priority:1" json:"game_id" example:"1"`
	Game      *Game     `gorm:"foreignKey:GameID" json:"-"`
	Player    string    `gorm:"not null" json:"player" example:"Ann"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	Points    float64   `gorm:"type:double precision;not null;index:idx_score_game_points,priority:2" json:"points" example:"42.5"`
}

func (Score) TableName() string {
	return "score"
}

// NewScore is the write model for a score. Points and CreatedAt arrive as
// whatever the caller sent (number or text) and are coerced before storage.
type NewScore struct {
	GameID    uint   `json:"game_id" validate:"required" example:"1"`
	Player    string `json:"player" validate:"required" example:"Ann"`
	CreatedAt any    `json:"created_at" validate:"required" swaggertype:"string" example:"2024-01-01"`
	Points    any    `json:"points" swaggertype:"number" example:"42.5"`
}

// Highscore is a (title, points) pair. Title is nil when the score's game
// no longer exists.
type Highscore struct {
	ID        uint      `json:"id" example:"1"`
	Title     *string   `json:"title" example:"Star Fox"`
	Player    string    `json:"player" example:"Ann"`
	CreatedAt time.Time `json:"created_at"`
	Points    float64   `json:"points" example:"42.5"`
}

// ScoreRow is one line of a game's top ranking.
type ScoreRow struct {
	Title       string  `json:"title" example:"Star Fox"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	ReleaseYear string  `json:"release_date" example:"1993"`
	Genre       string  `json:"genre" example:"Shooter"`
	Player      string  `json:"player" example:"Ann"`
	CreatedAt   string  `json:"created_at" example:"2024-01-01"`
	Points      float64 `json:"points" example:"42.5"`
}

// GameWithLatestScore is one row of the global feed. Games without scores
// carry Points 0 and "N/A" for player and date.
type GameWithLatestScore struct {
	GameID    uint    `json:"game_id" example:"1"`
	Title     string  `json:"title" example:"Star Fox"`
	URLSlug   string  `json:"url_slug" example:"star-fox"`
	Points    float64 `json:"points" example:"42.5"`
	Player    string  `json:"player" example:"Ann"`
	CreatedAt string  `json:"created_at" example:"2024-01-01"`
}

// NoScore fills player and date of feed rows for games without scores.
const NoScore = "N/A"

// DateLayout is how calendar dates are rendered in read models.
const DateLayout = "2006-01-02"
