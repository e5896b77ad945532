package models

type Genre struct {
	ID    uint   `gorm:"primaryKey" json:"id" example:"3"`
	Genre string `gorm:"column:genre;not null;uniqueIndex" json:"genre" example:"Shooter"`
}

func (Genre) TableName() string {
	return "genre"
}

type GameGenre struct {
	GameID  uint  `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	GenreID uint  `gorm:"primaryKey;autoIncrement:false;index" json:"genre_id"`
	Game    Game  `gorm:"foreignKey:GameID" json:"-"`
	Genre   Genre `gorm:"foreignKey:GenreID" json:"-"`
}

func (GameGenre) TableName() string {
	return "game_genre"
}

// NoGenre is shown in place of a genre when a game has no genre link.
const NoGenre = "N/A"
