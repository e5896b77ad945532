package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Star Fox", "star-fox"},
		{"Tetris", "tetris"},
		{"Super Mario Bros 3 Deluxe Edition", "super-mario-bros-3-deluxe-edition"},
		{"Half-Life 2", "half-life-2"},
		{"Spider-Man: Miles Morales", "spider-man-miles-morales"},
		{"  Doom  ", "doom"},
		{"R-Type -- Final", "r-type-final"},
		{"Pokémon Café", "pokemon-cafe"},
		{"Chess Quest", "chess-quest"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMakeIsStable(t *testing.T) {
	titles := []string{"Star Fox", "Half-Life 2", "Pokémon Café", "The Legend of Zelda"}
	for _, title := range titles {
		first := Make(title)
		assert.Equal(t, first, Make(title), "same title must give same slug")
		assert.Equal(t, first, Make(first), "slug of a slug must not change")
		assert.NotContains(t, first, " ")
	}
}
