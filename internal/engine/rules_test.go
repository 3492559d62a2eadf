// internal/engine/rules_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-arena/server/internal/models"
)

func TestValidatePlay(t *testing.T) {
	scenarios := []struct {
		description  string
		card         *models.Card
		topCard      *models.Card
		currentColor models.Color
		playable     bool
	}{
		{
			description:  "same_color_number",
			card:         numberCard(models.ColorRed, 3),
			topCard:      numberCard(models.ColorRed, 7),
			currentColor: models.ColorRed,
			playable:     true,
		},
		{
			description:  "same_value_across_colors",
			card:         numberCard(models.ColorBlue, 5),
			topCard:      numberCard(models.ColorRed, 5),
			currentColor: models.ColorRed,
			playable:     true,
		},
		{
			description:  "different_color_and_value",
			card:         numberCard(models.ColorBlue, 3),
			topCard:      numberCard(models.ColorRed, 5),
			currentColor: models.ColorRed,
			playable:     false,
		},
		{
			description:  "skip_on_skip_across_colors",
			card:         actionCard(models.ColorGreen, models.KindSkip),
			topCard:      actionCard(models.ColorYellow, models.KindSkip),
			currentColor: models.ColorYellow,
			playable:     true,
		},
		{
			description:  "reverse_on_reverse_across_colors",
			card:         actionCard(models.ColorRed, models.KindReverse),
			topCard:      actionCard(models.ColorBlue, models.KindReverse),
			currentColor: models.ColorBlue,
			playable:     true,
		},
		{
			description:  "draw_two_on_draw_two_across_colors",
			card:         actionCard(models.ColorRed, models.KindDrawTwo),
			topCard:      actionCard(models.ColorBlue, models.KindDrawTwo),
			currentColor: models.ColorBlue,
			playable:     true,
		},
		{
			description:  "skip_on_reverse_across_colors",
			card:         actionCard(models.ColorRed, models.KindSkip),
			topCard:      actionCard(models.ColorBlue, models.KindReverse),
			currentColor: models.ColorBlue,
			playable:     false,
		},
		{
			description:  "wild_is_always_playable",
			card:         wildCard(models.KindWild),
			topCard:      numberCard(models.ColorRed, 5),
			currentColor: models.ColorRed,
			playable:     true,
		},
		{
			description:  "wild_draw_four_is_always_playable",
			card:         wildCard(models.KindWildDrawFour),
			topCard:      numberCard(models.ColorRed, 5),
			currentColor: models.ColorRed,
			playable:     true,
		},
		{
			description:  "matches_chosen_color_after_wild",
			card:         numberCard(models.ColorGreen, 2),
			topCard:      wildCard(models.KindWild),
			currentColor: models.ColorGreen,
			playable:     true,
		},
		{
			description:  "misses_chosen_color_after_wild",
			card:         numberCard(models.ColorRed, 2),
			topCard:      wildCard(models.KindWild),
			currentColor: models.ColorGreen,
			playable:     false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := validatePlay(scenario.card, scenario.topCard, scenario.currentColor)
			require.Equal(t, scenario.playable, result)
		})
	}
}

func TestNextTurnWraps(t *testing.T) {
	state := &models.GameState{
		Players: []*models.Player{
			{ID: "p1"}, {ID: "p2"}, {ID: "p3"},
		},
		Direction: models.DirectionRight,
	}

	nextTurn(state)
	assert.Equal(t, 1, state.CurrentPlayerIndex)
	nextTurn(state)
	nextTurn(state)
	assert.Equal(t, 0, state.CurrentPlayerIndex, "forward rotation wraps at the end")

	state.Direction = models.DirectionLeft
	nextTurn(state)
	assert.Equal(t, 2, state.CurrentPlayerIndex, "backward rotation wraps at the start")
}
