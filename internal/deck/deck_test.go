// internal/deck/deck_test.go
package deck

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-arena/server/internal/models"
)

func TestNewCatalog(t *testing.T) {
	cards := NewCatalog()
	require.Len(t, cards, models.CatalogSize)

	type face struct {
		color models.Color
		kind  models.Kind
		value int
	}
	counts := map[face]int{}
	ids := map[uuid.UUID]bool{}
	for _, c := range cards {
		counts[face{c.Color, c.Kind, c.Value}]++
		ids[c.ID] = true
	}

	require.Len(t, ids, models.CatalogSize, "every card id must be unique")

	for _, color := range models.CardColors {
		assert.Equal(t, 1, counts[face{color, models.KindNumber, 0}], "%s zero", color)
		for value := 1; value <= 9; value++ {
			assert.Equal(t, 2, counts[face{color, models.KindNumber, value}], "%s %d", color, value)
		}
		assert.Equal(t, 2, counts[face{color, models.KindSkip, 0}], "%s skip", color)
		assert.Equal(t, 2, counts[face{color, models.KindReverse, 0}], "%s reverse", color)
		assert.Equal(t, 2, counts[face{color, models.KindDrawTwo, 0}], "%s draw two", color)
	}
	assert.Equal(t, 4, counts[face{models.ColorWild, models.KindWild, 0}])
	assert.Equal(t, 4, counts[face{models.ColorWild, models.KindWildDrawFour, 0}])
}

func TestNewCatalogSharedImages(t *testing.T) {
	cards := NewCatalog()

	// Identical faces share a visual but never an id.
	byImage := map[string][]*models.Card{}
	for _, c := range cards {
		byImage[c.ImageID] = append(byImage[c.ImageID], c)
	}
	fives := byImage["card_r5"]
	require.Len(t, fives, 2)
	assert.NotEqual(t, fives[0].ID, fives[1].ID)
}

func TestShuffle(t *testing.T) {
	t.Run("does_not_mutate_input", func(t *testing.T) {
		cards := NewCatalog()
		original := make([]*models.Card, len(cards))
		copy(original, cards)

		Shuffle(cards)

		require.Equal(t, original, cards)
	})

	t.Run("returns_a_permutation", func(t *testing.T) {
		cards := NewCatalog()
		shuffled := Shuffle(cards)
		require.ElementsMatch(t, cards, shuffled)
	})
}

func TestDraw(t *testing.T) {
	cards := NewCatalog()

	t.Run("splits_head_and_tail", func(t *testing.T) {
		drawn, remaining := Draw(cards, 7)
		require.Len(t, drawn, 7)
		require.Len(t, remaining, models.CatalogSize-7)
		assert.Equal(t, cards[:7], drawn)
	})

	t.Run("short_pile_returns_what_is_available", func(t *testing.T) {
		drawn, remaining := Draw(cards[:3], 5)
		require.Len(t, drawn, 3)
		require.Empty(t, remaining)
	})

	t.Run("zero_count_draws_nothing", func(t *testing.T) {
		drawn, remaining := Draw(cards, 0)
		require.Empty(t, drawn)
		require.Len(t, remaining, models.CatalogSize)
	})
}

func TestRefillFromDiscard(t *testing.T) {
	cards := NewCatalog()
	discard := cards[:12]
	top := discard[len(discard)-1]

	drawPile, newDiscard := RefillFromDiscard(discard)

	require.Len(t, newDiscard, 1)
	assert.Equal(t, top.ID, newDiscard[0].ID, "the top card stays on the discard pile")
	require.Len(t, drawPile, 11)
	assert.ElementsMatch(t, discard[:11], drawPile)
	assert.NotContains(t, drawPile, top)
}
