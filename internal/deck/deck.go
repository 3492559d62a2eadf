// internal/deck/deck.go

// Package deck builds, shuffles and deals the standard 108-card catalog.
// It has no knowledge of rooms or turns; the rules engine composes it.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/uno-arena/server/internal/models"
)

// NewCatalog returns the full ordered catalog: per color one 0, two each of
// 1-9, two each of skip/reverse/draw_two, plus four wilds and four wild draw
// fours. Every card gets a fresh unique id; the image reference is shared
// between cards with the same face.
func NewCatalog() []*models.Card {
	cards := make([]*models.Card, 0, models.CatalogSize)

	for _, color := range models.CardColors {
		cards = append(cards, newNumberCard(color, 0))
		for value := 1; value <= 9; value++ {
			cards = append(cards, newNumberCard(color, value), newNumberCard(color, value))
		}
		for i := 0; i < 2; i++ {
			cards = append(cards,
				newActionCard(color, models.KindSkip, "s"),
				newActionCard(color, models.KindReverse, "r"),
				newActionCard(color, models.KindDrawTwo, "d2c"),
			)
		}
	}

	for i := 0; i < 4; i++ {
		cards = append(cards,
			&models.Card{ID: uuid.New(), Color: models.ColorWild, Kind: models.KindWild, ImageID: "card_w"},
			&models.Card{ID: uuid.New(), Color: models.ColorWild, Kind: models.KindWildDrawFour, ImageID: "card_w4"},
		)
	}

	return cards
}

func newNumberCard(color models.Color, value int) *models.Card {
	return &models.Card{
		ID:      uuid.New(),
		Color:   color,
		Kind:    models.KindNumber,
		Value:   value,
		ImageID: fmt.Sprintf("card_%c%d", color[0], value),
	}
}

func newActionCard(color models.Color, kind models.Kind, suffix string) *models.Card {
	return &models.Card{
		ID:      uuid.New(),
		Color:   color,
		Kind:    kind,
		ImageID: fmt.Sprintf("card_%c%s", color[0], suffix),
	}
}

// Shuffle returns a uniformly random permutation of cards. The input slice is
// left untouched; callers stacking a reshuffle on top of an existing pile rely
// on that.
func Shuffle(cards []*models.Card) []*models.Card {
	shuffled := make([]*models.Card, len(cards))
	copy(shuffled, cards)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Draw splits count cards off the head of the pile. When the pile is short it
// returns whatever is available and an empty remainder; callers decide whether
// a short draw warrants a refill.
func Draw(cards []*models.Card, count int) (drawn, remaining []*models.Card) {
	if count > len(cards) {
		count = len(cards)
	}
	return cards[:count], cards[count:]
}

// RefillFromDiscard shuffles all but the top discard card into a fresh draw
// pile and resets the discard pile to the top card alone. The discard pile
// must be non-empty; with a single card the new draw pile is empty.
func RefillFromDiscard(discardPile []*models.Card) (drawPile, newDiscard []*models.Card) {
	top := discardPile[len(discardPile)-1]
	drawPile = Shuffle(discardPile[:len(discardPile)-1])
	return drawPile, []*models.Card{top}
}
