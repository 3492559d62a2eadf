// internal/models/card.go
package models

import "github.com/google/uuid"

// Color is a card face color. Wild cards carry ColorWild until a replacement
// color is chosen by the player who plays them.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorWild   Color = "wild"
)

// CardColors lists the four dealable colors, excluding wild.
var CardColors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// Kind identifies a card's behavior when played.
type Kind string

const (
	KindNumber       Kind = "number"
	KindSkip         Kind = "skip"
	KindReverse      Kind = "reverse"
	KindDrawTwo      Kind = "draw_two"
	KindWild         Kind = "wild"
	KindWildDrawFour Kind = "wild_draw_four"
)

// Card is a single physical card. ID is unique across the whole 108-card
// catalog for the lifetime of a game; ImageID is the client asset reference
// and is shared between cards that look alike (e.g. both green 7s).
type Card struct {
	ID      uuid.UUID `json:"id"`
	Color   Color     `json:"color"`
	Kind    Kind      `json:"kind"`
	Value   int       `json:"value"` // meaningful only for KindNumber, 0-9
	ImageID string    `json:"imageId"`
}

// IsWild reports whether the card's color must be replaced when played.
func (c *Card) IsWild() bool {
	return c.Color == ColorWild
}

// Clone returns an independent copy of the card.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func cloneCards(cards []*Card) []*Card {
	if cards == nil {
		return nil
	}
	out := make([]*Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
