// internal/engine/rules.go
package engine

import (
	"github.com/uno-arena/server/internal/deck"
	"github.com/uno-arena/server/internal/models"
)

// validatePlay decides whether a card may be played on top of the current
// discard given the legal color. A card is playable iff any of:
//   - its color equals the current legal color (which tracks wild choices);
//   - both it and the top card are number cards of equal value;
//   - both are the same non-number kind, regardless of color;
//   - the card itself is wild (wild and wild draw four are always declarable).
func validatePlay(card, topCard *models.Card, currentColor models.Color) bool {
	if card.Color == currentColor {
		return true
	}
	if card.Kind == models.KindNumber && topCard.Kind == models.KindNumber && card.Value == topCard.Value {
		return true
	}
	if card.Kind != models.KindNumber && topCard.Kind != models.KindNumber && card.Kind == topCard.Kind {
		return true
	}
	return card.IsWild()
}

// nextTurn advances the current player index one step in the rotation
// direction, wrapping in both directions.
func nextTurn(state *models.GameState) {
	n := len(state.Players)
	state.CurrentPlayerIndex = (state.CurrentPlayerIndex + state.Direction + n) % n
}

// forcedDraw makes the player immediately following in turn order draw count
// cards, then advances the turn past that player. The draw comes straight off
// the draw pile; a short pile yields a short draw rather than a reshuffle.
func forcedDraw(state *models.GameState, count int) {
	n := len(state.Players)
	nextIdx := (state.CurrentPlayerIndex + state.Direction + n) % n
	target := state.Players[nextIdx]

	drawn, remaining := deck.Draw(state.Deck, count)
	target.Hand = append(target.Hand, drawn...)
	state.Deck = remaining
	target.DeclaredUno = false

	nextTurn(state)
	nextTurn(state)
}

// applyCardEffect mutates turn order and hands according to the played card.
// In a two-player game a reverse doubles as a skip, so the player who played
// it acts again.
func applyCardEffect(state *models.GameState, card *models.Card) {
	switch card.Kind {
	case models.KindReverse:
		state.Direction *= -1
		nextTurn(state)
		if len(state.Players) == 2 {
			nextTurn(state)
		}
	case models.KindSkip:
		nextTurn(state)
		nextTurn(state)
	case models.KindDrawTwo:
		forcedDraw(state, 2)
	case models.KindWildDrawFour:
		forcedDraw(state, 4)
	default:
		nextTurn(state)
	}
}
