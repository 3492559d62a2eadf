// internal/models/player.go
package models

// Player is one seat in a room. The ID is supplied by the client at join time
// and is stable for the life of the room; seat order is join order.
type Player struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Hand []*Card `json:"hand"`

	// DeclaredUno is true once the player has declared "uno" while holding
	// exactly one card. Any hand-size change clears it.
	DeclaredUno bool `json:"declaredUno"`

	// Connected is owned by the transport layer, not the rules engine.
	Connected bool `json:"connected"`
}

// HandSize returns the number of cards the player holds.
func (p *Player) HandSize() int {
	return len(p.Hand)
}

// HoldsCard returns the index of the card with the given id in the player's
// hand, or -1 when absent.
func (p *Player) HoldsCard(cardID string) int {
	for i, c := range p.Hand {
		if c.ID.String() == cardID {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the player, hand included.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Hand = cloneCards(p.Hand)
	return &cp
}
