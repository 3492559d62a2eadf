// internal/models/game.go
package models

// Direction constants for the turn rotation sign.
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

// CatalogSize is the number of cards in a full deck. The sum of the draw
// pile, the discard pile and all hands equals this at every committed state.
const CatalogSize = 108

// GameState is the authoritative record for one room. It is mutated only by
// the rules engine and persisted as a whole after each committed operation.
//
// The JSON field names are the wire format broadcast to clients; drawStack is
// carried for wire compatibility but never accumulates (forced draws resolve
// immediately).
type GameState struct {
	RoomID             string    `json:"roomId"`
	Players            []*Player `json:"players"`
	Deck               []*Card   `json:"deck"`
	DiscardPile        []*Card   `json:"discardPile"`
	CurrentCard        *Card     `json:"currentCard,omitempty"`
	CurrentColor       Color     `json:"currentColor,omitempty"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	Direction          int       `json:"direction"`
	DrawStack          int       `json:"drawStack"`
	Active             bool      `json:"isActive"`
	Version            int64     `json:"version"`
}

// CurrentPlayer returns the player whose turn it is, or nil when the room is
// empty.
func (s *GameState) CurrentPlayer() *Player {
	if len(s.Players) == 0 || s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentPlayerIndex]
}

// PlayerByID returns the seated player with the given id, or nil.
func (s *GameState) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// TotalCards counts every card in the room: draw pile, discard pile and all
// hands. Card conservation requires this to equal CatalogSize.
func (s *GameState) TotalCards() int {
	total := len(s.Deck) + len(s.DiscardPile)
	for _, p := range s.Players {
		total += len(p.Hand)
	}
	return total
}

// Clone returns a deep copy of the state. Stores hand out clones so that a
// failed operation can never leak partial mutations into a committed state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.Clone()
	}
	cp.Deck = cloneCards(s.Deck)
	cp.DiscardPile = cloneCards(s.DiscardPile)
	cp.CurrentCard = s.CurrentCard.Clone()
	return &cp
}
