// internal/handlers/events.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/uno-arena/server/internal/models"
)

// EventType tags an inbound client event.
type EventType string

const (
	EventJoin       EventType = "join"
	EventStart      EventType = "start"
	EventPlay       EventType = "play"
	EventDraw       EventType = "draw"
	EventDeclareUno EventType = "declare_uno"
	EventCatchUno   EventType = "catch_uno"
	EventPing       EventType = "ping"
)

// JoinPlayer is the client-supplied identity for a join event.
type JoinPlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ClientEvent is the tagged union of inbound websocket messages. Each event
// is room-scoped; the room comes from the connection URL, never the payload.
// Validate rejects malformed payloads before they reach the rules engine.
type ClientEvent struct {
	Type     EventType    `json:"type"`
	Player   *JoinPlayer  `json:"player,omitempty"`   // join
	PlayerID string       `json:"playerId,omitempty"` // play, draw, declare_uno, catch_uno
	CardID   string       `json:"cardId,omitempty"`   // play
	Color    models.Color `json:"color,omitempty"`    // play (wild cards only)
	TargetID string       `json:"targetId,omitempty"` // catch_uno
}

var chosenColors = map[models.Color]bool{
	models.ColorRed:    true,
	models.ColorBlue:   true,
	models.ColorGreen:  true,
	models.ColorYellow: true,
}

// Validate checks that the fields required by the event type are present and
// well-formed.
func (ev *ClientEvent) Validate() error {
	switch ev.Type {
	case EventJoin:
		if ev.Player == nil || ev.Player.ID == "" {
			return errors.New("join requires a player with an id")
		}
	case EventStart, EventPing:
		// room-scoped only
	case EventPlay:
		if ev.PlayerID == "" {
			return errors.New("play requires playerId")
		}
		if ev.CardID == "" {
			return errors.New("play requires cardId")
		}
		if ev.Color != "" && !chosenColors[ev.Color] {
			return fmt.Errorf("invalid chosen color %q", ev.Color)
		}
	case EventDraw, EventDeclareUno:
		if ev.PlayerID == "" {
			return fmt.Errorf("%s requires playerId", ev.Type)
		}
	case EventCatchUno:
		if ev.PlayerID == "" || ev.TargetID == "" {
			return errors.New("catch_uno requires playerId and targetId")
		}
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// ServerMessage is the outbound envelope. A successful mutation broadcasts
// the full state to every room member; a failure sends an error to the
// originating connection only.
type ServerMessage struct {
	Type    string            `json:"type"` // "state", "error" or "pong"
	State   *models.GameState `json:"state,omitempty"`
	Message string            `json:"message,omitempty"`
}
