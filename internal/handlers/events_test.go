// internal/handlers/events_test.go
package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-arena/server/internal/models"
)

func TestClientEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		event   ClientEvent
		wantErr bool
	}{
		{
			name:  "join with identity",
			event: ClientEvent{Type: EventJoin, Player: &JoinPlayer{ID: "p1", Name: "Alice"}},
		},
		{
			name:    "join without player",
			event:   ClientEvent{Type: EventJoin},
			wantErr: true,
		},
		{
			name:    "join with empty id",
			event:   ClientEvent{Type: EventJoin, Player: &JoinPlayer{Name: "Alice"}},
			wantErr: true,
		},
		{
			name:  "start needs nothing beyond the room",
			event: ClientEvent{Type: EventStart},
		},
		{
			name:  "play with card",
			event: ClientEvent{Type: EventPlay, PlayerID: "p1", CardID: "c1"},
		},
		{
			name:  "play with chosen color",
			event: ClientEvent{Type: EventPlay, PlayerID: "p1", CardID: "c1", Color: models.ColorGreen},
		},
		{
			name:    "play with wild as chosen color",
			event:   ClientEvent{Type: EventPlay, PlayerID: "p1", CardID: "c1", Color: models.ColorWild},
			wantErr: true,
		},
		{
			name:    "play with unknown color",
			event:   ClientEvent{Type: EventPlay, PlayerID: "p1", CardID: "c1", Color: "purple"},
			wantErr: true,
		},
		{
			name:    "play without card",
			event:   ClientEvent{Type: EventPlay, PlayerID: "p1"},
			wantErr: true,
		},
		{
			name:    "play without player",
			event:   ClientEvent{Type: EventPlay, CardID: "c1"},
			wantErr: true,
		},
		{
			name:  "draw",
			event: ClientEvent{Type: EventDraw, PlayerID: "p1"},
		},
		{
			name:    "draw without player",
			event:   ClientEvent{Type: EventDraw},
			wantErr: true,
		},
		{
			name:  "declare uno",
			event: ClientEvent{Type: EventDeclareUno, PlayerID: "p1"},
		},
		{
			name:  "catch uno",
			event: ClientEvent{Type: EventCatchUno, PlayerID: "p1", TargetID: "p2"},
		},
		{
			name:    "catch uno without target",
			event:   ClientEvent{Type: EventCatchUno, PlayerID: "p1"},
			wantErr: true,
		},
		{
			name:  "ping",
			event: ClientEvent{Type: EventPing},
		},
		{
			name:    "unknown type",
			event:   ClientEvent{Type: "dance"},
			wantErr: true,
		},
		{
			name:    "missing type",
			event:   ClientEvent{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientEventDecode(t *testing.T) {
	raw := `{"type":"play","playerId":"p1","cardId":"c1","color":"red"}`
	var ev ClientEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))

	assert.Equal(t, EventPlay, ev.Type)
	assert.Equal(t, "p1", ev.PlayerID)
	assert.Equal(t, "c1", ev.CardID)
	assert.Equal(t, models.ColorRed, ev.Color)
	require.NoError(t, ev.Validate())
}
