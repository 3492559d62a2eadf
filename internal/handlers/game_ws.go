// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/uno-arena/server/internal/engine"
	"github.com/uno-arena/server/internal/middleware"
	"github.com/uno-arena/server/internal/models"
	"github.com/uno-arena/server/internal/store"
)

// GameWSHandler upgrades the HTTP connection to a websocket scoped to one
// room, registers it for broadcasts, and runs the read loop until the client
// goes away.
func GameWSHandler(logger *logrus.Logger, srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := chi.URLParam(r, "roomID")
		if roomID == "" {
			http.Error(w, "missing room id in path (/game/ws/{roomID})", http.StatusBadRequest)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // tighten for production deployments
		})
		if err != nil {
			logger.Warnf("websocket accept for room %s: %v", roomID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exit")

		if c.Subprotocol() != "game" {
			c.Close(websocket.StatusCode(BadSubprotocolError), "client must use the 'game' subprotocol")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		client := &roomClient{conn: c}
		srv.register(roomID, client)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readErr := readEvents(ctx, client, roomID, srv, logger)
		srv.unregister(roomID, client)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, readErr)

		// Mark the seat disconnected so remaining members see it. The room
		// may be gone already (external cleanup), which is fine.
		if client.playerID != "" {
			state, err := srv.Engine.SetConnected(context.Background(), roomID, client.playerID, false)
			if err == nil {
				srv.broadcast(roomID, ServerMessage{Type: "state", State: state})
			} else if !errors.Is(err, engine.ErrRoomNotFound) && !errors.Is(err, engine.ErrPlayerNotFound) {
				logger.Warnf("mark player %q disconnected in room %s: %v", client.playerID, roomID, err)
			}
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// readEvents consumes inbound messages until the connection drops or the
// context is canceled. Malformed payloads produce an error message to the
// sender; they never reach the engine.
func readEvents(ctx context.Context, client *roomClient, roomID string, srv *Server, logger *logrus.Logger) error {
	for {
		msgType, data, err := client.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway ||
				strings.Contains(err.Error(), "context canceled") {
				return nil
			}
			return err
		}
		if msgType != websocket.MessageText {
			continue
		}

		var ev ClientEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			srv.sendError(client, errors.New("invalid JSON payload"))
			continue
		}
		if err := ev.Validate(); err != nil {
			srv.sendError(client, err)
			continue
		}

		logger.WithFields(logrus.Fields{"room": roomID, "event": ev.Type}).Debug("event received")
		srv.dispatch(ctx, client, roomID, &ev)
	}
}

// dispatch routes one validated event to the matching engine operation and
// broadcasts the committed state, or reports the failure to the sender only.
func (s *Server) dispatch(ctx context.Context, client *roomClient, roomID string, ev *ClientEvent) {
	switch ev.Type {
	case EventJoin:
		s.handleJoin(ctx, client, roomID, ev)
		return
	case EventPing:
		s.send(client, ServerMessage{Type: "pong"})
		return
	}

	result, err := s.invoke(ctx, roomID, ev)
	if err != nil {
		s.sendError(client, err)
		return
	}
	s.broadcast(roomID, ServerMessage{Type: "state", State: result})
}

func (s *Server) invoke(ctx context.Context, roomID string, ev *ClientEvent) (*models.GameState, error) {
	switch ev.Type {
	case EventStart:
		return s.Engine.StartGame(ctx, roomID)
	case EventPlay:
		return s.Engine.PlayCard(ctx, roomID, ev.PlayerID, ev.CardID, ev.Color)
	case EventDraw:
		return s.Engine.DrawCard(ctx, roomID, ev.PlayerID)
	case EventDeclareUno:
		return s.Engine.DeclareUno(ctx, roomID, ev.PlayerID)
	case EventCatchUno:
		return s.Engine.CatchUno(ctx, roomID, ev.PlayerID, ev.TargetID)
	}
	return nil, errors.New("unhandled event type")
}

// handleJoin implicitly creates the room on first join, then seats the
// player. The seat is marked connected because it joined over this socket.
func (s *Server) handleJoin(ctx context.Context, client *roomClient, roomID string, ev *ClientEvent) {
	if _, err := s.Store.Get(ctx, roomID); errors.Is(err, store.ErrNotFound) {
		if _, err := s.Engine.CreateRoom(ctx, roomID); err != nil {
			s.sendError(client, err)
			return
		}
	} else if err != nil {
		s.sendError(client, err)
		return
	}

	state, err := s.Engine.AddPlayer(ctx, roomID, &models.Player{
		ID:        ev.Player.ID,
		Name:      ev.Player.Name,
		Connected: true,
	})
	if err != nil {
		s.sendError(client, err)
		return
	}
	client.playerID = ev.Player.ID
	s.broadcast(roomID, ServerMessage{Type: "state", State: state})
}
