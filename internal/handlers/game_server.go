// internal/handlers/game_server.go

// Package handlers is the gateway between websocket clients and the rules
// engine: it validates inbound events, invokes engine operations, and fans
// the resulting state out to every connection in the room.
package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/uno-arena/server/internal/engine"
	"github.com/uno-arena/server/internal/store"
)

// writeTimeout bounds a single websocket write so one stuck client cannot
// stall a broadcast.
const writeTimeout = 3 * time.Second

// roomClient is one websocket connection bound to a room. playerID is set
// after a successful join on this connection.
type roomClient struct {
	conn     *websocket.Conn
	playerID string
}

// Server bundles the rules engine, the room state store and the per-room
// connection sets used for broadcast fan-out.
type Server struct {
	Engine *engine.Engine
	Store  store.Store
	Logger *logrus.Logger

	mu    sync.Mutex
	rooms map[string]map[*roomClient]struct{}
}

// NewServer builds a gateway server.
func NewServer(eng *engine.Engine, st store.Store, logger *logrus.Logger) *Server {
	return &Server{
		Engine: eng,
		Store:  st,
		Logger: logger,
		rooms:  make(map[string]map[*roomClient]struct{}),
	}
}

func (s *Server) register(roomID string, c *roomClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clients, ok := s.rooms[roomID]
	if !ok {
		clients = make(map[*roomClient]struct{})
		s.rooms[roomID] = clients
	}
	clients[c] = struct{}{}
}

func (s *Server) unregister(roomID string, c *roomClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clients, ok := s.rooms[roomID]
	if !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(s.rooms, roomID)
	}
}

// broadcast sends a message to every connection in the room. The payload is
// marshaled once and written asynchronously so the read loop that triggered
// the broadcast is never blocked on slow peers.
func (s *Server) broadcast(roomID string, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.Logger.Errorf("marshal broadcast for room %s: %v", roomID, err)
		return
	}

	s.mu.Lock()
	targets := make([]*roomClient, 0, len(s.rooms[roomID]))
	for c := range s.rooms[roomID] {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	go func() {
		for _, c := range targets {
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := c.conn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				s.Logger.Warnf("broadcast write to player %q in room %s: %v", c.playerID, roomID, err)
			}
		}
	}()
}

// send writes a message to a single connection, used for errors and pongs
// addressed to the originating client only.
func (s *Server) send(c *roomClient, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.Logger.Errorf("marshal message: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		s.Logger.Warnf("write to player %q: %v", c.playerID, err)
	}
}

func (s *Server) sendError(c *roomClient, err error) {
	s.send(c, ServerMessage{Type: "error", Message: err.Error()})
}
