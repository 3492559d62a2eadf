// internal/engine/engine.go

// Package engine owns every game-logic transition for a room: creation,
// joining, starting, playing, drawing, and the uno declaration mechanic.
// Each operation reads the room's state from the store, validates, mutates an
// in-memory copy, bumps the version counter and persists — or fails without
// persisting anything.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/uno-arena/server/internal/deck"
	"github.com/uno-arena/server/internal/history"
	"github.com/uno-arena/server/internal/models"
	"github.com/uno-arena/server/internal/store"
)

const (
	// openingAttempts bounds how many times room creation regenerates the
	// catalog looking for a non-wild opening discard.
	openingAttempts = 5

	initialHandSize = 7
	minPlayers      = 2

	// unoPenaltyCount cards are drawn by a player caught with one card and no
	// declaration.
	unoPenaltyCount = 2
)

// Engine is the authoritative rules engine. All mutating operations for one
// room are serialized on a per-room mutex held across the
// read-validate-mutate-persist span; different rooms proceed in parallel.
type Engine struct {
	store    store.Store
	recorder history.Recorder
	log      *logrus.Logger

	newCatalog func() []*models.Card

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder attaches an action-log recorder; every committed mutation is
// published to it.
func WithRecorder(r history.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New builds an Engine on top of the given store.
func New(st store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:      st,
		log:        logrus.StandardLogger(),
		newCatalog: deck.NewCatalog,
		locks:      make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// roomLock returns the mutex serializing operations for one room, creating it
// on first use. Locks are never removed; rooms are few and long-lived.
func (e *Engine) roomLock(roomID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[roomID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[roomID] = l
	}
	return l
}

// getState loads the room's current state, mapping a missing record to
// ErrRoomNotFound.
func (e *Engine) getState(ctx context.Context, roomID string) (*models.GameState, error) {
	state, err := e.store.Get(ctx, roomID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("engine: load room %s: %w", roomID, err)
	}
	return state, nil
}

// commit bumps the version, persists the state and publishes an action
// record. A failed persist leaves the caller's error untouched; a failed
// record publish is logged and swallowed.
func (e *Engine) commit(ctx context.Context, state *models.GameState, op, playerID string) (*models.GameState, error) {
	state.Version++
	if err := e.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("engine: persist %s for room %s: %w", op, state.RoomID, err)
	}
	e.publish(ctx, state, op, playerID)
	return state, nil
}

func (e *Engine) publish(ctx context.Context, state *models.GameState, op, playerID string) {
	if e.recorder == nil {
		return
	}
	rec := history.Record{
		RoomID:   state.RoomID,
		Op:       op,
		PlayerID: playerID,
		Version:  state.Version,
	}
	if err := e.recorder.Publish(ctx, rec); err != nil {
		e.log.WithFields(logrus.Fields{"room": state.RoomID, "op": op}).
			Warnf("action record dropped: %v", err)
	}
}

// CreateRoom builds a fresh shuffled catalog and opens the discard pile with
// a non-wild card, regenerating the whole catalog when the candidate opener
// is wild. Creating an already-existing room returns the existing state
// unmodified.
func (e *Engine) CreateRoom(ctx context.Context, roomID string) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	existing, err := e.getState(ctx, roomID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrRoomNotFound) {
		return nil, err
	}

	state, err := e.newRoomState(roomID)
	if err != nil {
		return nil, err
	}
	if err := e.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("engine: persist create_room for room %s: %w", roomID, err)
	}
	e.publish(ctx, state, "create_room", "")
	e.log.WithField("room", roomID).Info("room created")
	return state, nil
}

func (e *Engine) newRoomState(roomID string) (*models.GameState, error) {
	var opener *models.Card
	var pile []*models.Card
	for attempt := 0; attempt < openingAttempts; attempt++ {
		shuffled := deck.Shuffle(e.newCatalog())
		drawn, remaining := deck.Draw(shuffled, 1)
		if drawn[0].IsWild() {
			// A wild can never start the discard pile; throw the whole
			// catalog away and try again.
			continue
		}
		opener = drawn[0]
		pile = remaining
		break
	}
	if opener == nil {
		return nil, ErrInitializationFailed
	}

	return &models.GameState{
		RoomID:             roomID,
		Players:            []*models.Player{},
		Deck:               pile,
		DiscardPile:        []*models.Card{opener},
		CurrentCard:        opener,
		CurrentColor:       opener.Color,
		CurrentPlayerIndex: 0,
		Direction:          models.DirectionRight,
		Active:             false,
		Version:            1,
	}, nil
}

// AddPlayer seats a new player with an empty hand, preserving join order as
// turn order.
func (e *Engine) AddPlayer(ctx context.Context, roomID string, player *models.Player) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if state.Active {
		return nil, ErrGameAlreadyStarted
	}
	if state.PlayerByID(player.ID) != nil {
		return nil, ErrDuplicatePlayer
	}

	state.Players = append(state.Players, &models.Player{
		ID:        player.ID,
		Name:      player.Name,
		Hand:      []*models.Card{},
		Connected: player.Connected,
	})
	return e.commit(ctx, state, "add_player", player.ID)
}

// StartGame deals the initial hands in join order and activates the room.
func (e *Engine) StartGame(ctx context.Context, roomID string) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if state.Active {
		return nil, ErrGameAlreadyStarted
	}
	if len(state.Players) < minPlayers {
		return nil, ErrInsufficientPlayers
	}
	if len(state.Deck) < initialHandSize*len(state.Players) {
		return nil, ErrDeckExhausted
	}

	for _, p := range state.Players {
		drawn, remaining := deck.Draw(state.Deck, initialHandSize)
		p.Hand = append(p.Hand, drawn...)
		state.Deck = remaining
	}
	state.Active = true

	e.log.WithFields(logrus.Fields{"room": roomID, "players": len(state.Players)}).Info("game started")
	return e.commit(ctx, state, "start_game", "")
}

// PlayCard validates and applies one play by the current player. The card is
// referenced by id and must be in the acting player's hand. chosenColor is
// honored only when the played card is wild.
func (e *Engine) PlayCard(ctx context.Context, roomID, playerID, cardID string, chosenColor models.Color) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, ErrGameNotActive
	}
	player := state.CurrentPlayer()
	if player == nil || player.ID != playerID {
		return nil, ErrNotYourTurn
	}

	idx := player.HoldsCard(cardID)
	if idx < 0 {
		return nil, ErrIllegalCard
	}
	card := player.Hand[idx]
	if !validatePlay(card, state.CurrentCard, state.CurrentColor) {
		return nil, ErrIllegalCard
	}

	player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	player.DeclaredUno = false

	applyCardEffect(state, card)

	state.DiscardPile = append(state.DiscardPile, card)
	state.CurrentCard = card
	if card.IsWild() && chosenColor != "" {
		state.CurrentColor = chosenColor
	} else {
		state.CurrentColor = card.Color
	}

	if player.HandSize() == 0 {
		state.Active = false
		e.log.WithFields(logrus.Fields{"room": roomID, "player": playerID}).Info("player won, game over")
	}

	return e.commit(ctx, state, "play_card", playerID)
}

// DrawCard makes the current player draw one card, refilling the draw pile
// from the discard pile when it is empty, and advances the turn.
func (e *Engine) DrawCard(ctx context.Context, roomID, playerID string) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, ErrGameNotActive
	}
	player := state.PlayerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if current := state.CurrentPlayer(); current == nil || current.ID != playerID {
		return nil, ErrNotYourTurn
	}

	card, err := e.drawOne(state)
	if err != nil {
		return nil, err
	}
	player.Hand = append(player.Hand, card)
	player.DeclaredUno = false

	nextTurn(state)
	return e.commit(ctx, state, "draw_card", playerID)
}

// drawOne pops the top card of the draw pile, reshuffling all but the top
// discard into a fresh pile first when the draw pile is empty. With the draw
// pile empty and fewer than two discards there is nothing left to deal.
func (e *Engine) drawOne(state *models.GameState) (*models.Card, error) {
	if len(state.Deck) == 0 {
		if len(state.DiscardPile) < 2 {
			return nil, ErrDeckExhausted
		}
		state.Deck, state.DiscardPile = deck.RefillFromDiscard(state.DiscardPile)
		e.log.WithFields(logrus.Fields{"room": state.RoomID, "cards": len(state.Deck)}).
			Debug("draw pile refilled from discard")
	}
	drawn, remaining := deck.Draw(state.Deck, 1)
	state.Deck = remaining
	return drawn[0], nil
}

// DeclareUno records that a player down to exactly one card has declared it.
// Declaring twice is a no-op; declaring with any other hand size fails.
func (e *Engine) DeclareUno(ctx context.Context, roomID, playerID string) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, ErrGameNotActive
	}
	player := state.PlayerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if player.HandSize() != 1 {
		return nil, ErrUnoNotApplicable
	}
	if player.DeclaredUno {
		return state, nil
	}

	player.DeclaredUno = true
	return e.commit(ctx, state, "declare_uno", playerID)
}

// CatchUno resolves an accusation that target sits at one card without having
// declared. A valid catch makes the target draw the penalty; an invalid one
// fails with ErrUnoNotApplicable and changes nothing. The penalty draw
// reshuffles from the discard pile when needed and tolerates running short.
func (e *Engine) CatchUno(ctx context.Context, roomID, accuserID, targetID string) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, ErrGameNotActive
	}
	if state.PlayerByID(accuserID) == nil {
		return nil, ErrPlayerNotFound
	}
	target := state.PlayerByID(targetID)
	if target == nil {
		return nil, ErrPlayerNotFound
	}
	if accuserID == targetID {
		return nil, ErrUnoNotApplicable
	}
	if target.HandSize() != 1 || target.DeclaredUno {
		return nil, ErrUnoNotApplicable
	}

	for i := 0; i < unoPenaltyCount; i++ {
		card, err := e.drawOne(state)
		if err != nil {
			break
		}
		target.Hand = append(target.Hand, card)
	}
	target.DeclaredUno = false

	e.log.WithFields(logrus.Fields{"room": roomID, "target": targetID, "accuser": accuserID}).
		Info("undeclared low hand caught, penalty drawn")
	return e.commit(ctx, state, "catch_uno", targetID)
}

// SetConnected updates a player's connection-liveness flag on behalf of the
// transport layer. It is a committed mutation like any other so room members
// observe it through the broadcast state.
func (e *Engine) SetConnected(ctx context.Context, roomID, playerID string, connected bool) (*models.GameState, error) {
	l := e.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	state, err := e.getState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	player := state.PlayerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if player.Connected == connected {
		return state, nil
	}

	player.Connected = connected
	return e.commit(ctx, state, "set_connected", playerID)
}
