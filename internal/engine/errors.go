// internal/engine/errors.go
package engine

import "errors"

// Validation and precondition failures raised by engine operations. None of
// them is transient: an operation that returns one of these has not touched
// the stored state. The gateway relays the message to the originating client
// only.
var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrGameAlreadyStarted   = errors.New("game already started")
	ErrGameNotActive        = errors.New("game not active")
	ErrDuplicatePlayer      = errors.New("player already joined")
	ErrInsufficientPlayers  = errors.New("at least 2 players required")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrIllegalCard          = errors.New("illegal card")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrInitializationFailed = errors.New("failed to initialize a valid starting card")
	ErrDeckExhausted        = errors.New("draw and discard piles exhausted")
	ErrUnoNotApplicable     = errors.New("uno declaration not applicable")
)
