// internal/handlers/http.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/uno-arena/server/internal/deck"
)

// RoomSummary is the read-only listing entry for one room. It may be a
// slightly stale snapshot; the version lets clients detect that.
type RoomSummary struct {
	RoomID  string `json:"roomId"`
	Players int    `json:"players"`
	Active  bool   `json:"isActive"`
	Version int64  `json:"version"`
}

// CatalogHandler returns the full 108-card catalog in shuffled order. It is
// unauthenticated and meant for client asset preloading, not gameplay: the
// ids it returns belong to a throwaway catalog, only the image references
// matter to the caller.
func CatalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deck.Shuffle(deck.NewCatalog()))
	}
}

// ListRoomsHandler returns summaries for every room currently in the store.
func ListRoomsHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := srv.Store.List(r.Context())
		if err != nil {
			srv.Logger.Errorf("list rooms: %v", err)
			http.Error(w, "failed to list rooms", http.StatusInternalServerError)
			return
		}
		summaries := make([]RoomSummary, 0, len(states))
		for _, state := range states {
			summaries = append(summaries, RoomSummary{
				RoomID:  state.RoomID,
				Players: len(state.Players),
				Active:  state.Active,
				Version: state.Version,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	}
}

// HealthHandler is a liveness probe.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}
}
