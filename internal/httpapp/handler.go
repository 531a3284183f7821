// Package httpapp exposes the read-only query surface over HTTP: next-track
// lookups and the d3 network snapshot consumed by the visualization page.
package httpapp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/mixmemory/internal/logger"
	"github.com/cesargomez89/mixmemory/internal/store"
)

type Handler struct {
	DB     *store.DB
	Logger *logger.Logger
}

func NewHandler(db *store.DB, log *logger.Logger) *Handler {
	return &Handler{
		DB:     db,
		Logger: log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/next-track", h.NextTrack)
	r.Get("/api/network", h.NetworkSnapshot)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
