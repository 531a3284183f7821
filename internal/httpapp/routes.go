package httpapp

import (
	"errors"
	"net/http"

	"github.com/cesargomez89/mixmemory/internal/domain"
	"github.com/cesargomez89/mixmemory/internal/recommend"
	"github.com/cesargomez89/mixmemory/internal/viz"
)

// NextTrack answers GET /api/next-track?artist=X&title=Y with the confirmed
// follow-up tracks in recommendation order.
func (h *Handler) NextTrack(w http.ResponseWriter, r *http.Request) {
	artist := r.URL.Query().Get("artist")
	title := r.URL.Query().Get("title")
	if artist == "" || title == "" {
		h.writeError(w, http.StatusBadRequest, "artist and title query parameters are required")
		return
	}

	lib, net, err := h.DB.LoadSnapshot()
	if err != nil {
		h.Logger.Error("failed to load snapshot", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to load track network")
		return
	}

	options, err := recommend.New(lib, net).NextTrackOptions(artist, title)
	if errors.Is(err, domain.ErrTrackNotFound) {
		h.writeError(w, http.StatusNotFound, "track not found")
		return
	}
	if err != nil {
		h.Logger.Error("next-track query failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	h.writeJSON(w, http.StatusOK, options)
}

// NetworkSnapshot answers GET /api/network with the d3 nodes/links snapshot.
func (h *Handler) NetworkSnapshot(w http.ResponseWriter, r *http.Request) {
	lib, net, err := h.DB.LoadSnapshot()
	if err != nil {
		h.Logger.Error("failed to load snapshot", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to load track network")
		return
	}
	h.writeJSON(w, http.StatusOK, viz.FromGraph(lib, net))
}
