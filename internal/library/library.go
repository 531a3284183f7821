// Package library owns the collection of known tracks, keyed by their
// derived identity.
package library

import (
	"fmt"
	"sort"

	"github.com/cesargomez89/mixmemory/internal/domain"
)

// Library maps track IDs to track metadata. Every ID referenced by the
// network must resolve here.
type Library struct {
	tracks map[domain.TrackID]domain.Track
}

// New creates an empty library.
func New() *Library {
	return &Library{tracks: make(map[domain.TrackID]domain.Track)}
}

// FromTracks builds a library from existing track records, e.g. when loading
// a snapshot.
func FromTracks(tracks []domain.Track) *Library {
	lib := New()
	for _, t := range tracks {
		lib.tracks[t.ID] = t
	}
	return lib
}

// GetOrCreate looks up the track for the given artist/title, inserting a new
// record if none exists. On a hit the stored track is returned unchanged:
// first-seen casing wins, re-ingestion never rewrites metadata.
func (l *Library) GetOrCreate(artist, title string) domain.Track {
	id := domain.IdentityFor(artist, title)
	if existing, ok := l.tracks[id]; ok {
		return existing
	}
	track := domain.Track{ID: id, Artist: artist, Title: title}
	l.tracks[id] = track
	return track
}

// Get returns the track for the given ID, or domain.ErrTrackNotFound.
func (l *Library) Get(id domain.TrackID) (domain.Track, error) {
	track, ok := l.tracks[id]
	if !ok {
		return domain.Track{}, fmt.Errorf("library: %w: %s", domain.ErrTrackNotFound, id)
	}
	return track, nil
}

// Has reports whether the library knows the given ID.
func (l *Library) Has(id domain.TrackID) bool {
	_, ok := l.tracks[id]
	return ok
}

// All returns every track, sorted by display string so exports are
// deterministic.
func (l *Library) All() []domain.Track {
	out := make([]domain.Track, 0, len(l.tracks))
	for _, t := range l.tracks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Len returns the number of tracks in the library.
func (l *Library) Len() int {
	return len(l.tracks)
}
