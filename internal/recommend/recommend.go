// Package recommend answers next-track queries against the transition
// network. The current query is pure graph adjacency: no weighting, no path
// search.
package recommend

import (
	"fmt"

	"github.com/cesargomez89/mixmemory/internal/domain"
	"github.com/cesargomez89/mixmemory/internal/library"
	"github.com/cesargomez89/mixmemory/internal/network"
)

// Recommender is the sole read surface exposed to front ends.
type Recommender struct {
	lib *library.Library
	net *network.Network
}

func New(lib *library.Library, net *network.Network) *Recommender {
	return &Recommender{lib: lib, net: net}
}

// NextTrackOptions returns the confirmed follow-ups for the given track, in
// the network's successor order. An unknown artist/title fails with
// domain.ErrTrackNotFound; a known track with no recorded transitions
// returns an empty list, which is an answer, not an error.
func (r *Recommender) NextTrackOptions(artist, title string) ([]domain.Track, error) {
	id := domain.IdentityFor(artist, title)
	if !r.lib.Has(id) {
		return nil, fmt.Errorf("recommend: %w: %s - %s", domain.ErrTrackNotFound, artist, title)
	}
	if !r.net.HasNode(id) {
		return []domain.Track{}, nil
	}

	successors, err := r.net.Successors(id)
	if err != nil {
		return nil, err
	}

	options := make([]domain.Track, 0, len(successors))
	for _, succID := range successors {
		track, err := r.lib.Get(succID)
		if err != nil {
			// A network edge pointing outside the library breaks
			// referential integrity between the two snapshots.
			return nil, fmt.Errorf("recommend: network references unknown track %s: %w", succID, err)
		}
		options = append(options, track)
	}
	return options, nil
}
