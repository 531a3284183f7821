package domain

import "errors"

// ErrTrackNotFound is returned when an artist/title pair or track ID is not
// known to the library.
var ErrTrackNotFound = errors.New("track not found")

// ErrNodeNotFound is returned when a network operation references a track ID
// that is not a node in the graph.
var ErrNodeNotFound = errors.New("node not found")
