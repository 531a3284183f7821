package domain

import "fmt"

// TrackID is the opaque stable identity of a track, derived from the
// normalized artist and title via IdentityFor.
type TrackID string

// Track represents one musical recording. Artist and Title keep the casing
// of the first sighting; identity is carried by ID alone.
type Track struct {
	ID     TrackID `json:"id" db:"id"`
	Artist string  `json:"artist" db:"artist"`
	Title  string  `json:"title" db:"title"`
}

// NewTrack builds a Track with its derived identity.
func NewTrack(artist, title string) Track {
	return Track{
		ID:     IdentityFor(artist, title),
		Artist: artist,
		Title:  title,
	}
}

func (t Track) String() string {
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}

// Transition is one confirmed good mix from a source track to a destination
// track. Directed: A -> B does not imply B -> A.
type Transition struct {
	SourceID TrackID `json:"source_id" db:"source_id"`
	DestID   TrackID `json:"dest_id" db:"dest_id"`
}
