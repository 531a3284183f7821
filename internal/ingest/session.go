// Package ingest replays historical play sessions through an interactive
// confirmation step and merges the accepted transitions into the network.
package ingest

import "time"

// Entry is one played track inside a session, in chronological position.
type Entry struct {
	Artist   string
	Title    string
	PlayedAt time.Time
}

// Session is one ordered play-session, already parsed from its source. ID is
// the ledger key, typically the source file name.
type Session struct {
	ID      string
	Date    time.Time
	Entries []Entry
}

// Pairs returns the consecutive (source, dest) candidate transitions of the
// session. A session with fewer than two entries yields none.
func (s Session) Pairs() [][2]Entry {
	if len(s.Entries) < 2 {
		return nil
	}
	pairs := make([][2]Entry, 0, len(s.Entries)-1)
	for i := 0; i < len(s.Entries)-1; i++ {
		pairs = append(pairs, [2]Entry{s.Entries[i], s.Entries[i+1]})
	}
	return pairs
}
