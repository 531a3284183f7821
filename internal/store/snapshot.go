package store

import (
	"fmt"

	"github.com/cesargomez89/mixmemory/internal/domain"
	"github.com/cesargomez89/mixmemory/internal/library"
	"github.com/cesargomez89/mixmemory/internal/network"
)

type trackRow struct {
	ID     string `db:"id"`
	Artist string `db:"artist"`
	Title  string `db:"title"`
}

type transitionRow struct {
	SourceID string `db:"source_id"`
	DestID   string `db:"dest_id"`
	Position int    `db:"position"`
}

// SaveSnapshot replaces the persisted library and network with the given
// pair. The whole replace runs in one transaction: either the new snapshot
// commits or the previous one survives untouched.
func (db *DB) SaveSnapshot(lib *library.Library, net *network.Network) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot tx: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.Exec("DELETE FROM transitions"); err != nil {
		return fmt.Errorf("failed to clear transitions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tracks"); err != nil {
		return fmt.Errorf("failed to clear tracks: %w", err)
	}

	for _, track := range lib.All() {
		_, err := tx.NamedExec(
			"INSERT INTO tracks (id, artist, title) VALUES (:id, :artist, :title)",
			trackRow{ID: string(track.ID), Artist: track.Artist, Title: track.Title},
		)
		if err != nil {
			return fmt.Errorf("failed to insert track %s: %w", track.ID, err)
		}
	}

	for i, edge := range net.Edges() {
		_, err := tx.NamedExec(
			"INSERT INTO transitions (source_id, dest_id, position) VALUES (:source_id, :dest_id, :position)",
			transitionRow{SourceID: string(edge.SourceID), DestID: string(edge.DestID), Position: i},
		)
		if err != nil {
			return fmt.Errorf("failed to insert transition %s -> %s: %w", edge.SourceID, edge.DestID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reconstructs the persisted library and network. A store with
// no prior snapshot yields an empty pair, not an error.
func (db *DB) LoadSnapshot() (*library.Library, *network.Network, error) {
	var tracks []trackRow
	if err := db.Select(&tracks, "SELECT id, artist, title FROM tracks"); err != nil {
		return nil, nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	records := make([]domain.Track, 0, len(tracks))
	for _, row := range tracks {
		records = append(records, domain.Track{
			ID:     domain.TrackID(row.ID),
			Artist: row.Artist,
			Title:  row.Title,
		})
	}
	lib := library.FromTracks(records)

	var transitions []transitionRow
	err := db.Select(&transitions,
		"SELECT source_id, dest_id, position FROM transitions ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transitions: %w", err)
	}

	net := network.New()
	for _, row := range transitions {
		net.AddEdge(domain.TrackID(row.SourceID), domain.TrackID(row.DestID))
	}
	return lib, net, nil
}
