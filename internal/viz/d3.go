// Package viz exports the track network in the nodes/links shape consumed by
// the d3 force-directed front end.
package viz

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cesargomez89/mixmemory/internal/library"
	"github.com/cesargomez89/mixmemory/internal/network"
)

type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Snapshot is the d3-friendly rendering of the graph. The renderer draws
// links undirected; that loss of direction is an accepted front-end
// limitation.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// FromGraph builds a snapshot from the full library and the edge set. Every
// library track becomes a node, so tracks without transitions render as lone
// dots.
func FromGraph(lib *library.Library, net *network.Network) Snapshot {
	snapshot := Snapshot{
		Nodes: make([]Node, 0, lib.Len()),
		Links: make([]Link, 0, net.EdgeCount()),
	}
	for _, track := range lib.All() {
		snapshot.Nodes = append(snapshot.Nodes, Node{
			ID:   string(track.ID),
			Name: track.String(),
		})
	}
	for _, edge := range net.Edges() {
		snapshot.Links = append(snapshot.Links, Link{
			Source: string(edge.SourceID),
			Target: string(edge.DestID),
		})
	}
	return snapshot
}

// WriteJSON writes the snapshot as indented JSON.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode network snapshot: %w", err)
	}
	return nil
}

// WriteFile writes the snapshot JSON to the given path.
func (s Snapshot) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := s.WriteJSON(f); err != nil {
		return err
	}
	return f.Close()
}
