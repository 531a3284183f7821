// Package network models the directed graph of confirmed track transitions.
// Nodes are track IDs, edges are confirmed good mixes. The required
// operations are narrow (idempotent node/edge insertion, successor listing),
// so the graph is an explicit adjacency map owned here rather than a
// general-purpose graph dependency.
package network

import (
	"fmt"

	"github.com/cesargomez89/mixmemory/internal/domain"
)

// Network is a directed graph over track identities.
//
// Successor lists preserve edge-insertion order; that order is the
// user-visible recommendation order and is persisted across snapshots.
type Network struct {
	// successors maps a node to its destinations in insertion order.
	successors map[domain.TrackID][]domain.TrackID
	// edges is the O(1) membership index over the same edge set.
	edges map[domain.TrackID]map[domain.TrackID]bool
	// order records every edge in global insertion order, for
	// deterministic enumeration and order-stable persistence.
	order []domain.Transition
}

// New creates an empty network.
func New() *Network {
	return &Network{
		successors: make(map[domain.TrackID][]domain.TrackID),
		edges:      make(map[domain.TrackID]map[domain.TrackID]bool),
	}
}

// AddNode ensures the node exists. Idempotent; an existing node and its
// edges are left untouched.
func (n *Network) AddNode(id domain.TrackID) {
	if _, ok := n.successors[id]; !ok {
		n.successors[id] = nil
		n.edges[id] = make(map[domain.TrackID]bool)
	}
}

// AddEdge inserts a directed edge and reports whether it was actually new.
// Self-loops and duplicates are expected input and absorbed silently: the
// return value is false and the edge set is unchanged. Both endpoints are
// created as nodes if missing.
func (n *Network) AddEdge(source, dest domain.TrackID) bool {
	if source == dest {
		return false
	}
	n.AddNode(source)
	n.AddNode(dest)
	if n.edges[source][dest] {
		return false
	}
	n.edges[source][dest] = true
	n.successors[source] = append(n.successors[source], dest)
	n.order = append(n.order, domain.Transition{SourceID: source, DestID: dest})
	return true
}

// HasEdge reports whether the directed edge source -> dest exists.
func (n *Network) HasEdge(source, dest domain.TrackID) bool {
	return n.edges[source][dest]
}

// HasNode reports whether the ID is a node in the graph.
func (n *Network) HasNode(id domain.TrackID) bool {
	_, ok := n.successors[id]
	return ok
}

// Successors returns the destinations reachable from id by exactly one edge,
// in edge-insertion order. Returns domain.ErrNodeNotFound for an unknown
// node; a known node with no outgoing edges yields an empty slice.
func (n *Network) Successors(id domain.TrackID) ([]domain.TrackID, error) {
	succ, ok := n.successors[id]
	if !ok {
		return nil, fmt.Errorf("network: %w: %s", domain.ErrNodeNotFound, id)
	}
	out := make([]domain.TrackID, len(succ))
	copy(out, succ)
	return out, nil
}

// Edges returns every transition in insertion order.
func (n *Network) Edges() []domain.Transition {
	out := make([]domain.Transition, len(n.order))
	copy(out, n.order)
	return out
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int {
	return len(n.successors)
}

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int {
	return len(n.order)
}
