package network

import (
	"errors"
	"testing"

	"github.com/cesargomez89/mixmemory/internal/domain"
)

func TestAddEdge(t *testing.T) {
	n := New()

	if !n.AddEdge("a", "b") {
		t.Error("Expected first AddEdge to report a new edge")
	}
	if n.AddEdge("a", "b") {
		t.Error("Expected duplicate AddEdge to report false")
	}
	if n.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", n.EdgeCount())
	}
	if !n.HasEdge("a", "b") {
		t.Error("Expected edge a->b to exist")
	}
	// Directed: the reverse edge is a separate confirmation.
	if n.HasEdge("b", "a") {
		t.Error("Expected no reverse edge b->a")
	}
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	n := New()
	if n.AddEdge("a", "a") {
		t.Error("Expected self-loop to be rejected")
	}
	if n.EdgeCount() != 0 || n.NodeCount() != 0 {
		t.Errorf("Expected untouched graph, got %d nodes %d edges", n.NodeCount(), n.EdgeCount())
	}
}

func TestAddNodeIdempotent(t *testing.T) {
	n := New()
	n.AddNode("a")
	n.AddEdge("a", "b")
	n.AddNode("a") // must not clear existing edges

	if !n.HasEdge("a", "b") {
		t.Error("Expected edge to survive repeated AddNode")
	}
	if n.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", n.NodeCount())
	}
}

func TestSuccessorsInsertionOrder(t *testing.T) {
	n := New()
	n.AddEdge("a", "c")
	n.AddEdge("a", "b")
	n.AddEdge("a", "d")
	n.AddEdge("a", "b") // duplicate must not reorder

	succ, err := n.Successors("a")
	if err != nil {
		t.Fatalf("Successors failed: %v", err)
	}
	want := []domain.TrackID{"c", "b", "d"}
	if len(succ) != len(want) {
		t.Fatalf("Expected %d successors, got %d", len(want), len(succ))
	}
	for i := range want {
		if succ[i] != want[i] {
			t.Errorf("Expected successor %d to be %s, got %s", i, want[i], succ[i])
		}
	}
}

func TestSuccessorsUnknownNode(t *testing.T) {
	n := New()
	_, err := n.Successors("missing")
	if !errors.Is(err, domain.ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
}

func TestSuccessorsNodeWithoutEdges(t *testing.T) {
	n := New()
	n.AddNode("lonely")

	succ, err := n.Successors("lonely")
	if err != nil {
		t.Fatalf("Successors failed: %v", err)
	}
	if len(succ) != 0 {
		t.Errorf("Expected no successors, got %d", len(succ))
	}
}

func TestEdgesEnumeration(t *testing.T) {
	n := New()
	n.AddEdge("a", "b")
	n.AddEdge("b", "c")
	n.AddEdge("a", "c")

	edges := n.Edges()
	want := []domain.Transition{
		{SourceID: "a", DestID: "b"},
		{SourceID: "b", DestID: "c"},
		{SourceID: "a", DestID: "c"},
	}
	if len(edges) != len(want) {
		t.Fatalf("Expected %d edges, got %d", len(want), len(edges))
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("Expected edge %d to be %v, got %v", i, want[i], edges[i])
		}
	}
}
