// File: rpq_support.go
// Role: RPQ-oriented Graph helpers: EdgeLabels() and the labeled-two-cycles
// fixture constructor used by automaton/rpq test scenarios.
// AI-HINT (file):
//   - EdgeLabels() is the Go counterpart of cfpq_data.get_sorted_labels: sorted, deduplicated.
//   - NewLabeledCyclesGraph builds exactly the S1/S2 fixture from the spec's end-to-end scenarios.
package core

import (
	"sort"
	"strconv"
)

// EdgeLabels returns the distinct, sorted set of non-empty Edge.Label values
// present in the graph. Edges with an empty Label are not alphabet symbols
// and are excluded.
//
// Complexity: O(E log E).
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) EdgeLabels() []string {
	// AI-HINT: O(E) scan + dedup + sort; empty labels are not alphabet symbols.
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[string]struct{})
	var e *Edge
	for _, e = range g.edges {
		if e.Label == "" {
			continue
		}
		seen[e.Label] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	var label string
	for label = range seen {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}

// NewLabeledCyclesGraph builds two directed cycles sharing vertex "0":
// a first cycle of n nodes ("0".."n-1") with every edge labeled labelA,
// and a second cycle of m nodes ("0", "n", "n+1", ..., "n+m-2") with every
// edge labeled labelB. This is the fixture the spec's S1/S2 scenarios use,
// reinstated from the original Python project's
// create_labeled_two_cycles_graph (see DESIGN.md).
//
// n and m must each be >= 1; a cycle of size 1 is the self-loop "0" -> "0".
func NewLabeledCyclesGraph(n, m int, labelA, labelB string) *Graph {
	g := NewGraph(WithDirected(true), WithMultiEdges(), WithLoops())

	addCycle := func(size int, label string) {
		prev := "0"
		for i := 1; i < size; i++ {
			cur := strconv.Itoa(i)
			_, _ = g.AddEdge(prev, cur, 0, WithEdgeLabel(label))
			prev = cur
		}
		_, _ = g.AddEdge(prev, "0", 0, WithEdgeLabel(label))
	}

	addCycle(n, labelA)
	// The second cycle's non-zero vertices continue numbering after the first
	// cycle's, matching cfpq_data.labeled_two_cycles_graph's node layout.
	prev := "0"
	for i := 1; i < m; i++ {
		cur := strconv.Itoa(n - 1 + i)
		_, _ = g.AddEdge(prev, cur, 0, WithEdgeLabel(labelB))
		prev = cur
	}
	_, _ = g.AddEdge(prev, "0", 0, WithEdgeLabel(labelB))

	return g
}
