// Package core provides a thread-safe in-memory Graph implementation: the
// edge-labeled directed multigraph the automaton and rpq packages promote
// into an automaton.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-edge directedness overrides in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the default orientation of new edges.
//	    • Directed graphs store only "from→to" pointers.
//	    • Undirected graphs mirror edges in adjacencyList[to][from].
//
//	– WithMixedEdges()
//	    Allows per-edge overrides via EdgeOption.WithEdgeDirected().
//	    Without it, an override that differs from the default orientation
//	    returns ErrMixedEdgesNotAllowed.
//
//	– WithWeighted()
//	    Permits non-zero weights globally; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// EdgeOptions:
//
//	– WithEdgeDirected(directed bool)
//	    Override the graph's default direction per-edge (mixed mode only).
//
//	– WithEdgeLabel(label string)
//	    Annotate the edge with an alphabet symbol for RPQ queries.
//
// Core Methods:
//
//	AddVertex(id string) error                                                  // O(1)
//	AddEdge(from,to string, weight int64, opts ...EdgeOption) (string, error)    // O(1) amortized
//	Vertices() []string                                                         // O(V log V)
//	Edges() []*Edge                                                             // O(E log E)
//	EdgeLabels() []string                                                       // O(E log E)
//
// Edge struct fields:
//
//	ID       string   // "e1", "e2", …
//	From     string   // source vertex ID
//	To       string   // destination vertex ID
//	Weight   int64    // cost/capacity (zero in unweighted graphs)
//	Label    string   // RPQ alphabet symbol this edge is annotated with
//	Directed bool     // true=one-way, false=bidirectional (graph default unless overridden)
//
// Edge-labeled multigraphs and Regular Path Queries:
//
//	A Graph built with WithMultiEdges() and edges carrying WithEdgeLabel(sym)
//	is exactly the "edge-labeled directed multigraph" the automaton and rpq
//	packages operate on: every vertex ID becomes an automaton state and every
//	labeled edge becomes a labeled transition (see automaton.PromoteGraph).
//	NewLabeledCyclesGraph (rpq_support.go) builds the two-cycles fixture the
//	RPQ solver tests exercise.
//
// Errors:
//
//		ErrEmptyVertexID        – zero-length vertex ID
//		ErrBadWeight            – non-zero weight on unweighted graph
//		ErrLoopNotAllowed       – self-loop when loops disabled
//		ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//		ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
