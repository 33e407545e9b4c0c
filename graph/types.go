package graph

import "sync"

// Graph is an immutable-after-validation undirected multigraph on vertices
// 0..N()-1. Neighbor lists store one entry per incident edge-end (so a
// parallel edge (i,j) contributes twice: once to neighbors[i], once to
// neighbors[j]); self-loops are never stored.
//
// Mutation (AddEdge) is only legal before Validate is called; muMut guards
// that construction/freeze transition. Once frozen, Graph is read-only and
// safe for concurrent use by multiple goroutines without further locking:
// callers processing many graphs run one search per goroutine, each with
// its own search.Context, sharing only the frozen Graph values.
type Graph struct {
	muMut sync.Mutex // guards frozen/neighbors during construction only

	name    string
	n       int
	frozen  bool
	edges   int
	neighbors [][]int // neighbors[v] = ordered list of adjacent vertices, with repetition

	muMatrix sync.Mutex // guards lazy adjacency-matrix cache
	matrix   [][]int    // A[i][j] = number of edges between i and j; nil until first use
}

// NewGraph allocates an empty Graph on n vertices (0..n-1). The graph is
// mutable via AddEdge until Validate is called.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Graph{
		n:         n,
		neighbors: make([][]int, n),
	}, nil
}

// Name returns the graph's human-readable name, as set by an ingester
// (plainio/graph6). Empty if never set.
func (g *Graph) Name() string {
	return g.name
}

// SetName records a display name for the graph. Legal before or after
// Validate; it carries no algorithmic meaning.
func (g *Graph) SetName(name string) {
	g.name = name
}

// N returns the number of vertices.
func (g *Graph) N() int {
	return g.n
}
