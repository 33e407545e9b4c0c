package graph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrNegativeSize indicates NewGraph was asked to build a graph with n < 0.
	ErrNegativeSize = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint falls outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an edge was requested from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not permitted")

	// ErrFrozen indicates AddEdge was called after the graph was validated.
	ErrFrozen = errors.New("graph: cannot mutate a validated graph")

	// ErrAsymmetricAdjacency indicates the internal neighbor lists are not
	// mirror images of each other; this is a programmer error, never a
	// consequence of using the public API correctly.
	ErrAsymmetricAdjacency = errors.New("graph: adjacency is not symmetric")

	// ErrNotSimple indicates a simple-graph check found a parallel edge.
	ErrNotSimple = errors.New("graph: graph has parallel edges")

	// ErrDisconnected indicates an operation that requires a single connected
	// component (e.g. the gonality search, which is rooted at vertex 0 and
	// relies on Dhar's burning algorithm reaching every vertex) was given a
	// graph with more than one component.
	ErrDisconnected = errors.New("graph: graph is not connected")
)
