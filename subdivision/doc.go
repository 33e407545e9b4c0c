// Package subdivision builds the k-regular subdivision of a graph: every
// edge is replaced by a path of k edges through k-1 new vertices, so the
// 1-regular subdivision is the original graph itself. Used to test the
// subdivision conjecture (does gonality stay invariant under subdivision?)
// and to give a multigraph a parallel-edge-free representative suitable
// for graph6 encoding.
//
// Mirrors original_source/subdivisions.h.
package subdivision
