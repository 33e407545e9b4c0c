// Package graph defines the Graph Model: an immutable, integer-indexed
// undirected multigraph used by the divisor engine (packages divisor, burn,
// reduce, search).
//
// A Graph is built once via NewGraph/AddEdge and then Validate'd; after
// validation every algorithm in this module treats it as read-only. Vertices
// are labeled 0..n-1. Parallel edges are permitted; self-loops are not.
// The adjacency-count matrix A[i][j] (number of edges between i and j) is
// derived on demand and cached.
package graph
