// Package graph6 encodes and decodes the nauty/gtools graph6 ASCII format:
// a vertex count N followed by the bit-packed upper triangle of the adjacency
// matrix, six bits per byte, each byte offset by 63. Only simple graphs
// (no parallel edges, no self-loops) can be represented — the format has no
// way to express edge multiplicity, which is why this module also carries
// the plainio package for multigraphs.
//
// Mirrors original_source/graph6.h.
package graph6
