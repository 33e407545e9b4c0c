// Package indepset implements the Boppana-Halldorsson "Clique Removal"
// randomized approximation algorithm for maximum independent set.
//
// An independent set A in a simple graph G yields a positive-rank divisor
// of degree n-|A| (one chip on every vertex outside A); brill_noether_geng
// uses this as a cheap certificate before falling back to the expensive
// exact gonality search.
//
// Reference: Ravi Boppana and Magnus M. Halldorsson (1992), Approximating
// Maximum Independent Sets by Excluding Subgraphs, BIT Numerical
// Mathematics 32(2):180-196.
//
// Mirrors original_source/approximate_independent_sets.h.
package indepset
