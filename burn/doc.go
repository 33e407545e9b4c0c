// Package burn implements Dhar's burning algorithm: given a graph, a
// divisor, and a starting vertex, it computes the maximal set of vertices
// that survive an unbounded fire started at the given vertex under the
// given divisor.
//
// A Context bundles the scratch buffers a burn needs (burnt-edge counters,
// burnt flags, a work queue) so that repeated calls — as made by the
// reduce and search engines — do not reallocate. A Context is not safe for
// concurrent use; give each goroutine its own.
package burn
