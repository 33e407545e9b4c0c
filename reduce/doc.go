// Package reduce implements iterated-firing reduction of an effective
// divisor to its unique v-reduced representative, the reducedness predicate,
// and the positive-rank test, all built on Dhar's burning algorithm.
package reduce
