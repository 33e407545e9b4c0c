// Package divisor defines the Divisor type and the chip-firing primitive
// that the burn, reduce, and search engines build on: an integer-valued
// function on a graph's vertex set, mutated only by firing a subset of
// vertices simultaneously.
package divisor
