package search

import (
	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/reduce"
)

// Callback is invoked once per accepted divisor during
// FindAllPositiveRankV0ReducedDivisors. d aliases Context-owned storage and
// is only valid for the duration of the call — callbacks must not mutate it
// and must copy it (d.Clone()) to retain it.
type Callback func(d divisor.Divisor)

// Context holds the scratch state for repeated searches against a graph on
// a fixed n vertices: the reduction engine's own scratch plus the partial-
// divisor stack used by the enumeration recursion. Not safe for concurrent
// use — give each goroutine its own Context.
type Context struct {
	n         int
	reduceCtx *reduce.Context
	partial   divisor.Divisor
}

// NewContext allocates scratch buffers for searching graphs on n vertices.
func NewContext(n int) *Context {
	return &Context{
		n:         n,
		reduceCtx: reduce.NewContext(n),
		partial:   divisor.New(n),
	}
}

// FindPositiveRankDivisor searches for an effective, v0-reduced, positive-
// rank divisor of degree exactly d. On success it returns true and the
// witness is available from LastDivisor. The search explores larger chip
// counts on each vertex before smaller ones, so the first candidate it
// tests puts all d chips on v0. FindGonality calls it for d = 1, 2, ... in
// turn, so the first degree at which it succeeds is the smallest one with a
// positive-rank witness.
// Complexity: exponential in n; dominated by the leaf-level burn/rank tests.
func (c *Context) FindPositiveRankDivisor(g *graph.Graph, d int) bool {
	fatal.Check(d >= 0, "search.FindPositiveRankDivisor", "requested degree is negative", d)
	fatal.Check(g.N() == c.n, "search.FindPositiveRankDivisor", "graph size does not match context", g.N())

	return c.find(g, d, 0)
}

// LastDivisor returns a copy of the divisor left in the Context's working
// buffer by the most recent successful FindPositiveRankDivisor call. After a
// call that found nothing, or once FindAllPositiveRankV0ReducedDivisors has
// returned, the buffer holds -1 entries rather than a divisor.
func (c *Context) LastDivisor() divisor.Divisor {
	return c.partial.Clone()
}

func (c *Context) find(g *graph.Graph, remaining, pos int) bool {
	if pos >= c.n {
		return remaining == 0 &&
			c.partial[0] > 0 &&
			c.reduceCtx.IsReduced(g, c.partial, 0) &&
			c.reduceCtx.HasPositiveRank(g, c.partial)
	}

	stop := 0
	if pos == 0 {
		stop = 1 // every accepted divisor needs >=1 chip on v0
	}
	for i := remaining; i >= stop; i-- {
		c.partial[pos] = i
		if c.find(g, remaining-i, pos+1) {
			return true
		}
	}
	c.partial[pos] = -1

	return false
}

// FindAllPositiveRankV0ReducedDivisors enumerates every effective, v0-
// reduced, positive-rank divisor of degree exactly d, invoking cb once per
// match. It does not stop at the first match, so it can be far slower than
// FindPositiveRankDivisor; use it only when every witness is wanted.
func (c *Context) FindAllPositiveRankV0ReducedDivisors(g *graph.Graph, d int, cb Callback) {
	fatal.Check(d >= 0, "search.FindAllPositiveRankV0ReducedDivisors", "requested degree is negative", d)
	fatal.Check(g.N() == c.n, "search.FindAllPositiveRankV0ReducedDivisors", "graph size does not match context", g.N())

	c.findAll(g, d, 0, cb)
}

func (c *Context) findAll(g *graph.Graph, remaining, pos int, cb Callback) {
	if pos >= c.n {
		if remaining == 0 &&
			c.partial[0] > 0 &&
			c.reduceCtx.IsReduced(g, c.partial, 0) &&
			c.reduceCtx.HasPositiveRank(g, c.partial) {
			cb(c.partial)
		}

		return
	}

	stop := 0
	if pos == 0 {
		stop = 1
	}
	for i := remaining; i >= stop; i-- {
		c.partial[pos] = i
		c.findAll(g, remaining-i, pos+1, cb)
	}
	c.partial[pos] = -1
}

// FindGonality returns dgon(G), the smallest d >= 1 for which an effective,
// positive-rank divisor of degree d exists. Guaranteed to terminate by
// d == g.N(): one chip on every vertex is a degree-n divisor of positive
// rank, and its v0-reduced representative has the same degree, positive
// rank, and at least one chip on v0.
//
// g must be connected and returns graph.ErrDisconnected otherwise: Dhar's
// burning algorithm tests whether firing every unburnt vertex eventually
// burns the whole graph starting from v0, so a vertex in a different
// component than v0 can never be reached by the fire and the v0-reduced
// representative the search relies on is not even defined there.
func (c *Context) FindGonality(g *graph.Graph) (int, error) {
	if !g.Connected() {
		return 0, graph.ErrDisconnected
	}

	for d := 1; ; d++ {
		if c.FindPositiveRankDivisor(g, d) {
			return d, nil
		}
		fatal.Check(d <= g.N(), "search.FindGonality", "gonality search exceeded the guaranteed n upper bound", d)
	}
}
