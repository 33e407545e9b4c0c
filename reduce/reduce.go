package reduce

import (
	"github.com/katalvlaran/dgon/burn"
	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
)

// Context holds the scratch state shared by Reduce, IsReduced, and
// HasPositiveRank, so repeated calls against graphs of a fixed size n never
// reallocate. Not safe for concurrent use — give each goroutine its own.
type Context struct {
	n        int
	burnCtx  *burn.Context
	working  divisor.Divisor
	canReach []bool
}

// NewContext allocates scratch buffers for graphs on n vertices.
func NewContext(n int) *Context {
	return &Context{
		n:        n,
		burnCtx:  burn.NewContext(n),
		working:  divisor.New(n),
		canReach: make([]bool, n),
	}
}

// IsReduced reports whether d is reduced with respect to target: burning
// from target exhausts the graph.
// Complexity: O(n + m).
func (c *Context) IsReduced(g *graph.Graph, d divisor.Divisor, target int) bool {
	return len(c.burnCtx.Burn(g, d, target)) == 0
}

// IsReducedAnywhere reports whether d is v-reduced for some vertex v. It
// burns from each vertex in turn, so it is mainly useful as a sanity check
// rather than in the hot path of a search.
// Complexity: O(n * (n + m)).
func (c *Context) IsReducedAnywhere(g *graph.Graph, d divisor.Divisor) bool {
	for v := 0; v < g.N(); v++ {
		if c.IsReduced(g, d, v) {
			return true
		}
	}

	return false
}

// Reduce returns the divisor linearly equivalent to d that is v-reduced at
// target, by iterated firing of the maximal legal firing set until burning
// from target exhausts the graph. If script is non-nil, it must have length
// n; it is zeroed and then filled with how many times each vertex fired
// (script[target] is always 0).
//
// Termination: every firing round strictly decreases the divisor in the
// lexicographic order that compares chip counts vertex-by-vertex at
// increasing BFS distance from target, since firing the unburnt set moves
// at least one chip strictly closer to target without ever sending target
// negative; this converges in a bounded number of rounds for any finite
// graph and any effective starting divisor.
// Complexity: O(rounds * (n + m)).
func (c *Context) Reduce(g *graph.Graph, d divisor.Divisor, target int, script divisor.Divisor) divisor.Divisor {
	fatal.Check(target >= 0 && target < g.N(), "reduce.Reduce", "target vertex out of range", target)

	copy(c.working, d)
	if script != nil {
		for i := range script {
			script[i] = 0
		}
	}

	for {
		firingSet := c.burnCtx.Burn(g, c.working, target)
		if len(firingSet) == 0 {
			break
		}
		if script != nil {
			for _, v := range firingSet {
				script[v]++
			}
		}
		divisor.Fire(g, c.working, firingSet)
	}

	if script != nil {
		fatal.Check(script[target] == 0, "reduce.Reduce", "target vertex fired during its own reduction", target)
	}

	return c.working.Clone()
}

// HasPositiveRank reports whether d has positive rank: for every vertex u,
// some effective divisor linearly equivalent to d places a chip on u.
//
// The Graph type's Validate/freeze lifecycle already guarantees the input
// graph is well-formed for the lifetime of every call made against it, so —
// unlike the source's optional check_graph_validity flag — this never
// re-validates the graph; ingestion (graph.Validate) is the single place
// that check happens.
// Complexity: amortized O(n * (n + m)) thanks to the can-reach memoization.
func (c *Context) HasPositiveRank(g *graph.Graph, d divisor.Divisor) bool {
	n := g.N()
	fatal.Check(d.Effective(), "reduce.HasPositiveRank", "divisor is not effective", d)

	copy(c.working, d)
	for i := 0; i < n; i++ {
		c.canReach[i] = d[i] > 0
	}

	for u := 0; u < n; u++ {
		for !c.canReach[u] {
			firingSet := c.burnCtx.Burn(g, c.working, u)
			if len(firingSet) == 0 {
				return false
			}
			divisor.Fire(g, c.working, firingSet)
			for v := 0; v < n; v++ {
				if c.working[v] > 0 {
					c.canReach[v] = true
				}
			}
		}
	}

	return true
}
