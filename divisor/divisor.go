package divisor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dgon/graph"
)

// Divisor is an integer-valued function on a graph's vertex set, indexed by
// vertex. It is effective iff every entry is non-negative.
type Divisor []int

// New allocates the zero divisor on n vertices.
func New(n int) Divisor {
	return make(Divisor, n)
}

// Clone returns an independent copy of d.
func (d Divisor) Clone() Divisor {
	out := make(Divisor, len(d))
	copy(out, d)

	return out
}

// Degree returns Σ d[v].
func (d Divisor) Degree() int {
	sum := 0
	for _, v := range d {
		sum += v
	}

	return sum
}

// Effective reports whether d[v] >= 0 for every vertex.
func (d Divisor) Effective() bool {
	for _, v := range d {
		if v < 0 {
			return false
		}
	}

	return true
}

// Equal reports whether d and other agree pointwise.
func (d Divisor) Equal(other Divisor) bool {
	if len(d) != len(other) {
		return false
	}
	for i, v := range d {
		if other[i] != v {
			return false
		}
	}

	return true
}

// String renders d as "[d0, d1, ..., dn-1]", used by the CLI's verbose
// output and by test failure messages.
func (d Divisor) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Fire applies the firing operation to every vertex in set simultaneously,
// mutating d in place: for each v in set, for each neighbor w of v (with
// multiplicity), d[v]-- and d[w]++.
//
// This loop-over-neighbors formulation (rather than d[v] -= deg(v) followed
// by a single d[w]++ per distinct neighbor) is required to handle parallel
// edges correctly: g.Neighbors(v) lists one entry per incident edge-end, so
// a vertex w joined to v by three parallel edges appears three times and
// receives three increments, matching the chip-firing rule that each edge
// carries its own chip independently of any others between the same pair.
func Fire(g *graph.Graph, d Divisor, set []int) {
	for _, v := range set {
		for _, w := range g.Neighbors(v) {
			d[v]--
			d[w]++
		}
	}
}

// FireVertex fires the single vertex v; equivalent to Fire(g, d, []int{v}).
func FireVertex(g *graph.Graph, d Divisor, v int) {
	for _, w := range g.Neighbors(v) {
		d[v]--
		d[w]++
	}
}
