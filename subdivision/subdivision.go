package subdivision

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dgon/graph"
)

// Subdivide returns the k-regular subdivision H of g: for every edge (i, j)
// with i < j, H gets a fresh path i -- x1 -- x2 -- ... -- x(k-1) -- j of k
// edges through k-1 new vertices, in place of the original edge. Parallel
// edges in g each get their own independent chain of new vertices, so H is
// always simple whenever k >= 2, even if g is not.
//
// g must already be validated; the returned graph is also validated
// (with simple=false, although for k >= 2 it never has parallel edges).
// Complexity: O(n + m*k) vertices and edges.
func Subdivide(g *graph.Graph, k int) (*graph.Graph, error) {
	if k < 2 || k > MaxPartsPerEdge {
		return nil, ErrPartsPerEdgeOutOfRange
	}

	n := g.N()
	m := g.EdgeCount()
	h, err := graph.NewGraph(n + m*(k-1))
	if err != nil {
		return nil, errors.Wrap(err, "subdivision: allocating subdivided graph")
	}

	nextNode := n
	nodeNums := make([]int, k+1)
	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			if i >= j {
				continue
			}
			nodeNums[0] = i
			nodeNums[k] = j
			for p := 1; p < k; p++ {
				nodeNums[p] = nextNode
				nextNode++
			}
			for p := 0; p < k; p++ {
				if err := h.AddEdge(nodeNums[p], nodeNums[p+1]); err != nil {
					return nil, errors.Wrap(err, "subdivision: adding chain edge")
				}
			}
		}
	}

	if err := h.Validate(false); err != nil {
		return nil, errors.Wrap(err, "subdivision: validating subdivided graph")
	}

	return h, nil
}
