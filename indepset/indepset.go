package indepset

import (
	"math/rand"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
)

// ApproximateMaximumIndependentSet runs one pass of the Boppana-Halldorsson
// "Clique Removal" algorithm and returns an independent set of g. Being
// randomized, repeated calls can return sets of different sizes — callers
// chasing a specific bound (e.g. brill_noether_geng's Brill-Noether
// certificate) should call this a handful of times and keep the best
// result, per the algorithm's own recommendation.
//
// g must be simple: the independent-set trick this package exists for does
// not apply to multigraphs (see package doc and subdivision for the usual
// remedy of subdividing first).
// Complexity: O(n^3) worst case per call: up to n rounds of ramsey, each
// O(n^2).
func ApproximateMaximumIndependentSet(g *graph.Graph) []int {
	fatal.Check(g.Simple(), "indepset.ApproximateMaximumIndependentSet", "graph must be simple", g.N())

	a := g.AdjacencyMatrix()
	n := g.N()
	remaining := hashset.New()
	for i := 0; i < n; i++ {
		remaining.Add(i)
	}

	best := hashset.New()
	for !remaining.Empty() {
		indep, cliq := ramsey(a, remaining)
		remaining.Remove(cliq.Values()...)
		if indep.Size() > best.Size() {
			best = indep
		}
	}

	return setToSlice(best)
}

// ramsey is Boppana and Halldorsson's recursive "Ramsey" procedure: pick a
// random vertex v0 of s, split the rest into neighbours and non-neighbours
// of v0, recurse on both halves, and combine the four candidates into the
// best independent set and the best clique found within s.
func ramsey(a [][]int, s *hashset.Set) (indep, cliq *hashset.Set) {
	if s.Empty() {
		return hashset.New(), hashset.New()
	}

	values := s.Values()
	v0 := values[rand.Intn(len(values))].(int)

	neighbs := hashset.New()
	nonNeighbs := hashset.New()
	for _, v := range values {
		i := v.(int)
		if i == v0 {
			continue
		}
		if a[v0][i] != 0 {
			neighbs.Add(i)
		} else {
			nonNeighbs.Add(i)
		}
	}

	aIndep, aCliq := ramsey(a, neighbs)
	bIndep, bCliq := ramsey(a, nonNeighbs)
	bIndep.Add(v0)
	aCliq.Add(v0)

	bestIndep := aIndep
	if bIndep.Size() > aIndep.Size() {
		bestIndep = bIndep
	}
	bestCliq := aCliq
	if bCliq.Size() > aCliq.Size() {
		bestCliq = bCliq
	}

	return bestIndep, bestCliq
}

func setToSlice(s *hashset.Set) []int {
	values := s.Values()
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(int)
	}

	return out
}

// CheckIndependent reports whether set is an independent set of g: no two
// of its members are adjacent. Used to verify the randomized algorithm's
// output before trusting it as a gonality certificate, matching
// approximate_independent_sets.h's EXTRA_CHECKS assertions.
func CheckIndependent(g *graph.Graph, set []int) bool {
	a := g.AdjacencyMatrix()
	for _, i := range set {
		for _, j := range set {
			if i != j && a[i][j] != 0 {
				return false
			}
		}
	}

	return true
}
