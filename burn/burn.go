package burn

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
)

// Context holds the scratch state Burn needs, sized for a graph on n
// vertices, so repeated calls (as made by the reduce and search engines)
// never reallocate. Not safe for concurrent use — give each goroutine its
// own Context.
type Context struct {
	n          int
	burnt      []bool
	burntEdges []int
	firingSet  []int
	queue      *linkedlistqueue.Queue
}

// NewContext allocates scratch buffers for burning graphs on n vertices.
func NewContext(n int) *Context {
	return &Context{
		n:          n,
		burnt:      make([]bool, n),
		burntEdges: make([]int, n),
		firingSet:  make([]int, 0, n),
		queue:      linkedlistqueue.New(),
	}
}

// Burn runs Dhar's burning algorithm from start under divisor d and returns
// the firing set F ⊆ V \ {start}: the vertices never reached by the burn.
// F is empty iff fire from start under d propagates to the whole graph.
//
// start is always burnt regardless of d[start], which is never read. The
// returned slice aliases Context-owned storage; it is valid only until the
// next call to Burn on this Context — copy it if you need to keep it.
//
// Complexity: O(n + m).
func (c *Context) Burn(g *graph.Graph, d divisor.Divisor, start int) []int {
	fatal.Check(start >= 0 && start < c.n, "burn.Burn", "start vertex out of range", start)

	for i := 0; i < c.n; i++ {
		c.burnt[i] = false
		c.burntEdges[i] = 0
		fatal.Check(i == start || d[i] >= 0, "burn.Burn", "divisor is negative off the start vertex", i)
	}
	c.queue.Clear()

	c.burnt[start] = true
	c.queue.Enqueue(start)
	for !c.queue.Empty() {
		front, _ := c.queue.Dequeue()
		u := front.(int)
		for _, w := range g.Neighbors(u) {
			c.burntEdges[w]++
			if !c.burnt[w] && c.burntEdges[w] > d[w] {
				c.burnt[w] = true
				c.queue.Enqueue(w)
			}
		}
	}

	c.firingSet = c.firingSet[:0]
	for i := 0; i < c.n; i++ {
		if !c.burnt[i] {
			c.firingSet = append(c.firingSet, i)
		}
	}

	return c.firingSet
}
