// Command find_gonality reads graphs from standard input and computes their
// divisorial gonality. Mirrors original_source/find_gonality.cpp.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/internal/clicommon"
	"github.com/katalvlaran/dgon/reduce"
	"github.com/katalvlaran/dgon/search"
	"github.com/katalvlaran/dgon/subdivision"
)

var (
	argGraph6 bool
	argAll    bool
	verbosity int
)

func main() {
	root := &cobra.Command{
		Use:          "find_gonality [-gavv] [k]",
		Short:        "Find the divisorial gonality of every graph read from standard input.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().BoolVarP(&argGraph6, "graph6", "g", false, "use graph6 input instead of plain input")
	root.Flags().BoolVarP(&argAll, "all", "a", false, "find and show all optimal v0-reduced divisors")
	root.Flags().CountVarP(&verbosity, "verbose", "v", "show the optimal divisor (repeat for extra detail)")

	if err := root.Execute(); err != nil {
		clicommon.Fatal("find_gonality", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	defer fatal.Guard(&err)
	clicommon.SetVerbosity(verbosity)

	k := 1
	if len(args) == 1 {
		if k, err = clicommon.ParseK(args[0], 1, subdivision.MaxPartsPerEdge); err != nil {
			return err
		}
	}

	return clicommon.ReadGraphs(cmd.InOrStdin(), argGraph6, func(g *graph.Graph) error {
		return solve(g, k)
	})
}

func solve(g *graph.Graph, k int) error {
	h := g
	if k != 1 {
		var err error
		if h, err = subdivision.Subdivide(g, k); err != nil {
			return err
		}
	}
	log.WithFields(log.Fields{"graph": g.Name(), "n": h.N()}).Debug("solving")

	searchCtx := search.NewContext(h.N())
	reduceCtx := reduce.NewContext(h.N())

	fmt.Printf("%s:", g.Name())
	if argAll {
		fmt.Println()
		found := false
		for deg := 1; deg <= h.N() && !found; deg++ {
			searchCtx.FindAllPositiveRankV0ReducedDivisors(h, deg, func(d divisor.Divisor) {
				found = true
				showDivisor(h, reduceCtx, d)
			})
		}
		fatal.Check(found, "find_gonality.solve", "no positive-rank divisor found within the guaranteed bound", h.N())

		return nil
	}

	gon, err := searchCtx.FindGonality(h)
	if err != nil {
		return err
	}
	fmt.Printf(" %d\n", gon)
	showDivisor(h, reduceCtx, searchCtx.LastDivisor())

	return nil
}

func showDivisor(h *graph.Graph, reduceCtx *reduce.Context, d divisor.Divisor) {
	if argAll || verbosity >= 1 {
		reduced := reduceCtx.Reduce(h, d, 0, nil)
		fmt.Printf("  Positive rank divisor: %s\n", clicommon.FormatDivisor(reduced))
	}
	if verbosity >= 2 {
		for target := 0; target < h.N(); target++ {
			reduced := reduceCtx.Reduce(h, d, target, nil)
			fmt.Printf("    Reduced to vertex %d: %s\n", target, clicommon.FormatDivisor(reduced))
		}
	}
}
