// Command subdivision_conjecture compares the gonality of every graph read
// from standard input to the gonality of its k-regular subdivision, and
// checks both against the Brill-Noether bound. Mirrors
// original_source/subdivision_conjecture.cpp.
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
	argFast   bool
	verbosity int
)

func main() {
	root := &cobra.Command{
		Use:          "subdivision_conjecture [-gfvv] [k]",
		Short:        "Test the subdivision and Brill-Noether conjectures for graphs read from standard input.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().BoolVarP(&argGraph6, "graph6", "g", false, "use graph6 input instead of plain input")
	root.Flags().BoolVarP(&argFast, "fast", "f", false, "skip computing the subdivision's exact gonality; only check for a smaller positive-rank divisor")
	root.Flags().CountVarP(&verbosity, "verbose", "v", "print the gonality of non-counterexamples too (repeat for the optimal divisor as well)")

	if err := root.Execute(); err != nil {
		clicommon.Fatal("subdivision_conjecture", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	defer fatal.Guard(&err)
	clicommon.SetVerbosity(verbosity)

	k := 2
	if len(args) == 1 {
		if k, err = clicommon.ParseK(args[0], 2, subdivision.MaxPartsPerEdge); err != nil {
			return err
		}
	}

	countGraphs, countProbs := 0, 0
	err = clicommon.ReadGraphs(cmd.InOrStdin(), argGraph6, func(g *graph.Graph) error {
		countGraphs++
		isProblem, err := checkGraph(g, k, countGraphs)
		if err != nil {
			return err
		}
		if isProblem {
			countProbs++
		}

		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	plural := "s"
	if countProbs == 1 {
		plural = ""
	}
	fmt.Printf("Summary: found %d counterexample%s.\n", countProbs, plural)

	return nil
}

// brillNoetherBound returns floor((genus+3)/2).
func brillNoetherBound(genus int) int {
	return (genus + 3) / 2
}

func checkGraph(g *graph.Graph, k, index int) (bool, error) {
	n := g.N()
	m := g.EdgeCount()
	genus := m - n + 1
	bound := brillNoetherBound(genus)

	searchCtx := search.NewContext(n)
	gonG, err := searchCtx.FindGonality(g)
	if err != nil {
		return false, err
	}
	gDivisor := searchCtx.LastDivisor()

	if argFast {
		return checkFast(g, k, index, gonG, bound, gDivisor)
	}

	return checkExtended(g, k, index, gonG, genus, bound)
}

func checkExtended(g *graph.Graph, k, index, gonG, genus, bound int) (bool, error) {
	h, err := subdivision.Subdivide(g, k)
	fatal.Check(err == nil, "subdivision_conjecture.checkExtended", "subdivision failed", err)

	searchCtx := search.NewContext(h.N())
	gonH, err := searchCtx.FindGonality(h)
	if err != nil {
		return false, err
	}
	isCounterexample := gonG != gonH || gonG > bound || gonH > bound

	if isCounterexample || verbosity >= 1 {
		boundDouble := float64(genus+3) / 2.0
		fmt.Printf("Graph %d (%q): (original gonality, subdivided gonality, Brill-Noether bound) = (%d, %d, %.1f).",
			index, g.Name(), gonG, gonH, boundDouble)
		if isCounterexample || verbosity >= 2 {
			reduceCtx := reduce.NewContext(h.N())
			reduced := reduceCtx.Reduce(h, searchCtx.LastDivisor(), 0, nil)
			fmt.Printf(" Divisor: %s", clicommon.FormatDivisor(reduced))
		}
		fmt.Println()
	}
	log.WithFields(log.Fields{"graph": g.Name(), "gon_g": gonG, "gon_h": gonH}).Debug("checked subdivision conjecture")

	return isCounterexample, nil
}

func checkFast(g *graph.Graph, k, index, gonG, bound int, gDivisor divisor.Divisor) (bool, error) {
	isBNCounterexample := gonG > bound

	h, err := subdivision.Subdivide(g, k)
	fatal.Check(err == nil, "subdivision_conjecture.checkFast", "subdivision failed", err)

	hCtx := search.NewContext(h.N())
	isSubdivCounterexample := hCtx.FindPositiveRankDivisor(h, gonG-1)

	if isBNCounterexample {
		fmt.Printf("Graph %d (%q) fails Brill-Noether bound! Gonality: %d, bound: %d.\n", index, g.Name(), gonG, bound)
	}

	if isSubdivCounterexample || verbosity >= 1 {
		status := ": all OK."
		if isSubdivCounterexample {
			status = " fails subdivision conjecture!"
		}
		fmt.Printf("Graph %d (%q)%s", index, g.Name(), status)
		if isSubdivCounterexample || verbosity >= 2 {
			// A witness of degree gonG-1 on H wasn't found (we only search up to
			// that degree). Show the degree-gonG witness on G instead, extended
			// to H with zero chips on the new subdivision vertices.
			shown := hCtx.LastDivisor()
			if !isSubdivCounterexample {
				shown = divisor.New(h.N())
				copy(shown, gDivisor)
			}
			fmt.Printf(" Divisor: %s", clicommon.FormatDivisor(shown))
		}
		fmt.Println()
	}

	return isBNCounterexample || isSubdivCounterexample, nil
}
