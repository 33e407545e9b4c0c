// Command brill_noether_geng tests the Brill-Noether conjecture against a
// stream of graph6-encoded graphs on standard input. It is designed to sit
// downstream of nauty's geng generator in a pipeline:
//
//	geng -c -d2 n n:3n-9 | brill_noether_geng n
//
// This module does not vendor or reimplement geng; n and res/mod are
// accepted and validated for parity with the original program's argument
// contract, but the actual graph generation is the external tool's job.
// SIGINT/SIGTERM print the partial summary before exiting, so a long run
// against a large geng stream can be interrupted without losing the count.
// Mirrors original_source/Brill_Noether_geng/Brill_Noether_geng.cpp.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/graph6"
	"github.com/katalvlaran/dgon/indepset"
	"github.com/katalvlaran/dgon/internal/clicommon"
	"github.com/katalvlaran/dgon/search"
)

// independentSetTries mirrors INDEPENDENT_SET_NUM_TRIES.
const independentSetTries = 15

const maxN = 1500 // mirrors MAX_N in Brill_Noether_geng.cpp's graph limits block

var (
	argBiconnected bool
	argLowMemory   bool
	argQuiet       bool
	verbosity      int
)

func main() {
	root := &cobra.Command{
		Use:          "brill_noether_geng [-Cmqvv] n [res/mod]",
		Short:        "Test the Brill-Noether conjecture for graph6 graphs read from standard input.",
		Args:         cobra.RangeArgs(1, 2),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().BoolVarP(&argBiconnected, "biconnected", "C", false, "document-only: upstream geng was asked to generate only biconnected graphs")
	root.Flags().BoolVarP(&argLowMemory, "low-memory", "m", false, "document-only: upstream geng was asked to trade time for memory")
	root.Flags().BoolVarP(&argQuiet, "quiet", "q", false, "suppress the startup informational message")
	root.Flags().CountVarP(&verbosity, "verbose", "v", "with -vv, log skip decisions and per-graph OK messages")

	if err := root.Execute(); err != nil {
		clicommon.Fatal("brill_noether_geng", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	defer fatal.Guard(&err)
	clicommon.SetVerbosity(verbosity)

	n, err := clicommon.ParseK(args[0], 3, maxN)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		if _, _, err := parseResMod(args[1]); err != nil {
			return err
		}
	}
	if !argQuiet {
		log.WithField("n", n).Info("expecting graph6 graphs on stdin, as produced by geng -c -d2")
	}

	var tel, probs atomic.Int64

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; !ok {
			return
		}
		log.Warn("interrupted, printing partial summary")
		fmt.Println()
		fmt.Printf("Summary: tested %d graphs; found %d problems.\n", tel.Load(), probs.Load())
		os.Exit(1)
	}()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tel.Add(1)
		isProblem, err := checkGraph(line, tel.Load())
		if err != nil {
			return err
		}
		if isProblem {
			probs.Add(1)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Summary: tested %d graphs; found %d problems.\n", tel.Load(), probs.Load())

	return nil
}

func parseResMod(arg string) (res, mod int, err error) {
	if _, err := fmt.Sscanf(arg, "%d/%d", &res, &mod); err != nil {
		return 0, 0, fmt.Errorf("invalid res/mod argument %q", arg)
	}
	if mod < 1 || res < 0 || res >= mod {
		return 0, 0, fmt.Errorf("res/mod out of range in %q", arg)
	}

	return res, mod, nil
}

func checkGraph(g6Line string, index int64) (bool, error) {
	g, err := graph6.Decode(g6Line)
	if err != nil {
		return false, err
	}
	n := g.N()
	for v := 0; v < n; v++ {
		if g.Degree(v) <= 1 {
			if verbosity >= 2 {
				log.WithField("graph", g6Line).Infof("graph %d has a vertex of degree <= 1, skipping", index)
			}

			return false, nil
		}
	}

	m := g.EdgeCount()
	genus := m - n + 1
	bound := (genus + 3) / 2
	if bound >= n-2 {
		if verbosity >= 2 {
			log.WithField("graph", g6Line).Infof("graph %d trivially meets the Brill-Noether bound, skipping", index)
		}

		return false, nil
	}

	if certificateFound(g, bound, g6Line, index) {
		return false, nil
	}

	gon, err := search.NewContext(n).FindGonality(g)
	if err != nil {
		return false, err
	}
	if gon > bound {
		fmt.Printf("Graph %d (%q) fails Brill-Noether bound! Gonality: %d, bound: %d.\n", index, g6Line, gon, bound)

		return true, nil
	}
	if verbosity >= 2 {
		log.WithField("graph", g6Line).Infof("graph %d: OK", index)
	}

	return false, nil
}

// certificateFound looks for an independent set large enough that the
// corresponding divisor (1 chip on every vertex outside the set) already
// meets the Brill-Noether bound, avoiding the exact gonality search.
func certificateFound(g *graph.Graph, bound int, g6Line string, index int64) bool {
	for i := 0; i < independentSetTries; i++ {
		indep := indepset.ApproximateMaximumIndependentSet(g)
		fatal.Check(indepset.CheckIndependent(g, indep), "brill_noether_geng.certificateFound", "approximate independent set was not actually independent", indep)
		degree := g.N() - len(indep)
		if degree <= bound {
			if verbosity >= 2 {
				log.WithField("graph", g6Line).Infof("graph %d has a sufficiently large independent set, skipping", index)
			}

			return true
		}
	}

	return false
}
