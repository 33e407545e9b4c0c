// Command convert_to_graph6 reads graphs in the plain format from standard
// input and writes them to standard output in graph6 format. Graphs with
// parallel edges are rejected unless a subdivision order is given, since
// graph6 cannot represent multigraphs. Mirrors
// original_source/convert_to_graph6.cpp.
package main

import (
	"bufio"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/graph6"
	"github.com/katalvlaran/dgon/internal/clicommon"
	"github.com/katalvlaran/dgon/plainio"
	"github.com/katalvlaran/dgon/subdivision"
)

func main() {
	root := &cobra.Command{
		Use:          "convert_to_graph6 [s]",
		Short:        "Convert plain-format graphs from standard input to graph6 on standard output.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		clicommon.Fatal("convert_to_graph6", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	defer fatal.Guard(&err)

	subdivNum := -1
	if len(args) == 1 {
		if subdivNum, err = clicommon.ParseK(args[0], 2, subdivision.MaxPartsPerEdge); err != nil {
			log.WithError(err).Warn("ignoring invalid subdivision argument")
			subdivNum = -1
		}
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	return plainio.Read(cmd.InOrStdin(), func(g *graph.Graph) error {
		h := g
		if subdivNum != -1 {
			var err error
			if h, err = subdivision.Subdivide(g, subdivNum); err != nil {
				return err
			}
		}
		if !h.Simple() {
			log.WithField("graph", g.Name()).Error("graph must be simple (no parallel edges) to be stored in graph6 format; skipping")

			return nil
		}
		s, err := graph6.Encode(h)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)

		return err
	})
}
