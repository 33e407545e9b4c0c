// Command convert_from_graph6 reads graph6-encoded graphs from standard
// input, one per line, and writes them out in the plain format. Mirrors
// original_source/convert_from_graph6.cpp.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dgon/fatal"
	"github.com/katalvlaran/dgon/graph6"
	"github.com/katalvlaran/dgon/internal/clicommon"
	"github.com/katalvlaran/dgon/plainio"
)

func main() {
	root := &cobra.Command{
		Use:          "convert_from_graph6",
		Short:        "Convert graph6-encoded graphs from standard input to the plain format on standard output.",
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		clicommon.Fatal("convert_from_graph6", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	defer fatal.Guard(&err)

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		g, err := graph6.Decode(line)
		if err != nil {
			return err
		}
		count++
		g.SetName(fmt.Sprintf("Graph %d (%q)", count, line))
		if err := plainio.Write(out, g); err != nil {
			return err
		}
	}

	return scanner.Err()
}
