package plainio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/dgon/graph"
)

// intPair parses a line of two whitespace-separated integers — used for
// both the "n m" header line and the "v w" edge lines. Grounded on
// lib2x3/graph-grammar.go's use of a small participle grammar struct per
// token shape rather than hand-rolled sscanf-style parsing.
type intPair struct {
	A int `@Int`
	B int `@Int`
}

var pairParser = participle.MustBuild[intPair]()

func parsePair(line string) (int, int, error) {
	p, err := pairParser.ParseString("", line)
	if err != nil {
		return 0, 0, err
	}

	return p.A, p.B, nil
}

// Callback is invoked once per parsed graph block, in file order.
type Callback func(g *graph.Graph) error

// Read scans r for plain-format blocks, constructing and validating a Graph
// for each and invoking cb. Parallel edges are permitted (Validate is called
// with simple=false); it is the caller's responsibility to re-check
// Simple() if a stricter guarantee is needed. Blank lines are skipped.
func Read(r io.Reader, cb Callback) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for {
		name, ok, err := nextNonBlankLine(scanner)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		headerLine, ok, err := nextNonBlankLine(scanner)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(ErrTruncatedBlock, "missing header line after name "+name)
		}
		n, m, err := parsePair(headerLine)
		if err != nil {
			return errors.Wrapf(ErrMalformedHeader, "graph %q: %v", name, err)
		}

		g, err := graph.NewGraph(n)
		if err != nil {
			return errors.Wrapf(err, "graph %q", name)
		}
		g.SetName(name)

		for i := 0; i < m; i++ {
			edgeLine, ok, err := nextNonBlankLine(scanner)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Wrapf(ErrTruncatedBlock, "graph %q: expected %d edges, got %d", name, m, i)
			}
			a, b, err := parsePair(edgeLine)
			if err != nil {
				return errors.Wrapf(ErrMalformedEdge, "graph %q, edge %d: %v", name, i, err)
			}
			if err := g.AddEdge(a, b); err != nil {
				return errors.Wrapf(err, "graph %q, edge %d", name, i)
			}
		}

		if err := g.Validate(false); err != nil {
			return errors.Wrapf(err, "graph %q", name)
		}
		if err := cb(g); err != nil {
			return err
		}
	}
}

func nextNonBlankLine(scanner *bufio.Scanner) (string, bool, error) {
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			return line, true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, errors.Wrap(err, "plainio: reading input")
	}

	return "", false, nil
}

// Write renders g in plain format: the name line, the "n m" header, and one
// "v w" line per edge (each parallel edge repeated once per multiplicity, in
// neighbor-list order, i < w only — mirrors graph_io.h's print_plain_output).
func Write(w io.Writer, g *graph.Graph) error {
	if _, err := fmt.Fprintln(w, g.Name()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, g.N(), g.EdgeCount()); err != nil {
		return err
	}
	for i := 0; i < g.N(); i++ {
		for _, j := range g.Neighbors(i) {
			if i < j {
				if _, err := fmt.Fprintln(w, i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
