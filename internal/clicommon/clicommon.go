package clicommon

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/graph6"
	"github.com/katalvlaran/dgon/plainio"
)

// ReadGraphs reads graphs from r, invoking cb once per graph in file order.
// useGraph6 selects graph6 input (one graph per line, no parallel edges);
// otherwise the plain multi-block format is used. Mirrors the arg_g branch
// shared by find_gonality.cpp and subdivision_conjecture.cpp.
func ReadGraphs(r io.Reader, useGraph6 bool, cb func(g *graph.Graph) error) error {
	if !useGraph6 {
		return plainio.Read(r, cb)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		g, err := graph6.Decode(line)
		if err != nil {
			return errors.Wrapf(err, "decoding graph6 line %q", line)
		}
		g.SetName(line)
		if err := cb(g); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "clicommon: reading graph6 input")
}

// ParseK parses a numerical CLI argument for the subdivision order,
// enforcing [min, max]. Mirrors find_gonality.cpp's sscanf-then-round-trip
// validation of the k argument (which additionally rejects things like
// leading zeros or whitespace that Atoi alone would accept or reject
// differently — round-tripping through strconv.Itoa restores that check).
func ParseK(arg string, min, max int) (int, error) {
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing numerical argument %q", arg)
	}
	if strconv.Itoa(k) != arg {
		return 0, errors.Errorf("invalid numerical argument %q", arg)
	}
	if k < min || k > max {
		return 0, errors.Errorf("argument %d out of range [%d,%d]", k, min, max)
	}

	return k, nil
}

// FormatDivisor renders d as "[a, b, c]", matching the original programs'
// cout-based divisor dump.
func FormatDivisor(d divisor.Divisor) string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// SetVerbosity raises the package-wide logrus level once verbosity leaves
// the default (0), matching nektos/act's "-v bumps to DebugLevel" idiom.
func SetVerbosity(verbosity int) {
	if verbosity >= 1 {
		log.SetLevel(log.DebugLevel)
	}
}

// Fatal logs err with structured fields identifying the failing command. It
// does not exit; each command's main calls os.Exit(1) right after it.
func Fatal(command string, err error) {
	log.WithFields(log.Fields{"command": command}).WithError(err).Error("command failed")
}
