package graph6

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dgon/graph"
)

const (
	minByte = 63
	maxByte = 126
)

// Decode parses a single graph6-encoded line into a Graph. The returned
// graph has already been run through Validate(true) (graph6 only ever
// describes simple graphs).
func Decode(s string) (*graph.Graph, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	for i := 0; i < len(s); i++ {
		if s[i] < minByte || s[i] > maxByte {
			return nil, errors.Wrapf(ErrBadByte, "byte %d (%q) at position %d", s[i], s[i], i)
		}
	}

	pos := 0
	n, err := readN(s, &pos)
	if err != nil {
		return nil, err
	}

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, errors.Wrap(err, "graph6: constructing graph")
	}

	m := int64(n) * int64(n-1) / 2
	for m%6 != 0 {
		m++
	}
	bits, err := readR(s, &pos, int(m/6))
	if err != nil {
		return nil, err
	}
	if pos != len(s) {
		return nil, ErrTrailingData
	}

	k := 0
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			if bits[k] {
				if err := g.AddEdge(i, j); err != nil {
					return nil, errors.Wrap(err, "graph6: rebuilding edges")
				}
			}
			k++
		}
	}
	if err := g.Validate(true); err != nil {
		return nil, errors.Wrap(err, "graph6: decoded graph failed validation")
	}

	return g, nil
}

// Encode writes g in graph6 format. g must be simple (Encode calls
// g.Simple(), which forces population of the adjacency-matrix cache).
func Encode(g *graph.Graph) (string, error) {
	if !g.Simple() {
		return "", ErrNotSimple
	}

	n := g.N()
	a := g.AdjacencyMatrix()
	var upper []bool
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			upper = append(upper, a[i][j] != 0)
		}
	}

	return writeN(int64(n)) + writeR(upper), nil
}

// readN decodes the leading vertex-count field, advancing pos past it.
// Mirrors graph6.h's readN: values <= 62 are a single byte; larger values
// use an 0x7e (or 0x7e 0x7e) escape followed by 18 or 36 packed bits.
func readN(s string, pos *int) (int, error) {
	if *pos >= len(s) {
		return 0, ErrTruncated
	}
	if s[*pos] < maxByte {
		n := int(s[*pos]) - minByte
		*pos++

		return n, nil
	}
	*pos++
	if *pos >= len(s) {
		return 0, ErrTruncated
	}
	if s[*pos] < maxByte {
		bits, err := readR(s, pos, 3)
		if err != nil {
			return 0, err
		}
		return int(bitsToInt(bits)), nil
	}
	*pos++
	if *pos >= len(s) {
		return 0, ErrTruncated
	}
	bits, err := readR(s, pos, 6)
	if err != nil {
		return 0, err
	}

	return int(bitsToInt(bits)), nil
}

// readR unpacks num bytes into 6*num bits, most significant bit first.
func readR(s string, pos *int, num int) ([]bool, error) {
	if *pos+num > len(s) {
		return nil, ErrTruncated
	}
	ret := make([]bool, 0, num*6)
	for i := 0; i < num; i++ {
		cur := int(s[*pos+i]) - minByte
		for j := 5; j >= 0; j-- {
			ret = append(ret, cur&(1<<uint(j)) != 0)
		}
	}
	*pos += num

	return ret, nil
}

func bitsToInt(bits []bool) int64 {
	var ret int64
	for _, b := range bits {
		ret <<= 1
		if b {
			ret++
		}
	}

	return ret
}

// writeN encodes n as graph6's leading vertex-count field.
func writeN(n int64) string {
	if n <= 62 {
		return string([]byte{byte(n + minByte)})
	}
	if n <= 258047 {
		bits := make([]bool, 18)
		for i := 0; i < 18; i++ {
			bits[i] = n&(1<<uint(17-i)) != 0
		}
		return string([]byte{maxByte}) + writeR(bits)
	}
	bits := make([]bool, 36)
	for i := 0; i < 36; i++ {
		bits[i] = n&(1<<uint(35-i)) != 0
	}

	return string([]byte{maxByte, maxByte}) + writeR(bits)
}

// writeR packs bits into bytes of 6, most significant bit first, padding
// the final byte with zero bits.
func writeR(bits []bool) string {
	l := (len(bits) + 5) / 6
	out := make([]byte, l)
	for i := 0; i < l; i++ {
		var cur byte
		for j := 0; j < 6; j++ {
			p := 6*i + j
			if p < len(bits) && bits[p] {
				cur |= 1 << uint(5-j)
			}
		}
		out[i] = minByte + cur
	}

	return string(out)
}
