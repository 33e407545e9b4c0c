package graph6

import "errors"

// Sentinel errors for graph6 decoding and encoding.
var (
	// ErrEmptyInput indicates an empty graph6 string was given to Decode.
	ErrEmptyInput = errors.New("graph6: empty input")

	// ErrBadByte indicates a byte outside the graph6 printable range [63,126].
	ErrBadByte = errors.New("graph6: byte outside valid range")

	// ErrTruncated indicates the input ended before the declared vertex count
	// or adjacency data was fully read.
	ErrTruncated = errors.New("graph6: truncated input")

	// ErrTrailingData indicates bytes remained after a complete graph6 record
	// was decoded.
	ErrTrailingData = errors.New("graph6: trailing data after graph")

	// ErrNotSimple indicates Encode was asked to encode a graph with a
	// parallel edge or self-loop; graph6 cannot represent multigraphs.
	ErrNotSimple = errors.New("graph6: graph must be simple to encode")

	// ErrNegativeSize indicates Encode/Decode encountered a negative or
	// otherwise invalid vertex count.
	ErrNegativeSize = errors.New("graph6: vertex count must be non-negative")
)
