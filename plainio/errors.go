package plainio

import "errors"

// Sentinel errors for plain-format parsing.
var (
	// ErrTruncatedBlock indicates EOF arrived before a block's name line,
	// header line, or all of its edge lines were read.
	ErrTruncatedBlock = errors.New("plainio: truncated block")

	// ErrMalformedHeader indicates the "n m" line did not parse as two
	// integers.
	ErrMalformedHeader = errors.New("plainio: malformed header line")

	// ErrMalformedEdge indicates an edge line did not parse as two integers.
	ErrMalformedEdge = errors.New("plainio: malformed edge line")
)
