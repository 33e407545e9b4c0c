package subdivision

import "errors"

// Sentinel errors for Subdivide.
var (
	// ErrPartsPerEdgeOutOfRange indicates k fell outside [2, MaxPartsPerEdge].
	ErrPartsPerEdgeOutOfRange = errors.New("subdivision: parts-per-edge out of range")
)

// MaxPartsPerEdge bounds k in Subdivide, mirroring subdivisions.h's
// MAX_PARTS_PER_EDGE compile-time constant.
const MaxPartsPerEdge = 10
