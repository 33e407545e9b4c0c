// Package search implements the structured enumeration of candidate
// divisors and the outer gonality loop: FindGonality, FindPositiveRankDivisor,
// and FindAllPositiveRankV0ReducedDivisors.
//
// The search restricts itself to divisors that are v0-reduced and carry at
// least one chip on v0 — sound because every linear-equivalence class of
// positive-rank divisors on a connected graph contains a unique v0-reduced
// representative, and that representative necessarily has D[0] >= 1 (a
// v0-reduced divisor with D[0] == 0 could never be effective after firing
// away debt elsewhere without first borrowing from v0). FindGonality rejects
// disconnected graphs rather than silently broadening the search, since the
// argument above depends on the whole graph being reachable from v0;
// FindPositiveRankDivisor and FindAllPositiveRankV0ReducedDivisors do not
// check connectivity.
package search
