// Package dgon computes the divisorial gonality of finite undirected
// multigraphs by brute-force search over chip configurations, built on
// Dhar's burning algorithm and v-reduced divisors, and uses the result to
// test the subdivision conjecture and the Brill-Noether conjecture.
//
// Layout:
//
//	graph/        - the graph model: integer-indexed multigraphs
//	divisor/      - divisors (chip configurations) and firing
//	burn/         - Dhar's burning algorithm
//	reduce/       - v-reduction and positive-rank testing
//	search/       - brute-force gonality search
//	graph6/       - nauty/gtools graph6 codec
//	plainio/      - the plain text graph format
//	subdivision/  - k-regular edge subdivision
//	indepset/     - Boppana-Halldorsson independent set approximation
//	cmd/          - command-line tools built on the above
//
// The packages are layered bottom-up: graph has no internal dependencies,
// divisor depends only on graph, burn depends on graph and divisor, reduce depends on burn,
// and search depends on reduce. graph6, plainio, subdivision, and indepset
// are collaborators consumed by the cmd/ binaries alongside search.
package dgon
