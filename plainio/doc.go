// Package plainio reads and writes the human-readable "plain" graph format:
// any number of blocks of
//
//	<graph name>
//	<n> <m>
//	<v0> <w0>
//	...
//	<v(m-1)> <w(m-1)>
//
// Blank lines between blocks are ignored. Unlike graph6, the plain format
// allows parallel edges, which is why find_gonality and convert_to_graph6
// read it directly instead of going through graph6.
//
// Mirrors original_source/graph_io.h.
package plainio
