// Package textio reads and writes the whitespace-delimited road file used by
// weatherpath, and generates the bundled South American sample.
//
// File format, one road per line:
//
//	<from> <to> <normal> <rain> <snow> <storm>
//
// Empty lines are ignored. A weight of "inf" marks a regime in which the road
// is closed; it is written by Save for roads that were opened one regime at a
// time.
//
// Load is forgiving: a malformed line is logged through the configured zap
// logger, recorded in the Report, and skipped. That covers a wrong field count,
// an unparsable number, an invalid name, a negative weight, a self-loop, a road
// closed in every regime and a line over MaxLineBytes. Only reader failures
// abort a load.
package textio
