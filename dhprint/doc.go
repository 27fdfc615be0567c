// Package dhprint renders matrices, links and chain state as text.
//
// Output follows the classic console layout of D-H tools: a label line, then
// one line per matrix row with the cells tab-separated. By default the
// cells are right-aligned into columns with text/tabwriter; WithPlain emits
// the raw tab-separated form for piping into other tools.
//
// The package reads chains only through their exported accessors, so printing
// never changes kinematic state.
package dhprint
