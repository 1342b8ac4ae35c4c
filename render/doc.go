// Package render draws the one-edit-apart graph of a solved word list.
//
// ToDOT produces Graphviz DOT text: one node per input word, one
// undirected edge per adjacent pair, and the chain (if any) drawn bold with
// its steps numbered. SVG renders DOT through the embedded Graphviz build
// of github.com/goccy/go-graphviz, so no system Graphviz install is needed.
package render
