// Package nodelink renders explored search trees as node-link diagrams.
//
// # Overview
//
// A [Recorder] collects every configuration a search dequeues, in visit
// order. Because breadth-first search dequeues a configuration only after
// its parent, each recorded node links back to a node already in the tree.
// The resulting [Tree] is converted to Graphviz DOT by [ToDOT] and rendered
// in-process by [RenderSVG].
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the depth and the move that led there
//   - MaxNodes: drop nodes beyond this many (0 keeps all)
//
// Nodes on the path marked with [Recorder.MarkPath] are filled and joined
// by bold edges.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
