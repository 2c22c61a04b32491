// Package render groups the visual outputs of the solver.
//
// # Search Trees
//
// The [nodelink] subpackage records the configurations a breadth-first
// search dequeues and draws them as a Graphviz tree, one rank per depth,
// with the shortest path highlighted:
//
//	rec := nodelink.NewRecorder()
//	res, err := hanoi.Search(ctx, src, dst, hanoi.Options{OnVisit: rec.Visit})
//	rec.MarkPath(res.Target)
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(rec.Tree(), nodelink.Options{}))
//
// # Peg Drawings
//
// The [pegs] subpackage draws single configurations, either as styled
// terminal text or as standalone SVG.
//
// [nodelink]: github.com/matzehuels/hanoi/pkg/render/nodelink
// [pegs]: github.com/matzehuels/hanoi/pkg/render/pegs
package render
