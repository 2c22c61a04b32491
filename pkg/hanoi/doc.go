// Package hanoi finds shortest move sequences between configurations of a
// generalized Tower-of-Hanoi puzzle.
//
// # Overview
//
// A puzzle has k pegs and n discs of distinct sizes. Disc i is smaller than
// disc j whenever i < j. A [Configuration] places every disc on exactly one
// peg, and each peg is a stack whose discs strictly decrease in size from the
// bottom to the top.
//
// A [Move] takes the top disc of one peg and places it on another peg whose
// top disc is larger (or which is empty). The set of configurations forms an
// unweighted graph with moves as edges, so a breadth-first search from the
// source yields a minimum-length path to the target.
//
// # Basic Usage
//
// Build the two configurations, run [Search], and reconstruct the path:
//
//	source, _ := hanoi.New([][]int{{2, 1, 0}, {}, {}})
//	target, _ := hanoi.New([][]int{{}, {}, {2, 1, 0}})
//
//	res, err := hanoi.Search(ctx, source, target, hanoi.Options{})
//	if err != nil {
//	    return err
//	}
//	if !res.Found() {
//	    // target is unreachable
//	}
//	for _, m := range res.Path() {
//	    fmt.Println(m) // "1 3", "1 2", ...
//	}
//
// # Immutability
//
// Configurations are never modified after construction. [Configuration.Successors]
// and [Configuration.Apply] return new values that share the unchanged pegs
// with their parent and copy only the two pegs touched by the move. Each
// derived configuration remembers its parent and the move that produced it;
// [Reconstruct] walks that chain back to the source.
//
// # Identity
//
// Equality and [Configuration.Key] depend on peg contents only. Parent links
// and moves are provenance and never affect identity, so two configurations
// reached along different paths are the same search node.
//
// # Concurrency
//
// Configurations are safe for concurrent reads. [Search] itself runs on the
// calling goroutine; the context is consulted once per expanded node so a
// caller can abandon a long search.
package hanoi
