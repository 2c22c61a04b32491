// Package pkg provides the libraries behind the hanoi solver.
//
// # Overview
//
// Hanoi finds a shortest move sequence between two arbitrary configurations
// of a generalized Tower of Hanoi puzzle: any number of pegs, any number of
// discs, and any legal starting and ending arrangement. The pkg directory is
// organized into these areas:
//
//  1. [hanoi] - Domain logic (configurations, legal moves, breadth-first search)
//  2. [puzzle] - Puzzle and solution formats (token text, JSON, TOML)
//  3. [pipeline] - Orchestration (cache lookup → search → verify → store)
//  4. [cache] - Solution caching (file, Redis, MongoDB)
//  5. [render] - Visualization (peg drawings, search trees)
//
// # Architecture
//
// The typical data flow through hanoi:
//
//	stdin / .txt / .json / .toml
//	         ↓
//	    [puzzle] package (parse and validate)
//	         ↓
//	    [pipeline] package (cache lookup)
//	         ↓
//	    [hanoi] package (breadth-first search)
//	         ↓
//	    move list / JSON / SVG / DOT output
//
// # Quick Start
//
// Solve a puzzle read from the token format:
//
//	p, _ := puzzle.Read(strings.NewReader("3 3 1 1 1 3 3 3"))
//	res, _ := hanoi.Search(ctx, p.Source, p.Target, hanoi.Options{})
//	if res.Found() {
//	    puzzle.WriteMoves(os.Stdout, res.Path())
//	}
//
// With caching and observability hooks:
//
//	runner := pipeline.NewRunner(fileCache, cache.NewDefaultKeyer(), logger)
//	defer runner.Close()
//	res, err := runner.Solve(ctx, p, pipeline.Options{MaxStates: 1_000_000})
//
// # Supporting Packages
//
// [errors] - Coded errors shared by the CLI and the libraries. The code
// decides the exit status and the message shown to users.
//
// [observability] - Hook registry for search and cache events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/hanoi/...              # Specific package
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
package pkg
