// Package puzzle reads and writes Tower-of-Hanoi puzzles and their solutions.
//
// # Token Format
//
// The plain format is a whitespace-separated stream of integers:
//
//	n k
//	p(0) p(1) ... p(n-1)    source: 1-based peg of each disc
//	p(0) p(1) ... p(n-1)    target: 1-based peg of each disc
//
// Disc i is smaller than disc j when i < j. Discs sharing a peg are stacked
// largest first, so every parsed configuration satisfies the size rule.
// Use [Read] to parse it and [WriteText] to produce it.
//
// # Documents
//
// JSON and TOML documents list each peg bottom-to-top:
//
//	{"pegs": 3, "source": [[2, 1, 0], [], []], "target": [[], [], [2, 1, 0]]}
//
//	pegs = 3
//	source = [[2, 1, 0], [], []]
//	target = [[], [], [2, 1, 0]]
//
// "pegs" may be omitted when the stack lists already have the full length;
// shorter lists are padded with empty pegs. See [ReadJSON] and [ReadTOML].
// [Load] and [Save] pick a format from the file extension.
//
// # Solutions
//
// [WriteMoves] prints a move count followed by one "from to" line per move,
// with 1-based pegs. [Solution] is the JSON form used for machine output
// and for caching.
package puzzle
