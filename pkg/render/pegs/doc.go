// Package pegs draws configurations.
//
// [Text] produces a terminal drawing, optionally colored with lipgloss:
//
//	  |     |     |
//	 ===    |     |
//	=====   |     |
//	───── ───── ─────
//	  1     2     3
//
// [SVG] renders one or more titled configurations side by side as a
// standalone SVG document, used by "hanoi show --svg".
package pegs
