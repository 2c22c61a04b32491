package pegs

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// palette colors discs by size, cycling for tall stacks.
var palette = []lipgloss.Color{"#e03131", "#f08c00", "#2f9e44", "#1971c2", "#7048e8", "#c2255c"}

var (
	poleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#868e96"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// TextOptions configures [Text].
type TextOptions struct {
	// Color styles discs, poles and labels.
	Color bool

	// Highlight marks a 1-based peg with a caret under its label; 0 for none.
	Highlight int
}

// Text draws c with every disc d as a bar 2d+3 cells wide, stacked on
// 1-based peg labels. Each peg column is as wide as the largest disc.
func Text(c *hanoi.Configuration, opts TextOptions) string {
	n := c.Discs()
	width := 2*n + 1

	cols := make([]string, c.Pegs())
	for i := range cols {
		cols[i] = column(c.Peg(i), i, n, width, opts)
	}
	joined := make([]string, 0, 2*len(cols)-1)
	for i, col := range cols {
		if i > 0 {
			joined = append(joined, " ")
		}
		joined = append(joined, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, joined...)
}

func column(peg []int, index, n, width int, opts TextOptions) string {
	rows := make([]string, 0, n+4)
	for level := n; level >= 0; level-- {
		if level < len(peg) {
			d := peg[level]
			bar := strings.Repeat("=", 2*d+3)
			if opts.Color {
				bar = lipgloss.NewStyle().Foreground(palette[d%len(palette)]).Render(bar)
			}
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
			continue
		}
		pole := "|"
		if opts.Color {
			pole = poleStyle.Render(pole)
		}
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, pole))
	}

	rows = append(rows, strings.Repeat("─", width))
	label := strconv.Itoa(index + 1)
	if opts.Color {
		label = labelStyle.Render(label)
	}
	rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, label))
	if opts.Highlight == index+1 {
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, "^"))
	} else if opts.Highlight > 0 {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return strings.Join(rows, "\n")
}
