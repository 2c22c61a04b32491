package pegs

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Frame is one titled configuration in an SVG drawing.
type Frame struct {
	Title  string
	Config *hanoi.Configuration
}

// SVGOption configures [SVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	unit       float64 // horizontal size step between discs
	discHeight float64
	gap        float64
}

// WithUnit sets the width step between consecutive disc sizes.
func WithUnit(u float64) SVGOption { return func(r *svgRenderer) { r.unit = u } }

// WithDiscHeight sets the height of a single disc.
func WithDiscHeight(h float64) SVGOption { return func(r *svgRenderer) { r.discHeight = h } }

const (
	titleHeight = 28.0
	baseHeight  = 6.0
	margin      = 16.0
)

// SVG draws the frames left to right. All frames should share a shape;
// the panel size is taken from the largest.
func SVG(frames []Frame, opts ...SVGOption) []byte {
	r := svgRenderer{unit: 8, discHeight: 14, gap: 32}
	for _, opt := range opts {
		opt(&r)
	}

	n, k := 0, 0
	for _, f := range frames {
		n = max(n, f.Config.Discs())
		k = max(k, f.Config.Pegs())
	}
	colWidth := r.unit * float64(2*n+5)
	panelWidth := colWidth * float64(k)
	panelHeight := titleHeight + r.discHeight*float64(n+2) + baseHeight

	width := 2*margin + panelWidth*float64(len(frames)) + r.gap*float64(max(len(frames)-1, 0))
	height := 2*margin + panelHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <style>text { font-family: monospace; font-size: 14px; }</style>` + "\n")

	for i, f := range frames {
		x := margin + float64(i)*(panelWidth+r.gap)
		r.renderFrame(&buf, f, x, margin, colWidth, n)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderFrame(buf *bytes.Buffer, f Frame, x, y, colWidth float64, n int) {
	c := f.Config
	panelWidth := colWidth * float64(c.Pegs())
	fmt.Fprintf(buf, `  <g class="frame">`+"\n")
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n",
		x+panelWidth/2, y+titleHeight/2+5, html.EscapeString(f.Title))

	baseY := y + titleHeight + r.discHeight*float64(n+2)
	poleTop := y + titleHeight + r.discHeight/2
	for p := 0; p < c.Pegs(); p++ {
		cx := x + colWidth*(float64(p)+0.5)
		fmt.Fprintf(buf, `    <rect class="pole" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#868e96"/>`+"\n",
			cx-2, poleTop, 4.0, baseY-poleTop)
		fmt.Fprintf(buf, `    <rect class="base" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#495057"/>`+"\n",
			cx-colWidth/2+2, baseY, colWidth-4, baseHeight)

		for level, d := range c.Peg(p) {
			w := r.unit * float64(2*d+3)
			top := baseY - r.discHeight*float64(level+1)
			fmt.Fprintf(buf, `    <rect class="disc" data-disc="%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s" stroke="#212529"/>`+"\n",
				d, cx-w/2, top, w, r.discHeight-1, discColor(d, n))
		}
	}
	buf.WriteString("  </g>\n")
}

// discColor spreads hues evenly over the disc sizes.
func discColor(d, n int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 55%%)", 360*d/max(n, 1))
}
