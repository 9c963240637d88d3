package fretboard

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/theory"
)

const (
	boardHeight    = 220
	paddingTop     = 30
	paddingBottom  = 50
	indicatorWidth = 30
	indicatorGap   = 6

	colorBoard  = "#111"
	colorString = "#ccc"
	colorFret   = "#eee"
	colorAccent = "#4da3ff"
	colorNote   = "#e57373"
	fontFamily  = "'Inter', system-ui, sans-serif"
)

type geometry struct {
	width         float64
	stringSpacing float64
	fretSpacing   float64
}

func newGeometry(v View) geometry {
	width := 600.0
	if v.FretsVisible == 12 {
		width = 900
	}
	return geometry{
		width:         width,
		stringSpacing: float64(boardHeight-paddingTop-paddingBottom) / float64(theory.NumStrings-1),
		fretSpacing:   (width - paddingTop*2) / float64(v.FretsVisible),
	}
}

// string 0 (low E) is drawn at the bottom
func (g geometry) stringY(s int) float64 {
	return paddingTop + float64(theory.NumStrings-1-s)*g.stringSpacing
}

func (g geometry) columnX(rel int) float64 {
	return paddingTop + g.fretSpacing*(float64(rel)+0.5)
}

// svgWriter remembers the first write error so drawing code stays linear.
type svgWriter struct {
	w   io.Writer
	err error
}

func (sw *svgWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

// RenderSVG draws d as a standalone SVG document.
func RenderSVG(w io.Writer, d Diagram) error {
	if d.View.FretsVisible <= 0 {
		return fmt.Errorf("view %q has no visible frets", d.View.Label)
	}
	g := newGeometry(d.View)
	total := g.width + indicatorGap + indicatorWidth
	sw := &svgWriter{w: w}

	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%d" viewBox="0 0 %g %d">`+"\n",
		total, boardHeight, total, boardHeight)
	sw.printf(`<rect x="0" y="0" width="%g" height="%d" rx="14" fill="%s"/>`+"\n", g.width, boardHeight, colorBoard)

	for s := 0; s < theory.NumStrings; s++ {
		y := g.stringY(s)
		sw.printf(`<line x1="%d" x2="%g" y1="%g" y2="%g" stroke="%s"/>`+"\n", paddingTop, g.width-paddingTop, y, y, colorString)
	}
	for i := 0; i <= d.View.FretsVisible; i++ {
		x := paddingTop + float64(i)*g.fretSpacing
		sw.printf(`<line x1="%g" x2="%g" y1="%d" y2="%d" stroke="%s"/>`+"\n", x, x, paddingTop, boardHeight-paddingBottom, colorFret)
	}
	for i := 0; i < d.View.FretsVisible; i++ {
		sw.printf(`<text x="%g" y="%d" fill="%s" text-anchor="middle" font-size="12" font-family="%s" font-weight="500">%d</text>`+"\n",
			g.columnX(i), boardHeight-paddingBottom+18, colorAccent, fontFamily, d.View.StartFret+i)
	}

	for _, dot := range d.Dots {
		r, fill := 8, colorNote
		if d.Marks == nil && !dot.IsRoot {
			r = 6
		}
		if dot.IsRoot {
			fill = colorAccent
		}
		sw.printf(`<circle cx="%g" cy="%g" r="%d" fill="%s" opacity="0.95"/>`+"\n", g.columnX(dot.RelativeIndex), g.stringY(dot.String), r, fill)
	}

	if d.Marks != nil {
		cx := g.width + indicatorGap + indicatorWidth/2
		for s, mark := range d.Marks {
			y := g.stringY(s)
			switch mark {
			case MarkOpen:
				sw.printf(`<circle cx="%g" cy="%g" r="6" stroke="%s" fill="none" stroke-width="2"/>`+"\n", cx, y, colorAccent)
			case MarkMuted:
				sw.printf(`<text x="%g" y="%g" text-anchor="middle" dominant-baseline="middle" fill="%s" font-size="13" font-family="%s" font-weight="600">X</text>`+"\n",
					cx, y, colorAccent, fontFamily)
			}
		}
	}

	sw.printf("</svg>\n")
	return sw.err
}
