package fretboard

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/theory"
)

const cellWidth = 4

// TextStyle decorates the cells of a text diagram. Zero fields leave text
// unchanged.
type TextStyle struct {
	Note  func(string) string
	Root  func(string) string
	Mark  func(string) string
	Label func(string) string
}

func apply(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// RenderText draws d as a monospace grid, high E on top, with open/muted
// marks on the right in chord mode.
func RenderText(d Diagram, style TextStyle) string {
	var b strings.Builder
	cells := make(map[[2]int]Dot, len(d.Dots))
	for _, dot := range d.Dots {
		cells[[2]int{dot.String, dot.RelativeIndex}] = dot
	}

	for s := theory.NumStrings - 1; s >= 0; s-- {
		b.WriteString(fmt.Sprintf("%-2s|", theory.StandardTuning[s].String()))
		for i := 0; i < d.View.FretsVisible; i++ {
			dot, ok := cells[[2]int{s, i}]
			if !ok {
				b.WriteString(strings.Repeat("-", cellWidth-1) + "|")
				continue
			}
			glyph := "o"
			if d.Marks == nil {
				glyph = dot.PitchClass.String()
			}
			cell := fmt.Sprintf("%-*s", cellWidth-1, "-"+glyph)
			cell = strings.ReplaceAll(cell, " ", "-")
			if dot.IsRoot {
				cell = apply(style.Root, cell)
			} else {
				cell = apply(style.Note, cell)
			}
			b.WriteString(cell + "|")
		}
		if d.Marks != nil {
			switch d.Marks[s] {
			case MarkOpen:
				b.WriteString(" " + apply(style.Mark, "o"))
			case MarkMuted:
				b.WriteString(" " + apply(style.Mark, "x"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("   ")
	for i := 0; i < d.View.FretsVisible; i++ {
		b.WriteString(apply(style.Label, fmt.Sprintf("%-*d", cellWidth, d.View.StartFret+i)))
	}
	b.WriteString("\n")
	return b.String()
}
