package fretboard

import (
	"fmt"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

// View is a window of consecutive frets starting at StartFret.
type View struct {
	ID           int    `json:"id"`
	Label        string `json:"label"`
	StartFret    int    `json:"startFret"`
	FretsVisible int    `json:"fretsVisible"`
}

var Views = []View{
	{ID: 0, Label: "Full", StartFret: 1, FretsVisible: 12},
	{ID: 1, Label: "1–5", StartFret: 1, FretsVisible: 5},
	{ID: 2, Label: "6–10", StartFret: 6, FretsVisible: 5},
	{ID: 3, Label: "11–15", StartFret: 11, FretsVisible: 5},
}

func ViewByID(id int) (View, error) {
	if id < 0 || id >= len(Views) {
		return View{}, fmt.Errorf("unknown view %d", id)
	}
	return Views[id], nil
}

func (v View) Contains(fret int) bool {
	return IsVisible(fret, v.StartFret, v.FretsVisible)
}

// IsVisible reports whether an absolute fret falls in the window
// [startFret, startFret+fretsVisible).
func IsVisible(fret, startFret, fretsVisible int) bool {
	rel := RelativeFretIndex(fret, startFret)
	return rel >= 0 && rel < fretsVisible
}

// RelativeFretIndex is the column of fret inside a window starting at
// startFret. Only meaningful when IsVisible holds.
func RelativeFretIndex(fret, startFret int) int {
	return fret - startFret
}

// Dot is a note drawn inside the fret window.
type Dot struct {
	String        int
	Fret          int
	RelativeIndex int
	PitchClass    theory.PitchClass
	IsRoot        bool
}

// ChordDots returns the fretted notes of v that fall inside view, in
// voicing order. Notes outside the window are dropped.
func ChordDots(v model.Voicing, view View) []Dot {
	var res []Dot
	for _, p := range v.Positions {
		if !view.Contains(p.Fret) {
			continue
		}
		res = append(res, Dot{
			String:        p.String,
			Fret:          p.Fret,
			RelativeIndex: RelativeFretIndex(p.Fret, view.StartFret),
			PitchClass:    theory.NoteAtFret(theory.StandardTuning[p.String], p.Fret),
		})
	}
	return res
}

// ScaleDots scans every string across the window and keeps the frets whose
// pitch class is in set. Ordered by string, then fret.
func ScaleDots(set theory.PitchClassSet, root theory.PitchClass, view View) []Dot {
	var res []Dot
	for s := 0; s < theory.NumStrings; s++ {
		for i := 0; i < view.FretsVisible; i++ {
			fret := view.StartFret + i
			pc := theory.NoteAtFret(theory.StandardTuning[s], fret)
			if !set.Has(pc) || !view.Contains(fret) {
				continue
			}
			res = append(res, Dot{
				String:        s,
				Fret:          fret,
				RelativeIndex: RelativeFretIndex(fret, view.StartFret),
				PitchClass:    pc,
				IsRoot:        pc == root,
			})
		}
	}
	return res
}

type MarkKind int

const (
	MarkNone MarkKind = iota
	MarkOpen
	MarkMuted
)

// StringMarks gives the open/muted indicator for each string of v.
func StringMarks(v model.Voicing) [theory.NumStrings]MarkKind {
	var marks [theory.NumStrings]MarkKind
	for _, s := range v.OpenStrings {
		if s >= 0 && s < theory.NumStrings {
			marks[s] = MarkOpen
		}
	}
	for _, s := range v.MutedStrings {
		if s >= 0 && s < theory.NumStrings {
			marks[s] = MarkMuted
		}
	}
	return marks
}

// Diagram is everything needed to draw one fretboard.
type Diagram struct {
	View View
	Dots []Dot
	// nil in scale mode
	Marks *[theory.NumStrings]MarkKind
}

func NewChordDiagram(v model.Voicing, view View) Diagram {
	marks := StringMarks(v)
	return Diagram{View: view, Dots: ChordDots(v, view), Marks: &marks}
}

func NewScaleDiagram(scale theory.Scale, root theory.PitchClass, view View) Diagram {
	return Diagram{View: view, Dots: ScaleDots(theory.ScalePitchClasses(scale, root), root, view)}
}
