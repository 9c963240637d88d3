package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/util"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	fretMuted = -1
	fretOpen  = 0
)

// suffix -> label used in the display name; unlisted suffixes are used as is
var suffixLabels = map[string]string{
	"major":     "",
	"minor":     "m",
	"dominant7": "7",
	"major7":    "maj7",
	"minor7":    "m7",
	"sus2":      "sus2",
	"sus4":      "sus4",
}

// Library is the flattened chord database, sorted by display name. It is
// never mutated after BuildLibrary returns and can be shared freely.
type Library struct {
	chords []model.Chord
}

func Name(key, suffix string) string {
	label, ok := suffixLabels[suffix]
	if !ok {
		label = suffix
	}
	return key + label
}

// FretsToShape converts a raw fret array, relative to baseFret, into
// absolute fret positions plus open and muted strings.
func FretsToShape(frets []int, baseFret int) model.Shape {
	offset := util.Max(0, baseFret-1)
	shape := model.Shape{
		Positions:    []model.FretPosition{},
		OpenStrings:  []int{},
		MutedStrings: []int{},
	}
	for s := 0; s < theory.NumStrings && s < len(frets); s++ {
		switch f := frets[s]; {
		case f == fretMuted:
			shape.MutedStrings = append(shape.MutedStrings, s)
		case f == fretOpen:
			shape.OpenStrings = append(shape.OpenStrings, s)
		default:
			shape.Positions = append(shape.Positions, model.FretPosition{String: s, Fret: offset + f})
		}
	}
	return shape
}

func voicingName(idx int, baseFret int, barres int) string {
	if barres > 0 {
		return fmt.Sprintf("Position %d (base %d, barre)", idx+1, baseFret)
	}
	return fmt.Sprintf("Position %d (base %d)", idx+1, baseFret)
}

func toVoicings(positions []model.RawPosition) []model.Voicing {
	res := make([]model.Voicing, 0, len(positions))
	for i, pos := range positions {
		baseFret := pos.BaseFret
		if baseFret == 0 {
			baseFret = 1
		}
		res = append(res, model.Voicing{
			Name:     voicingName(i, baseFret, len(pos.Barres)),
			BaseFret: baseFret,
			Shape:    FretsToShape(pos.Frets, baseFret),
		})
	}
	return res
}

// BuildLibrary flattens db into a single list of chords ordered by name.
// Chords that share a name keep their order from db.
func BuildLibrary(db model.ChordsDB) Library {
	var chords []model.Chord
	for _, kc := range db.Chords {
		for _, entry := range kc.Entries {
			chords = append(chords, model.Chord{
				Name:     Name(entry.Key, entry.Suffix),
				Key:      entry.Key,
				Type:     entry.Suffix,
				Voicings: toVoicings(entry.Positions),
			})
		}
	}

	c := collate.New(language.English)
	sort.SliceStable(chords, func(i, j int) bool {
		return c.CompareString(chords[i].Name, chords[j].Name) < 0
	})

	return Library{chords: chords}
}

func NewLibrary(chords []model.Chord) Library {
	return Library{chords: append([]model.Chord(nil), chords...)}
}

func (l Library) Len() int {
	return len(l.chords)
}

func (l Library) At(i int) model.Chord {
	return l.chords[i]
}

// Chords returns a copy of the chord list.
func (l Library) Chords() []model.Chord {
	return append([]model.Chord(nil), l.chords...)
}

func (l Library) Find(name string) (model.Chord, bool) {
	for _, c := range l.chords {
		if c.Name == name {
			return c, true
		}
	}
	return model.Chord{}, false
}

// Filter returns the chords f allows, in library order.
func (l Library) Filter(f KeyFilter) []model.Chord {
	if f.IsAny() {
		return l.Chords()
	}
	var res []model.Chord
	for _, c := range l.chords {
		if f.Allows(c) {
			res = append(res, c)
		}
	}
	return res
}
