// Package session holds the transient browsing state of one user: which
// mode is shown, the key, and carousel positions. Nothing here is persisted.
package session

import (
	"fmt"
	"math/rand"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/util"
)

// defaultScaleRoot is used when Scales mode is entered with no key selected.
var defaultScaleRoot = theory.MustPitchClassOf("C")

type Session struct {
	library chord.Library
	rng     *rand.Rand

	mode         model.Mode
	key          chord.KeyFilter
	chordIndex   int
	voicingIndex int
	scaleIndex   int
	viewIndex    int

	// recomputed whenever key changes
	filtered []model.Chord
}

// New starts in Chords mode, any key, full-neck view.
func New(library chord.Library, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Session{
		library: library,
		rng:     rng,
		mode:    model.ModeChords,
		key:     chord.AnyKey(),
	}
	s.refilter()
	return s
}

func (s *Session) refilter() {
	s.filtered = s.library.Filter(s.key)
}

func (s *Session) Mode() model.Mode {
	return s.mode
}

func (s *Session) Key() chord.KeyFilter {
	return s.key
}

func (s *Session) View() fretboard.View {
	return fretboard.Views[s.viewIndex]
}

func (s *Session) Filtered() []model.Chord {
	return s.filtered
}

func (s *Session) SetMode(m model.Mode) {
	s.mode = m
	if m == model.ModeScales && s.key.IsAny() {
		s.key = chord.InKey(defaultScaleRoot)
		s.refilter()
	}
}

// SetKey changes the key. In Chords mode the carousel restarts; in Scales
// mode the scale is just transposed. "Any" is rejected in Scales mode.
func (s *Session) SetKey(k chord.KeyFilter) error {
	if s.mode == model.ModeScales && k.IsAny() {
		return fmt.Errorf("scales need a key")
	}
	s.key = k
	s.refilter()
	if s.mode == model.ModeChords {
		s.chordIndex = 0
		s.voicingIndex = 0
	}
	return nil
}

// StepKey moves through the key choices, including "Any" in Chords mode.
func (s *Session) StepKey(delta int) {
	choices := []chord.KeyFilter{}
	if s.mode == model.ModeChords {
		choices = append(choices, chord.AnyKey())
	}
	for pc := theory.PitchClass(0); pc < theory.NumPitchClasses; pc++ {
		choices = append(choices, chord.InKey(pc))
	}
	cur := 0
	for i, c := range choices {
		if c == s.key {
			cur = i
		}
	}
	_ = s.SetKey(choices[util.Wrap(cur, delta, len(choices))])
}

func (s *Session) SetView(idx int) error {
	if _, err := fretboard.ViewByID(idx); err != nil {
		return err
	}
	s.viewIndex = idx
	return nil
}

func (s *Session) ChordIndex() int {
	return util.Clamp(s.chordIndex, len(s.filtered))
}

// Chord is the current chord, false when the filter leaves nothing.
func (s *Session) Chord() (model.Chord, bool) {
	if len(s.filtered) == 0 {
		return model.Chord{}, false
	}
	return s.filtered[s.ChordIndex()], true
}

func (s *Session) VoicingIndex() int {
	c, ok := s.Chord()
	if !ok {
		return 0
	}
	return util.Clamp(s.voicingIndex, len(c.Voicings))
}

func (s *Session) Voicing() (model.Voicing, bool) {
	c, ok := s.Chord()
	if !ok || len(c.Voicings) == 0 {
		return model.Voicing{}, false
	}
	return c.Voicings[s.VoicingIndex()], true
}

func (s *Session) ScaleIndex() int {
	return s.scaleIndex
}

func (s *Session) Scale() theory.Scale {
	return theory.Scales[s.scaleIndex]
}

// ScaleRoot falls back to C when no key is selected.
func (s *Session) ScaleRoot() theory.PitchClass {
	if root, ok := s.key.Root(); ok {
		return root
	}
	return defaultScaleRoot
}

func (s *Session) step(delta int) {
	if s.mode == model.ModeScales {
		s.scaleIndex = util.Wrap(s.scaleIndex, delta, len(theory.Scales))
		return
	}
	if len(s.filtered) == 0 {
		return
	}
	s.chordIndex = util.Wrap(s.ChordIndex(), delta, len(s.filtered))
	s.voicingIndex = 0
}

func (s *Session) Next() {
	s.step(1)
}

func (s *Session) Prev() {
	s.step(-1)
}

// Random jumps to a different scale or chord. The voicing index is kept
// and clamped on read.
func (s *Session) Random() {
	if s.mode == model.ModeScales {
		s.scaleIndex = s.pickOther(s.scaleIndex, len(theory.Scales))
		return
	}
	s.chordIndex = s.pickOther(s.ChordIndex(), len(s.filtered))
}

func (s *Session) pickOther(cur, n int) int {
	if n <= 1 {
		return cur
	}
	r := cur
	for r == cur {
		r = s.rng.Intn(n)
	}
	return r
}

func (s *Session) stepVoicing(delta int) {
	if s.mode != model.ModeChords {
		return
	}
	c, ok := s.Chord()
	if !ok || len(c.Voicings) == 0 {
		return
	}
	s.voicingIndex = util.Wrap(s.VoicingIndex(), delta, len(c.Voicings))
}

func (s *Session) VoicingUp() {
	s.stepVoicing(1)
}

func (s *Session) VoicingDown() {
	s.stepVoicing(-1)
}

func (s *Session) SelectVoicing(idx int) error {
	c, ok := s.Chord()
	if !ok || idx < 0 || idx >= len(c.Voicings) {
		return fmt.Errorf("no voicing %d", idx)
	}
	s.voicingIndex = idx
	return nil
}

// Title is the carousel caption.
func (s *Session) Title() string {
	if s.mode == model.ModeScales {
		return s.Scale().Name
	}
	if c, ok := s.Chord(); ok {
		return c.Name
	}
	return "—"
}

// Status is the info line shown under the fretboard.
func (s *Session) Status() string {
	if s.mode == model.ModeScales {
		return fmt.Sprintf("Scale %d/%d • Key %s", s.scaleIndex+1, len(theory.Scales), s.ScaleRoot())
	}
	c, ok := s.Chord()
	if !ok {
		return "0 chords"
	}
	return fmt.Sprintf("Chord %d/%d • Voicing %d/%d",
		s.ChordIndex()+1, len(s.filtered), s.VoicingIndex()+1, len(c.Voicings))
}

// Diagram is the fretboard for the current selection, false when there is
// nothing to draw.
func (s *Session) Diagram() (fretboard.Diagram, bool) {
	if s.mode == model.ModeScales {
		return fretboard.NewScaleDiagram(s.Scale(), s.ScaleRoot(), s.View()), true
	}
	v, ok := s.Voicing()
	if !ok {
		return fretboard.Diagram{}, false
	}
	return fretboard.NewChordDiagram(v, s.View()), true
}
