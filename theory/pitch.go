package theory

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretdex/util"
)

var (
	ErrInvalidNote       = errors.New("invalid note")
	ErrInvalidPitchClass = errors.New("invalid pitch class")
)

// PitchClass is a note name independent of octave, 0 (C) through 11 (B).
type PitchClass int

const NumPitchClasses = 12

var noteNames = [NumPitchClasses]string{
	"C", "C#", "D", "Eb", "E", "F",
	"F#", "G", "Ab", "A", "Bb", "B",
}

var pitchClassByName = func() map[string]PitchClass {
	m := make(map[string]PitchClass, NumPitchClasses)
	for i, name := range noteNames {
		m[name] = PitchClass(i)
	}
	return m
}()

// NoteNames returns the canonical spellings in pitch-class order.
func NoteNames() []string {
	res := make([]string, NumPitchClasses)
	copy(res, noteNames[:])
	return res
}

func PitchClassOf(name string) (PitchClass, error) {
	pc, ok := pitchClassByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	return pc, nil
}

// MustPitchClassOf is for constant tables; a bad name there is a bug.
func MustPitchClassOf(name string) PitchClass {
	pc, err := PitchClassOf(name)
	if err != nil {
		panic(err)
	}
	return pc
}

func NameOf(pc PitchClass) (string, error) {
	if !pc.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidPitchClass, int(pc))
	}
	return noteNames[pc], nil
}

func (pc PitchClass) Valid() bool {
	return pc >= 0 && pc < NumPitchClasses
}

func (pc PitchClass) String() string {
	name, err := NameOf(pc)
	if err != nil {
		return fmt.Sprintf("PitchClass(%d)", int(pc))
	}
	return name
}

// Transpose moves root by interval semitones, wrapping into [0,11] for
// intervals of either sign.
func Transpose(root PitchClass, interval int) PitchClass {
	return PitchClass(util.Mod(int(root)+interval, NumPitchClasses))
}

// NoteAtFret is the pitch class sounded by a string tuned to open when
// stopped at the given absolute fret.
func NoteAtFret(open PitchClass, fret int) PitchClass {
	return Transpose(open, fret)
}
