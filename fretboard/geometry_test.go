package fretboard

import (
	"testing"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVisible(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsVisible(6, 6, 5))
	assert.True(IsVisible(10, 6, 5))
	assert.False(IsVisible(11, 6, 5))
	assert.False(IsVisible(5, 6, 5))
	assert.True(IsVisible(12, 1, 12))
	assert.False(IsVisible(13, 1, 12))
}

func TestRelativeFretIndex(t *testing.T) {
	assert.Equal(t, 0, RelativeFretIndex(6, 6))
	assert.Equal(t, 4, RelativeFretIndex(10, 6))
}

func TestViewByID(t *testing.T) {
	v, err := ViewByID(2)
	require.NoError(t, err)
	assert.Equal(t, 6, v.StartFret)
	assert.Equal(t, 5, v.FretsVisible)

	_, err = ViewByID(4)
	assert.Error(t, err)
	_, err = ViewByID(-1)
	assert.Error(t, err)
}

func openC() model.Voicing {
	return model.Voicing{Name: "Position 1 (base 1)", BaseFret: 1, Shape: chord.FretsToShape([]int{-1, 3, 2, 0, 1, 0}, 1)}
}

func TestChordDots(t *testing.T) {
	dots := ChordDots(openC(), Views[1])
	require.Len(t, dots, 3)

	assert := assert.New(t)
	assert.Equal(Dot{String: 1, Fret: 3, RelativeIndex: 2, PitchClass: theory.MustPitchClassOf("C")}, dots[0])
	assert.Equal(Dot{String: 2, Fret: 2, RelativeIndex: 1, PitchClass: theory.MustPitchClassOf("E")}, dots[1])
	assert.Equal(Dot{String: 4, Fret: 1, RelativeIndex: 0, PitchClass: theory.MustPitchClassOf("C")}, dots[2])
}

func TestChordDotsOutsideWindow(t *testing.T) {
	assert.Empty(t, ChordDots(openC(), Views[2]))

	barre := model.Voicing{Shape: chord.FretsToShape([]int{1, 3, 3, 2, 1, 1}, 8)}
	dots := ChordDots(barre, Views[2])
	// frets 8,10,10,9,8,8 against window 6-10
	require.Len(t, dots, 6)
	assert.Equal(t, 2, dots[0].RelativeIndex)
	assert.Equal(t, 4, dots[1].RelativeIndex)

	dots = ChordDots(barre, Views[3])
	assert.Empty(t, dots)
}

func TestScaleDots(t *testing.T) {
	minorPent, err := theory.ScaleByName("Minor Pentatonic")
	require.NoError(t, err)
	a := theory.MustPitchClassOf("A")
	view := View{StartFret: 5, FretsVisible: 4}

	dots := ScaleDots(theory.ScalePitchClasses(minorPent, a), a, view)

	// the classic box-one shape, two notes per string
	require.Len(t, dots, 12)
	for _, d := range dots {
		assert.True(t, view.Contains(d.Fret))
		assert.Equal(t, d.Fret-5, d.RelativeIndex)
		assert.Equal(t, d.PitchClass == a, d.IsRoot)
	}
	assert.Equal(t, Dot{String: 0, Fret: 5, RelativeIndex: 0, PitchClass: a, IsRoot: true}, dots[0])
	assert.Equal(t, Dot{String: 0, Fret: 8, RelativeIndex: 3, PitchClass: theory.MustPitchClassOf("C")}, dots[1])
}

func TestStringMarks(t *testing.T) {
	marks := StringMarks(openC())
	assert.Equal(t, [theory.NumStrings]MarkKind{MarkMuted, MarkNone, MarkNone, MarkOpen, MarkNone, MarkOpen}, marks)
}
