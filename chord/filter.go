package chord

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

const AnyKeyName = "Any"

// expected chord qualities per scale degree of a major key
var (
	majorTriadQualities   = [7]string{"major", "minor", "minor", "major", "major", "minor", "diminished"}
	majorSeventhQualities = [7]string{"major7", "minor7", "minor7", "major7", "dominant7", "minor7", "half-diminished"}
)

var typeAliases = map[string]string{
	"maj":  "major",
	"min":  "minor",
	"min7": "minor7",
	"maj7": "major7",
}

// KeyFilter either passes every chord or restricts to one major key.
// The zero value passes every chord.
type KeyFilter struct {
	root  theory.PitchClass
	keyed bool
}

func AnyKey() KeyFilter {
	return KeyFilter{}
}

func InKey(root theory.PitchClass) KeyFilter {
	return KeyFilter{root: root, keyed: true}
}

// ParseKeyFilter accepts "Any" (or "") or one of the canonical note names.
func ParseKeyFilter(s string) (KeyFilter, error) {
	if s == "" || s == AnyKeyName {
		return AnyKey(), nil
	}
	pc, err := theory.PitchClassOf(s)
	if err != nil {
		return KeyFilter{}, err
	}
	return InKey(pc), nil
}

func (f KeyFilter) IsAny() bool {
	return !f.keyed
}

func (f KeyFilter) Root() (theory.PitchClass, bool) {
	return f.root, f.keyed
}

func (f KeyFilter) String() string {
	if !f.keyed {
		return AnyKeyName
	}
	return f.root.String()
}

func (f KeyFilter) Allows(c model.Chord) bool {
	if !f.keyed {
		return true
	}
	return IsChordInMajorKey(c, f.root)
}

func normalizeType(t string) string {
	if n, ok := typeAliases[t]; ok {
		return n
	}
	return t
}

func degreeOf(key string, root theory.PitchClass) int {
	for i, step := range theory.MajorIntervals {
		if theory.Transpose(root, step).String() == key {
			return i
		}
	}
	return -1
}

// IsChordInMajorKey reports whether c is a diatonic triad or seventh chord
// of the major key on root. Only the quality tables above are recognized;
// extended and altered chords never match.
func IsChordInMajorKey(c model.Chord, root theory.PitchClass) bool {
	idx := degreeOf(c.Key, root)
	if idx == -1 {
		return false
	}
	t := normalizeType(c.Type)
	return t == majorTriadQualities[idx] || t == majorSeventhQualities[idx]
}
