package theory

import "strings"

// PitchClassSet is a set of pitch classes stored as a 12-bit mask.
type PitchClassSet uint16

func NewPitchClassSet(pcs ...PitchClass) PitchClassSet {
	var s PitchClassSet
	for _, pc := range pcs {
		s = s.Add(pc)
	}
	return s
}

func (s PitchClassSet) Add(pc PitchClass) PitchClassSet {
	if !pc.Valid() {
		return s
	}
	return s | 1<<uint(pc)
}

func (s PitchClassSet) Has(pc PitchClass) bool {
	return pc.Valid() && s&(1<<uint(pc)) != 0
}

func (s PitchClassSet) Len() int {
	n := 0
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		if s.Has(pc) {
			n++
		}
	}
	return n
}

// Slice lists members in ascending pitch-class order.
func (s PitchClassSet) Slice() []PitchClass {
	var res []PitchClass
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		if s.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}

func (s PitchClassSet) String() string {
	var names []string
	for _, pc := range s.Slice() {
		names = append(names, pc.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
