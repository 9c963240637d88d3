package theory

import "fmt"

type Scale struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
}

var MajorIntervals = []int{0, 2, 4, 5, 7, 9, 11}

var Scales = []Scale{
	{Name: "Major (Ionian)", Intervals: MajorIntervals},
	{Name: "Natural Minor (Aeolian)", Intervals: []int{0, 2, 3, 5, 7, 8, 10}},
	{Name: "Minor Pentatonic", Intervals: []int{0, 3, 5, 7, 10}},
	{Name: "Major Pentatonic", Intervals: []int{0, 2, 4, 7, 9}},
	{Name: "Blues", Intervals: []int{0, 3, 5, 6, 7, 10}},
	{Name: "Dorian", Intervals: []int{0, 2, 3, 5, 7, 9, 10}},
	{Name: "Mixolydian", Intervals: []int{0, 2, 4, 5, 7, 9, 10}},
	{Name: "Harmonic Minor", Intervals: []int{0, 2, 3, 5, 7, 8, 11}},
	{Name: "Melodic Minor (Jazz)", Intervals: []int{0, 2, 3, 5, 7, 9, 11}},
	{Name: "Phrygian Dominant", Intervals: []int{0, 1, 4, 5, 7, 8, 10}},
}

func ScaleByName(name string) (Scale, error) {
	for _, s := range Scales {
		if s.Name == name {
			return s, nil
		}
	}
	return Scale{}, fmt.Errorf("unknown scale %q", name)
}

// ScalePitchClasses transposes every interval of scale onto root.
func ScalePitchClasses(scale Scale, root PitchClass) PitchClassSet {
	var s PitchClassSet
	for _, interval := range scale.Intervals {
		s = s.Add(Transpose(root, interval))
	}
	return s
}

// ScaleNotes is like ScalePitchClasses but keeps interval order, root first.
func ScaleNotes(scale Scale, root PitchClass) []PitchClass {
	res := make([]PitchClass, 0, len(scale.Intervals))
	for _, interval := range scale.Intervals {
		res = append(res, Transpose(root, interval))
	}
	return res
}
