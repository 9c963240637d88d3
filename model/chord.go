package model

type FretPosition struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// Shape is a voicing's fingering with absolute fret numbers.
type Shape struct {
	Positions    []FretPosition `json:"positions"`
	OpenStrings  []int          `json:"openStrings"`
	MutedStrings []int          `json:"mutedStrings"`
}

type Voicing struct {
	Name     string `json:"name"`
	BaseFret int    `json:"baseFret"`
	Shape
}

type Chord struct {
	Name     string    `json:"name"`
	Key      string    `json:"key"`
	Type     string    `json:"type"`
	Voicings []Voicing `json:"voicings"`
}

type Mode string

const (
	ModeChords Mode = "Chords"
	ModeScales Mode = "Scales"
)
