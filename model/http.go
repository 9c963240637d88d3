package model

// ChordsQuery is the query string of GET /api/chords.
type ChordsQuery struct {
	Key string `json:"key" validate:"omitempty,note|eq=Any"`
}

// DiagramQuery selects the fret window and, for scales, the root.
type DiagramQuery struct {
	Key  string `json:"key" validate:"omitempty,note"`
	View int    `json:"view" validate:"min=0,max=3"`
}

type ChordSummary struct {
	Name     string `json:"name"`
	Key      string `json:"key"`
	Type     string `json:"type"`
	Voicings int    `json:"voicings"`
}

type ChordsResponse struct {
	Key    string         `json:"key"`
	Count  int            `json:"count"`
	Chords []ChordSummary `json:"chords"`
}

type Dot struct {
	String        int    `json:"string"`
	Fret          int    `json:"fret"`
	RelativeIndex int    `json:"relativeIndex"`
	Note          string `json:"note"`
	IsRoot        bool   `json:"isRoot"`
}

type ScaleResponse struct {
	Index     int      `json:"index"`
	Name      string   `json:"name"`
	Key       string   `json:"key"`
	Intervals []int    `json:"intervals"`
	Notes     []string `json:"notes"`
	Dots      []Dot    `json:"dots"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
