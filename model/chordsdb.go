package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChordsDB mirrors the guitar.json file shipped by @tombatossals/chords-db.
type ChordsDB struct {
	Main     ChordsDBMain `json:"main"`
	Keys     []string     `json:"keys"`
	Suffixes []string     `json:"suffixes"`
	Chords   KeyedChords  `json:"chords"`
}

type ChordsDBMain struct {
	Strings        int    `json:"strings"`
	FretsOnChord   int    `json:"fretsOnChord"`
	Name           string `json:"name"`
	NumberOfChords int    `json:"numberOfChords"`
}

type ChordEntry struct {
	Key       string        `json:"key"`
	Suffix    string        `json:"suffix"`
	Positions []RawPosition `json:"positions"`
}

// RawPosition frets are relative to BaseFret: -1 muted, 0 open, n fretted.
// A zero BaseFret means the field was absent.
type RawPosition struct {
	Frets    []int `json:"frets"`
	Fingers  []int `json:"fingers,omitempty"`
	BaseFret int   `json:"baseFret,omitempty"`
	Barres   []int `json:"barres,omitempty"`
	Capo     bool  `json:"capo,omitempty"`
	Midi     []int `json:"midi,omitempty"`
}

type KeyChords struct {
	Key     string
	Entries []ChordEntry
}

// KeyedChords is the "chords" object kept in document order.
type KeyedChords []KeyChords

func (k *KeyedChords) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*k = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("chords: expected object, got %v", tok)
	}

	var res KeyedChords
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("chords: expected key, got %v", tok)
		}
		var entries []ChordEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("chords[%s]: %w", key, err)
		}
		res = append(res, KeyChords{Key: key, Entries: entries})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*k = res
	return nil
}

func (k KeyedChords) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, kc := range k {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kc.Key)
		if err != nil {
			return nil, err
		}
		entries, err := json.Marshal(kc.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(entries)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
