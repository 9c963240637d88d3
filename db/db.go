package db

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"go.uber.org/zap"
)

func Decode(r io.Reader) (model.ChordsDB, error) {
	var db model.ChordsDB
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return model.ChordsDB{}, fmt.Errorf("decoding chords db: %w", err)
	}
	return db, nil
}

func ReadFile(path string) (model.ChordsDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ChordsDB{}, fmt.Errorf("opening chords db: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Source owns the chord library built from a chords db file. Each load
// builds a fresh library and swaps it in whole, so readers never see a
// partially built one.
type Source struct {
	path    string
	logger  *zap.Logger
	current atomic.Pointer[chord.Library]
}

func NewSource(path string, logger *zap.Logger) *Source {
	return &Source{path: path, logger: logger}
}

// Open builds the first library; it must succeed before Library is used.
func Open(path string, logger *zap.Logger) (*Source, error) {
	s := NewSource(path, logger)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Library() chord.Library {
	lib := s.current.Load()
	if lib == nil {
		return chord.Library{}
	}
	return *lib
}

// Reload keeps the previous library when the file can't be read.
func (s *Source) Reload() error {
	raw, err := ReadFile(s.path)
	if err != nil {
		return err
	}
	lib := chord.BuildLibrary(raw)
	s.current.Store(&lib)
	s.logger.Info("Loaded chord library",
		zap.String("path", s.path),
		zap.Int("chords", lib.Len()),
		zap.Int("keys", len(raw.Chords)))
	return nil
}
