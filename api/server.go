package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

// LibrarySource hands out the current chord library. db.Source satisfies it.
type LibrarySource interface {
	Library() chord.Library
}

type Server struct {
	source   LibrarySource
	logger   *zap.Logger
	validate *validator.Validate
}

func NewServer(source LibrarySource, logger *zap.Logger) *Server {
	return &Server{source: source, logger: logger, validate: newValidator()}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true).UseEncodedPath()
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	r := router.PathPrefix("/api").Subrouter()
	r.HandleFunc("/keys", s.handleKeys).Methods(http.MethodGet)
	r.HandleFunc("/views", s.handleViews).Methods(http.MethodGet)
	r.HandleFunc("/scales", s.handleScales).Methods(http.MethodGet)
	r.HandleFunc("/scales/{index:[0-9]+}", s.handleScale).Methods(http.MethodGet)
	r.HandleFunc("/scales/{index:[0-9]+}/diagram.svg", s.handleScaleSVG).Methods(http.MethodGet)
	r.HandleFunc("/chords", s.handleChords).Methods(http.MethodGet)
	r.HandleFunc("/chords/{name}", s.handleChord).Methods(http.MethodGet)
	r.HandleFunc("/chords/{name}/voicings/{index:[0-9]+}/diagram.svg", s.handleVoicingSVG).Methods(http.MethodGet)
	return router
}

// Handler is the full stack served to browsers: CORS, request logging, routes.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(logRequests(s.logger)(s.Router()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "chords": s.source.Library().Len()})
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, append([]string{chord.AnyKeyName}, theory.NoteNames()...))
}

func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fretboard.Views)
}

func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, theory.Scales)
}

func (s *Server) parseDiagramQuery(r *http.Request) (model.DiagramQuery, error) {
	q := model.DiagramQuery{Key: r.URL.Query().Get("key")}
	if v := r.URL.Query().Get("view"); v != "" {
		view, err := strconv.Atoi(v)
		if err != nil {
			return q, errors.New("view must be a number")
		}
		q.View = view
	}
	if err := s.validate.Struct(q); err != nil {
		return q, errors.New(validationDetail(err))
	}
	return q, nil
}

func scaleFromPath(r *http.Request) (int, theory.Scale, bool) {
	idx, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || idx >= len(theory.Scales) {
		return 0, theory.Scale{}, false
	}
	return idx, theory.Scales[idx], true
}

// scale root defaults to C like the front end does
func rootOf(key string) theory.PitchClass {
	if key == "" {
		return theory.MustPitchClassOf("C")
	}
	return theory.MustPitchClassOf(key)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	idx, scale, ok := scaleFromPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no such scale")
		return
	}
	q, err := s.parseDiagramQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	root := rootOf(q.Key)
	view := fretboard.Views[q.View]

	res := model.ScaleResponse{
		Index:     idx,
		Name:      scale.Name,
		Key:       root.String(),
		Intervals: scale.Intervals,
		Dots:      []model.Dot{},
	}
	for _, pc := range theory.ScaleNotes(scale, root) {
		res.Notes = append(res.Notes, pc.String())
	}
	for _, d := range fretboard.ScaleDots(theory.ScalePitchClasses(scale, root), root, view) {
		res.Dots = append(res.Dots, model.Dot{
			String:        d.String,
			Fret:          d.Fret,
			RelativeIndex: d.RelativeIndex,
			Note:          d.PitchClass.String(),
			IsRoot:        d.IsRoot,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeSVG(w http.ResponseWriter, d fretboard.Diagram) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := fretboard.RenderSVG(w, d); err != nil {
		s.logger.Warn("Could not render diagram", zap.Error(err))
	}
}

func (s *Server) handleScaleSVG(w http.ResponseWriter, r *http.Request) {
	_, scale, ok := scaleFromPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no such scale")
		return
	}
	q, err := s.parseDiagramQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeSVG(w, fretboard.NewScaleDiagram(scale, rootOf(q.Key), fretboard.Views[q.View]))
}

func (s *Server) handleChords(w http.ResponseWriter, r *http.Request) {
	q := model.ChordsQuery{Key: r.URL.Query().Get("key")}
	if err := s.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, validationDetail(err))
		return
	}
	filter, err := chord.ParseKeyFilter(q.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	chords := s.source.Library().Filter(filter)
	res := model.ChordsResponse{Key: filter.String(), Count: len(chords), Chords: []model.ChordSummary{}}
	for _, c := range chords {
		res.Chords = append(res.Chords, model.ChordSummary{Name: c.Name, Key: c.Key, Type: c.Type, Voicings: len(c.Voicings)})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) chordFromPath(r *http.Request) (model.Chord, bool) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		return model.Chord{}, false
	}
	return s.source.Library().Find(name)
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	c, ok := s.chordFromPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no such chord")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleVoicingSVG(w http.ResponseWriter, r *http.Request) {
	c, ok := s.chordFromPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no such chord")
		return
	}
	idx, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || idx >= len(c.Voicings) {
		writeError(w, http.StatusNotFound, "no such voicing")
		return
	}
	q, err := s.parseDiagramQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeSVG(w, fretboard.NewChordDiagram(c.Voicings[idx], fretboard.Views[q.View]))
}
