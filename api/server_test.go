package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
)

type staticSource chord.Library

func (s staticSource) Library() chord.Library {
	return chord.Library(s)
}

func testServer() *Server {
	shape := func(frets ...int) model.Shape { return chord.FretsToShape(frets, 1) }
	lib := chord.NewLibrary([]model.Chord{
		{Name: "C", Key: "C", Type: "major", Voicings: []model.Voicing{
			{Name: "Position 1 (base 1)", BaseFret: 1, Shape: shape(-1, 3, 2, 0, 1, 0)},
		}},
		{Name: "C#", Key: "C#", Type: "major", Voicings: []model.Voicing{
			{Name: "Position 1 (base 4, barre)", BaseFret: 4, Shape: chord.FretsToShape([]int{-1, 1, 3, 3, 3, 1}, 4)},
		}},
		{Name: "C/E", Key: "C", Type: "/E", Voicings: []model.Voicing{
			{Name: "Position 1 (base 1)", BaseFret: 1, Shape: shape(0, 3, 2, 0, 1, 0)},
		}},
		{Name: "Dm7", Key: "D", Type: "minor7"},
	})
	return NewServer(staticSource(lib), zap.NewNop())
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	resp, body := get(t, testServer().Router(), "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ok", "chords": 4}`, string(body))
}

func TestKeys(t *testing.T) {
	_, body := get(t, testServer().Router(), "/api/keys")
	var keys []string
	require.NoError(t, json.Unmarshal(body, &keys))
	assert.Len(t, keys, 13)
	assert.Equal(t, "Any", keys[0])
	assert.Equal(t, "B", keys[12])
}

func TestChordsFilteredByKey(t *testing.T) {
	h := testServer().Router()

	resp, body := get(t, h, "/api/chords?key=C")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.ChordsResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "C", res.Key)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "C", res.Chords[0].Name)
	assert.Equal(t, "Dm7", res.Chords[1].Name)
	assert.Equal(t, 0, res.Chords[1].Voicings)

	_, body = get(t, h, "/api/chords")
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Any", res.Key)
	assert.Equal(t, 4, res.Count)

	_, body = get(t, h, "/api/chords?key=Any")
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 4, res.Count)
}

func TestChordsRejectsBadKey(t *testing.T) {
	resp, body := get(t, testServer().Router(), "/api/chords?key=H")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, strings.HasPrefix(res.Error, "key "), res.Error)
}

func TestChordByEncodedName(t *testing.T) {
	h := testServer().Router()

	resp, body := get(t, h, "/api/chords/C%23")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var c model.Chord
	require.NoError(t, json.Unmarshal(body, &c))
	assert.Equal(t, "C#", c.Name)
	assert.Equal(t, 4, c.Voicings[0].BaseFret)
	assert.Equal(t, []model.FretPosition{{String: 1, Fret: 4}, {String: 2, Fret: 6}, {String: 3, Fret: 6}, {String: 4, Fret: 6}, {String: 5, Fret: 4}}, c.Voicings[0].Positions)

	resp, _ = get(t, h, "/api/chords/C%2FE")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, h, "/api/chords/Cmaj13")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVoicingSVG(t *testing.T) {
	h := testServer().Router()

	resp, body := get(t, h, "/api/chords/C/voicings/0/diagram.svg?view=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "<svg "))

	resp, _ = get(t, h, "/api/chords/C/voicings/1/diagram.svg")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, h, "/api/chords/C/voicings/0/diagram.svg?view=9")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, h, "/api/chords/C/voicings/0/diagram.svg?view=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScale(t *testing.T) {
	h := testServer().Router()

	resp, body := get(t, h, "/api/scales/2?key=A&view=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.ScaleResponse
	require.NoError(t, json.Unmarshal(body, &res))

	assert := assert.New(t)
	assert.Equal("Minor Pentatonic", res.Name)
	assert.Equal("A", res.Key)
	assert.Equal([]string{"A", "C", "D", "E", "G"}, res.Notes)
	for _, d := range res.Dots {
		assert.GreaterOrEqual(d.Fret, 1)
		assert.LessOrEqual(d.Fret, 5)
		assert.Equal(d.Note == "A", d.IsRoot)
	}

	_, body = get(t, h, "/api/scales/0")
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal("C", res.Key)
	// every string covers all twelve pitch classes across frets 1-12
	assert.Len(res.Dots, 6*7)
}

func TestScaleErrors(t *testing.T) {
	h := testServer().Router()

	resp, _ := get(t, h, "/api/scales/10")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, h, "/api/scales/0?key=Any")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := get(t, h, "/api/scales/0/diagram.svg?key=Eb&view=3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), ">15</text>")
}

func TestHandlerAddsRequestIDAndCORS(t *testing.T) {
	h := testServer().Handler([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/views", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/views", nil)
	req.Header.Set(requestIDHeader, "abc")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Result().Header.Get(requestIDHeader))
}
