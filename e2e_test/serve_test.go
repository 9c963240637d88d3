//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jsphweid/fretdex/api"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/model"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	src, err := db.Open("../cmd/testdata/guitar.json", zap.NewNop())
	if err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(api.NewServer(src, zap.NewNop()).Handler([]string{"*"}))

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func getJSON(t *testing.T, path string, v any) int {
	resp, err := http.Get(server.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode
}

func TestChordsInCMajorE2E(t *testing.T) {
	var res model.ChordsResponse
	status := getJSON(t, "/api/chords?key=C", &res)

	assert := assert.New(t)
	assert.Equal(200, status)
	var names []string
	for _, c := range res.Chords {
		names = append(names, c.Name)
	}
	assert.Equal([]string{"C", "Cmaj7", "Dm", "Dm7", "G", "G7"}, names)
}

func TestBarreVoicingIsAbsoluteE2E(t *testing.T) {
	var c model.Chord
	status := getJSON(t, "/api/chords/C", &c)

	assert := assert.New(t)
	assert.Equal(200, status)
	assert.Len(c.Voicings, 2)
	assert.Equal("Position 2 (base 8, barre)", c.Voicings[1].Name)
	assert.Equal(model.FretPosition{String: 1, Fret: 10}, c.Voicings[1].Positions[1])
}

func TestScaleDiagramE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/api/scales/2/diagram.svg?key=A&view=1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "<svg"))
}
