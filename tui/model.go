// Package tui is the terminal front end: a bubbletea model over a
// session.Session.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/session"
)

var (
	accent = lipgloss.Color("#4da3ff")
	note   = lipgloss.Color("#e57373")

	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	modeOnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cfcfcf"))
	modeOffStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#555"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2a2a2a")).Padding(0, 1)
	noteStyle     = lipgloss.NewStyle().Foreground(note).Bold(true)
	rootStyle     = lipgloss.NewStyle().Foreground(accent).Bold(true)
	markStyle     = lipgloss.NewStyle().Foreground(accent)
	fretNumStyle  = lipgloss.NewStyle().Foreground(accent)
	selectedStyle = lipgloss.NewStyle().Foreground(accent)
)

var textStyle = fretboard.TextStyle{
	Note:  func(s string) string { return noteStyle.Render(s) },
	Root:  func(s string) string { return rootStyle.Render(s) },
	Mark:  func(s string) string { return markStyle.Render(s) },
	Label: func(s string) string { return fretNumStyle.Render(s) },
}

type Model struct {
	session *session.Session
	help    help.Model
	width   int
}

func New(s *session.Session) Model {
	return Model{session: s, help: help.New()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		s := m.session
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Prev):
			s.Prev()
		case key.Matches(msg, keys.Next):
			s.Next()
		case key.Matches(msg, keys.VoicingUp):
			s.VoicingUp()
		case key.Matches(msg, keys.VoicingDown):
			s.VoicingDown()
		case key.Matches(msg, keys.Random):
			s.Random()
		case key.Matches(msg, keys.Chords):
			s.SetMode(model.ModeChords)
		case key.Matches(msg, keys.Scales):
			s.SetMode(model.ModeScales)
		case key.Matches(msg, keys.NextKey):
			s.StepKey(1)
		case key.Matches(msg, keys.PrevKey):
			s.StepKey(-1)
		case key.Matches(msg, keys.View):
			_ = s.SetView(int(msg.String()[0] - '1'))
		}
	}
	return m, nil
}

func (m Model) modeLine() string {
	scales, chords := modeOffStyle, modeOffStyle
	if m.session.Mode() == model.ModeScales {
		scales = modeOnStyle
	} else {
		chords = modeOnStyle
	}
	return scales.Render("Scales") + dimStyle.Render(" | ") + chords.Render("Chords")
}

func (m Model) viewLine() string {
	var parts []string
	cur := m.session.View()
	for _, v := range fretboard.Views {
		if v.ID == cur.ID {
			parts = append(parts, selectedStyle.Render("● "+v.Label))
		} else {
			parts = append(parts, dimStyle.Render("○ "+v.Label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) controlsLine() string {
	s := m.session
	line := "Key " + selectedStyle.Render(s.Key().String())
	if s.Mode() == model.ModeChords {
		if v, ok := s.Voicing(); ok {
			line += "    Voicing " + selectedStyle.Render(v.Name)
		}
	}
	return line
}

func (m Model) View() string {
	s := m.session
	var board string
	if d, ok := s.Diagram(); ok {
		board = boardStyle.Render(strings.TrimRight(fretboard.RenderText(d, textStyle), "\n"))
	} else {
		board = dimStyle.Render("No chords for this filter.")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.modeLine(),
		"",
		m.controlsLine(),
		m.viewLine(),
		board,
		dimStyle.Render(s.Status()),
		"",
		titleStyle.Render("<  "+s.Title()+"  >"),
		"",
		m.help.View(keys),
	)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}
