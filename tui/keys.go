package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev        key.Binding
	Next        key.Binding
	VoicingUp   key.Binding
	VoicingDown key.Binding
	Random      key.Binding
	Chords      key.Binding
	Scales      key.Binding
	NextKey     key.Binding
	PrevKey     key.Binding
	View        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.VoicingUp, k.Random, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.VoicingUp, k.VoicingDown},
		{k.Random, k.Chords, k.Scales},
		{k.NextKey, k.PrevKey, k.View},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Prev:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	VoicingUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "next voicing")),
	VoicingDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "previous voicing")),
	Random:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random")),
	Chords:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chords")),
	Scales:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scales")),
	NextKey:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "next key")),
	PrevKey:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "previous key")),
	View:        key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "fret window")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}
