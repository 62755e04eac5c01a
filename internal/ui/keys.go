package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start key.Binding
	Stop  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start timer")),
		Stop:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop timer")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset week")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Reset},
		{k.Help, k.Quit},
	}
}
