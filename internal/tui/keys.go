package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the checklist bindings. It satisfies help.KeyMap.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	MarkAll key.Binding
	Export  key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		MarkAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy csv")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Reset, k.MarkAll},
		{k.Export, k.Copy},
		{k.Help, k.Quit},
	}
}
