package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tab     []key.Binding
	Refresh key.Binding
	Symbol  key.Binding
	Learn   key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
	Tab: []key.Binding{
		key.NewBinding(key.WithKeys("1")),
		key.NewBinding(key.WithKeys("2")),
		key.NewBinding(key.WithKeys("3")),
		key.NewBinding(key.WithKeys("4")),
		key.NewBinding(key.WithKeys("5")),
		key.NewBinding(key.WithKeys("6")),
	},
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Symbol:  key.NewBinding(key.WithKeys("/", "s"), key.WithHelp("/", "symbol")),
	Learn:   key.NewBinding(key.WithKeys("i", "?"), key.WithHelp("i", "explain")),
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Enter:   key.NewBinding(key.WithKeys("enter")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func (k keyMap) dashboardHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Symbol, k.Refresh, k.Learn, k.Quit}
}
