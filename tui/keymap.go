package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	click     key.Binding
	lock      key.Binding
	duplicate key.Binding
	remove    key.Binding
	prev      key.Binding
	next      key.Binding
	help      key.Binding
	quit      key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.click, k.lock, k.duplicate, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.click, k.lock},
		{k.duplicate, k.remove},
		{k.prev, k.next},
		{k.help, k.quit},
	}
}

var defaultKeymap = keymap{
	click: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space×2", "advance"),
	),
	lock: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lock"),
	),
	duplicate: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new panel"),
	),
	remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove panel"),
	),
	prev: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←/h", "previous"),
	),
	next: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→/tab", "next"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
