package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	PrevTag   key.Binding
	NextTag   key.Binding
	ToggleTag key.Binding
	ClearTags key.Binding
	LoadMore  key.Binding
	Enter     key.Binding
	Back      key.Binding
	Retry     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	PrevTag:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tag")),
	NextTag:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tag")),
	ToggleTag: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle tag")),
	ClearTags: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear tags")),
	LoadMore:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleTag, k.LoadMore, k.Enter, k.Back, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Search, k.PrevTag, k.NextTag, k.ToggleTag, k.ClearTags},
		{k.LoadMore, k.Retry},
		{k.Help, k.Quit},
	}
}
