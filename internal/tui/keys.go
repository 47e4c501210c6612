package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type keyMap struct {
	Toggle  key.Binding
	Delete  key.Binding
	Add     key.Binding
	Filter  key.Binding
	All     key.Binding
	Active  key.Binding
	Done    key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding

	// add form
	Submit   key.Binding
	Priority key.Binding
	PrevPrio key.Binding
	Cancel   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:     key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Filter:  key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "next filter")),
		All:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Done:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Priority: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "priority")),
		PrevPrio: key.NewBinding(key.WithKeys("shift+tab")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap for the list screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Filter, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Add, k.Clear, k.Refresh, k.Dismiss},
		{k.Filter, k.All, k.Active, k.Done},
		{k.Help, k.Quit},
	}
}

// formHelp is shown while the add form has focus.
type formHelp struct{ k keyMap }

func (f formHelp) ShortHelp() []key.Binding {
	return []key.Binding{f.k.Submit, f.k.Priority, f.k.Cancel}
}
func (f formHelp) FullHelp() [][]key.Binding { return [][]key.Binding{f.ShortHelp()} }

// listKeys trims bubbles/list defaults that clash with ours (d, f, u, b,
// q, esc, /, ?).
func listKeys() list.KeyMap {
	km := list.DefaultKeyMap()
	km.CursorUp = key.NewBinding(key.WithKeys("up", "k"))
	km.CursorDown = key.NewBinding(key.WithKeys("down", "j"))
	km.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"))
	km.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"))
	km.Filter.SetEnabled(false)
	km.ClearFilter.SetEnabled(false)
	km.ShowFullHelp.SetEnabled(false)
	km.CloseFullHelp.SetEnabled(false)
	km.Quit.SetEnabled(false)
	km.ForceQuit.SetEnabled(false)
	return km
}
