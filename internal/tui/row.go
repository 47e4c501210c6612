package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

// Events a row sends up to the list container.
type (
	toggleRequestMsg struct{ ID string }
	deleteRequestMsg struct{ ID string }
)

const dateLayout = "Jan 2, 2006"

// listItem adapts model.Todo to bubbles/list.Item
type listItem struct{ model.Todo }

func (i listItem) FilterValue() string { return i.Text }

// rowDelegate renders one entry per item and turns the toggle/delete keys on
// the selected row into request messages. It keeps no state.
type rowDelegate struct {
	keys keyMap
}

func (d rowDelegate) Height() int  { return 2 }
func (d rowDelegate) Spacing() int { return 1 }

func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	it, ok := m.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, d.keys.Toggle):
		return func() tea.Msg { return toggleRequestMsg{ID: it.ID} }
	case key.Matches(k, d.keys.Delete):
		return func() tea.Msg { return deleteRequestMsg{ID: it.ID} }
	}
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(it.Todo, index == m.Index(), m.Width()))
}

// renderRow draws the text line and the badge/date line of an entry.
func renderRow(td model.Todo, selected bool, width int) string {
	t := ui.Current()

	text := td.Text
	if width-8 > 10 {
		text = ui.Truncate(text, width-8)
	}
	box := t.Muted.Render(t.BoxUnchecked)
	if td.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}

	var meta []string
	if b := t.Badge(td.Priority); b != "" {
		meta = append(meta, b)
	}
	if !td.CreatedAt.IsZero() {
		meta = append(meta, t.Muted.Render(td.CreatedAt.Local().Format(dateLayout)))
	}

	return prefix + box + " " + text + "\n" + "    " + strings.Join(meta, "  ")
}

func toItems(todos []model.Todo) []list.Item {
	items := make([]list.Item, 0, len(todos))
	for _, td := range todos {
		items = append(items, listItem{td})
	}
	return items
}
