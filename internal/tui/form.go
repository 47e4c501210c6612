package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/ui"
)

// createRequestMsg is emitted by the add form on a valid submit.
type createRequestMsg struct {
	Text     string
	Priority model.Priority
}

// addForm captures the text and priority of a new entry. The priority picker
// stays hidden until the input has been focused once, and collapses again
// after each submit.
type addForm struct {
	input    textinput.Model
	priority model.Priority
	expanded bool
	keys     keyMap
}

func newAddForm(keys keyMap) addForm {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = 200
	return addForm{input: ti, priority: model.DefaultPriority, keys: keys}
}

func (f addForm) Focused() bool { return f.input.Focused() }

// CanSubmit is the only guard against empty input.
func (f addForm) CanSubmit() bool { return strings.TrimSpace(f.input.Value()) != "" }

func (f *addForm) Focus() tea.Cmd {
	f.expanded = true
	return f.input.Focus()
}

func (f *addForm) Blur() { f.input.Blur() }

func (f addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, f.keys.Submit):
			if !f.CanSubmit() {
				return f, nil
			}
			req := createRequestMsg{Text: strings.TrimSpace(f.input.Value()), Priority: f.priority}
			f.input.SetValue("")
			f.priority = model.DefaultPriority
			f.expanded = false
			f.input.Blur()
			return f, func() tea.Msg { return req }
		case key.Matches(k, f.keys.Priority):
			if f.expanded {
				f.priority = f.priority.Next()
			}
			return f, nil
		case key.Matches(k, f.keys.PrevPrio):
			if f.expanded {
				f.priority = f.priority.Prev()
			}
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f addForm) View() string {
	t := ui.Current()
	var b strings.Builder

	add := t.Accent.Render("[+ Add]")
	if !f.CanSubmit() {
		add = t.Muted.Render("[+ Add]")
	}
	b.WriteString(f.input.View() + "  " + add)

	if f.expanded {
		b.WriteString("\n" + t.Muted.Render("Priority: "))
		for _, p := range model.Priorities {
			label := " " + p.Label() + " "
			if p == f.priority {
				b.WriteString(t.Selected.Render(label))
			} else {
				b.WriteString(t.Muted.Render(label))
			}
			b.WriteString(" ")
		}
	}
	return b.String()
}
