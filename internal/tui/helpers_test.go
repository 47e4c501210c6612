package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and keeps only the messages this package reacts to.
// Cursor blinks and spinner ticks are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	switch msg.(type) {
	case createRequestMsg, toggleRequestMsg, deleteRequestMsg,
		fetchedMsg, createdMsg, toggledMsg, deletedMsg, clearedMsg:
		return []tea.Msg{msg}
	}
	return nil
}

// settle feeds every produced message back until nothing is left.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		next, c := m.Update(msg)
		m = next.(Model)
		m = settle(t, m, c)
	}
	return m
}

// send delivers one message and settles whatever it triggers.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok)
	return settle(t, mm, cmd)
}

// typeText focuses nothing by itself; it only feeds runes to whoever listens.
// Returned commands (cursor blinks) are ignored on purpose.
func typeText(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func focusForm(m Model) Model {
	next, _ := m.Update(press("a"))
	return next.(Model)
}

// fakeSource is an in-process todolist.Source with switchable failures.
type fakeSource struct {
	mu    sync.Mutex
	todos []model.Todo
	fail  bool
	calls map[string]int
	seq   int
}

var errBoom = errors.New("boom")

func newFakeSource(todos ...model.Todo) *fakeSource {
	return &fakeSource{todos: todos, calls: map[string]int{}}
}

func (f *fakeSource) called(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeSource) hit(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if f.fail {
		return errBoom
	}
	return nil
}

func (f *fakeSource) FetchAll(context.Context) ([]model.Todo, error) {
	if err := f.hit("fetch"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Todo(nil), f.todos...), nil
}

func (f *fakeSource) Create(_ context.Context, text string, p model.Priority) (model.Todo, error) {
	if err := f.hit("create"); err != nil {
		return model.Todo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	td := model.Todo{ID: "srv-" + string(rune('0'+f.seq)), Text: text, Priority: p}
	f.todos = append([]model.Todo{td}, f.todos...)
	return td, nil
}

func (f *fakeSource) Toggle(_ context.Context, id string) (model.Todo, error) {
	if err := f.hit("toggle"); err != nil {
		return model.Todo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos[i].Completed = !f.todos[i].Completed
			return f.todos[i], nil
		}
	}
	return model.Todo{}, errors.New("not found")
}

func (f *fakeSource) Delete(_ context.Context, id string) error {
	return f.hit("delete")
}

func (f *fakeSource) DeleteCompleted(context.Context) (int, error) {
	if err := f.hit("clear"); err != nil {
		return 0, err
	}
	return 1, nil
}
