// Package todolist holds the list container state: the collection of entries
// and the active filter. The in-memory variant mutates it directly; the
// backend variant mirrors results returned by a Source.
package todolist

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

var ErrNotFound = errors.New("todo not found")

// List is owned by a single caller and is not safe for concurrent use.
type List struct {
	todos  []model.Todo
	filter model.Filter
	now    func() time.Time
}

func New(todos []model.Todo) *List {
	l := &List{filter: model.FilterAll, now: time.Now}
	l.Replace(todos)
	return l
}

// WithClock swaps the time source used by Create. Tests only.
func (l *List) WithClock(now func() time.Time) *List {
	l.now = now
	return l
}

func (l *List) Todos() []model.Todo   { return slices.Clone(l.todos) }
func (l *List) Len() int              { return len(l.todos) }
func (l *List) Filter() model.Filter  { return l.filter }
func (l *List) Stats() model.Stats    { return model.ComputeStats(l.todos) }
func (l *List) Visible() []model.Todo { return l.filter.Apply(l.todos) }

func (l *List) SetFilter(f model.Filter) { l.filter = f }

func (l *List) Find(id string) (model.Todo, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return l.todos[i], true
}

// Create builds a new active entry and prepends it. Empty or whitespace-only
// text is rejected.
func (l *List) Create(text string, p model.Priority) (model.Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Todo{}, false
	}
	now := l.now()
	t := model.Todo{
		ID:        model.NewID(now, func(id string) bool { return l.index(id) >= 0 }),
		Text:      text,
		CreatedAt: now,
		Priority:  p,
	}
	l.todos = append([]model.Todo{t}, l.todos...)
	return t, true
}

// Toggle flips Completed on the matching entry. Unknown ids are a no-op.
func (l *List) Toggle(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos[i].Completed = !l.todos[i].Completed
	return true
}

func (l *List) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos = slices.Delete(l.todos, i, i+1)
	return true
}

// ClearCompleted removes every completed entry and returns how many went.
func (l *List) ClearCompleted() int {
	before := len(l.todos)
	l.todos = slices.DeleteFunc(l.todos, func(t model.Todo) bool { return t.Completed })
	return before - len(l.todos)
}

// Replace swaps the collection wholesale, keeping the given order.
// Later duplicates of an id are dropped.
func (l *List) Replace(todos []model.Todo) {
	seen := make(map[string]bool, len(todos))
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	l.todos = out
}

// Prepend adds an entry produced elsewhere (e.g. by the backend). An entry
// with an id already present replaces it in place.
func (l *List) Prepend(t model.Todo) {
	if l.Put(t) {
		return
	}
	l.todos = append([]model.Todo{t}, l.todos...)
}

// Put replaces the entry with the same id and reports whether one existed.
func (l *List) Put(t model.Todo) bool {
	i := l.index(t.ID)
	if i < 0 {
		return false
	}
	l.todos[i] = t
	return true
}

func (l *List) index(id string) int {
	return slices.IndexFunc(l.todos, func(t model.Todo) bool { return t.ID == id })
}

// Nth resolves a 1-based index as printed by `todo ls`.
func Nth(todos []model.Todo, n int) (model.Todo, error) {
	if n < 1 || n > len(todos) {
		return model.Todo{}, fmt.Errorf("index out of range: have %d, got %d: %w", len(todos), n, ErrNotFound)
	}
	return todos[n-1], nil
}
