package devserver

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

var (
	ErrNotFound     = errors.New("todo not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Store keeps the collection newest first. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	todos []model.Todo
	now   func() time.Time
}

func NewStore(seed []model.Todo) *Store {
	return &Store{todos: slices.Clone(seed), now: time.Now}
}

func (s *Store) List() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *Store) Create(text string, p model.Priority) (model.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Todo{}, ErrInvalidInput
	}
	if p == "" {
		p = model.DefaultPriority
	} else if _, err := model.ParsePriority(string(p)); err != nil {
		return model.Todo{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := model.Todo{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now().UTC(),
		Priority:  p,
	}
	s.todos = append([]model.Todo{t}, s.todos...)
	return t, nil
}

func (s *Store) Toggle(id string) (model.Todo, error) {
	return s.mutate(id, func(t *model.Todo) error {
		t.Completed = !t.Completed
		return nil
	})
}

// Patch is the partial update behind PUT /{id}.
type Patch struct {
	Text      *string         `json:"text,omitempty"`
	Completed *bool           `json:"completed,omitempty"`
	Priority  *model.Priority `json:"priority,omitempty"`
}

func (s *Store) Update(id string, p Patch) (model.Todo, error) {
	return s.mutate(id, func(t *model.Todo) error {
		if p.Text != nil {
			text := strings.TrimSpace(*p.Text)
			if text == "" {
				return ErrInvalidInput
			}
			t.Text = text
		}
		if p.Priority != nil {
			pr, err := model.ParsePriority(string(*p.Priority))
			if err != nil {
				return ErrInvalidInput
			}
			t.Priority = pr
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		return nil
	})
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.todos = slices.Delete(s.todos, i, i+1)
	return nil
}

func (s *Store) DeleteCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.todos)
	s.todos = slices.DeleteFunc(s.todos, func(t model.Todo) bool { return t.Completed })
	return before - len(s.todos)
}

func (s *Store) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ComputeStats(s.todos)
}

// mutate applies fn to a copy and stores it only when fn succeeds.
func (s *Store) mutate(id string, fn func(*model.Todo) error) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, ErrNotFound
	}
	t := s.todos[i]
	if err := fn(&t); err != nil {
		return model.Todo{}, err
	}
	s.todos[i] = t
	return t, nil
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}
