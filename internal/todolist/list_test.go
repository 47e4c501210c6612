package todolist

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// frozen returns a clock stuck at one instant so ids collide unless bumped.
func frozen() func() time.Time {
	at := time.UnixMilli(1731283200000)
	return func() time.Time { return at }
}

func TestCreateOnEmptyList(t *testing.T) {
	l := New(nil)

	td, ok := l.Create("Buy milk", model.PriorityLow)
	require.True(t, ok)

	assert.Equal(t, 1, l.Len())
	assert.False(t, td.Completed)
	assert.Equal(t, model.PriorityLow, td.Priority)
	assert.Equal(t, "Buy milk", td.Text)
	assert.False(t, td.CreatedAt.IsZero())
	assert.Equal(t, model.Stats{Total: 1, Active: 1, Completed: 0}, l.Stats())
}

func TestCreateRejectsBlankText(t *testing.T) {
	l := New(nil)
	_, ok := l.Create("   \t", model.PriorityHigh)
	assert.False(t, ok)
	assert.Zero(t, l.Len())

	td, ok := l.Create("  trimmed  ", model.PriorityHigh)
	require.True(t, ok)
	assert.Equal(t, "trimmed", td.Text)
}

func TestCreatePrependsWithUniqueIDs(t *testing.T) {
	l := New(nil).WithClock(frozen())
	for i := 0; i < 5; i++ {
		_, ok := l.Create(fmt.Sprintf("task %d", i), model.PriorityMedium)
		require.True(t, ok)
	}

	todos := l.Todos()
	require.Len(t, todos, 5)
	assert.Equal(t, "task 4", todos[0].Text, "newest first")

	seen := map[string]bool{}
	for _, td := range todos {
		assert.False(t, seen[td.ID], "duplicate id %s", td.ID)
		seen[td.ID] = true
	}
}

func TestCountAfterCreatesAndDeletes(t *testing.T) {
	l := New(nil).WithClock(frozen())
	var ids []string
	for i := 0; i < 6; i++ {
		td, _ := l.Create(fmt.Sprintf("t%d", i), model.PriorityLow)
		ids = append(ids, td.ID)
	}
	assert.True(t, l.Delete(ids[0]))
	l.Toggle(ids[1])
	l.Toggle(ids[2])
	assert.Equal(t, 2, l.ClearCompleted())

	assert.Equal(t, 6-1-2, l.Len())
}

func TestToggleTwiceRestores(t *testing.T) {
	l := New(Samples())
	before, _ := l.Find("3")

	require.True(t, l.Toggle("3"))
	mid, _ := l.Find("3")
	assert.True(t, mid.Completed)
	assert.Equal(t, before.Text, mid.Text)
	assert.Equal(t, before.Priority, mid.Priority)
	assert.Equal(t, before.CreatedAt, mid.CreatedAt)

	require.True(t, l.Toggle("3"))
	after, _ := l.Find("3")
	assert.Equal(t, before, after)
}

func TestToggleUnknownIsNoop(t *testing.T) {
	l := New(Samples())
	assert.False(t, l.Toggle("nope"))
	assert.False(t, l.Delete("nope"))
	assert.Equal(t, Samples(), l.Todos())
}

func TestClearCompletedWithNoneCompleted(t *testing.T) {
	l := New(nil)
	l.Create("one", model.PriorityLow)
	l.Create("two", model.PriorityHigh)
	before := l.Todos()

	assert.Zero(t, l.ClearCompleted())
	assert.Equal(t, before, l.Todos())
}

func TestVisibleAndStats(t *testing.T) {
	l := New(Samples())

	l.SetFilter(model.FilterActive)
	assert.Len(t, l.Visible(), 3)
	assert.Equal(t, model.Stats{Total: 5, Active: 3, Completed: 2}, l.Stats(), "stats ignore the filter")

	l.SetFilter(model.FilterCompleted)
	for _, td := range l.Visible() {
		assert.True(t, td.Completed)
	}

	l.SetFilter(model.FilterAll)
	assert.Equal(t, l.Todos(), l.Visible())
}

func TestMirrorOperations(t *testing.T) {
	l := New([]model.Todo{{ID: "a"}, {ID: "b"}, {ID: "a", Text: "dup"}})
	assert.Equal(t, 2, l.Len(), "duplicate ids dropped on replace")

	l.Prepend(model.Todo{ID: "c", Text: "new"})
	assert.Equal(t, "c", l.Todos()[0].ID)

	l.Prepend(model.Todo{ID: "b", Text: "server copy", Completed: true})
	assert.Equal(t, 3, l.Len())
	got, _ := l.Find("b")
	assert.True(t, got.Completed)

	assert.False(t, l.Put(model.Todo{ID: "zz"}))
}

func TestNth(t *testing.T) {
	todos := Samples()
	td, err := Nth(todos, 2)
	require.NoError(t, err)
	assert.Equal(t, "2", td.ID)

	_, err = Nth(todos, 0)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Nth(todos, 6)
	assert.ErrorContains(t, err, "have 5, got 6")
}
