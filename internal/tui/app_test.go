package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cilansSlodhi/todo-list/internal/api"
	"github.com/cilansSlodhi/todo-list/internal/devserver"
	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/todolist"
)

func memoryModel(seed ...model.Todo) Model {
	return New(context.Background(), Options{Seed: seed})
}

// backendModel runs Init and settles the initial fetch.
func backendModel(t *testing.T, src todolist.Source) Model {
	t.Helper()
	m := New(context.Background(), Options{Source: src, Endpoint: "http://test/api/todos"})
	require.True(t, m.loading, "loading is set while the first fetch is out")
	return settle(t, m, m.Init())
}

func addTodo(t *testing.T, m Model, text string, prioKeys ...string) Model {
	t.Helper()
	m = focusForm(m)
	m = typeText(m, text)
	for _, k := range prioKeys {
		next, _ := m.Update(press(k))
		m = next.(Model)
	}
	return send(t, m, press("enter"))
}

func TestMemoryCreateScenario(t *testing.T) {
	m := memoryModel()
	m = addTodo(t, m, "Buy milk", "shift+tab")

	todos := m.list.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Text)
	assert.False(t, todos[0].Completed)
	assert.Equal(t, model.PriorityLow, todos[0].Priority)
	assert.Equal(t, model.Stats{Total: 1, Active: 1, Completed: 0}, m.list.Stats())
	assert.False(t, m.form.Focused())
}

func TestMemoryNewestFirst(t *testing.T) {
	m := memoryModel()
	m = addTodo(t, m, "first")
	m = addTodo(t, m, "second")

	todos := m.list.Todos()
	require.Len(t, todos, 2)
	assert.Equal(t, "second", todos[0].Text)
	assert.NotEqual(t, todos[0].ID, todos[1].ID)
}

func TestMemoryToggleAndDeleteViaRow(t *testing.T) {
	m := memoryModel(todolist.Samples()...)

	m = send(t, m, press("2")) // active filter
	require.Equal(t, model.FilterActive, m.list.Filter())
	first := m.view.SelectedItem().(listItem)
	assert.Equal(t, "3", first.ID)

	m = send(t, m, press("space"))
	got, _ := m.list.Find("3")
	assert.True(t, got.Completed)
	assert.Len(t, m.view.Items(), 2, "toggled entry leaves the active view")

	m = send(t, m, press("d"))
	assert.Equal(t, 4, m.list.Len())
	_, ok := m.list.Find("4")
	assert.False(t, ok)

	assert.Equal(t, model.Stats{Total: 4, Active: 1, Completed: 3}, m.list.Stats())
}

func TestMemoryToggleUnknownIsNoop(t *testing.T) {
	m := memoryModel(todolist.Samples()...)
	m = send(t, m, toggleRequestMsg{ID: "missing"})
	assert.Equal(t, todolist.Samples(), m.list.Todos())
	assert.Empty(t, m.banner)
}

func TestMemoryClearCompleted(t *testing.T) {
	m := memoryModel(todolist.Samples()...)
	m = send(t, m, press("c"))
	assert.Equal(t, 3, m.list.Len())
	assert.Zero(t, m.list.Stats().Completed)
	assert.Equal(t, "Cleared 2 completed tasks", m.status)

	before := m.list.Todos()
	m = send(t, m, press("c"))
	assert.Equal(t, before, m.list.Todos())
}

func TestFilterCycle(t *testing.T) {
	m := memoryModel(todolist.Samples()...)
	m = send(t, m, press("f"))
	assert.Equal(t, model.FilterActive, m.list.Filter())
	m = send(t, m, press("f"))
	assert.Equal(t, model.FilterCompleted, m.list.Filter())
	assert.Len(t, m.view.Items(), 2)
	assert.Equal(t, 5, m.list.Stats().Total, "stats ignore the filter")
	m = send(t, m, press("1"))
	assert.Len(t, m.view.Items(), 5)
}

func TestEmptyStateText(t *testing.T) {
	m := memoryModel()
	assert.Contains(t, m.View(), "No tasks yet")
	assert.Contains(t, m.View(), "Add a new task to get started!")

	m = send(t, m, press("3"))
	assert.Contains(t, m.View(), "No completed tasks found.")
}

func TestClearAffordanceOnlyWithCompleted(t *testing.T) {
	m := memoryModel(model.Todo{ID: "1", Text: "open"})
	assert.NotContains(t, m.View(), "Clear")

	m = send(t, m, press("x"))
	assert.Contains(t, m.View(), "Clear 1 completed task")
}

func TestBackendInitialLoad(t *testing.T) {
	src := newFakeSource(model.Todo{ID: "s1", Text: "from server"})
	m := backendModel(t, src)

	assert.False(t, m.loading)
	assert.True(t, m.loaded)
	assert.Equal(t, 1, m.list.Len())
	assert.Equal(t, 1, src.called("fetch"))
}

func TestBackendInitialLoadFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)

	m := backendModel(t, api.New(ts.URL))
	assert.False(t, m.loading)
	assert.Zero(t, m.list.Len())
	assert.NotEmpty(t, m.loadErr)
	assert.Contains(t, m.View(), "Failed to load todos")
	assert.Empty(t, m.banner)
}

func TestBackendMutationsApplyServerResults(t *testing.T) {
	src := newFakeSource(model.Todo{ID: "s1", Text: "existing", Completed: true})
	m := backendModel(t, src)

	m = addTodo(t, m, "Buy milk", "shift+tab")
	require.Equal(t, 2, m.list.Len())
	created := m.list.Todos()[0]
	assert.Equal(t, "srv-1", created.ID, "id comes from the server")
	assert.Equal(t, model.PriorityLow, created.Priority)

	m = send(t, m, toggleRequestMsg{ID: "srv-1"})
	got, _ := m.list.Find("srv-1")
	assert.True(t, got.Completed)

	m = send(t, m, press("c"))
	assert.Zero(t, m.list.Len())
	assert.Equal(t, 1, src.called("clear"))
}

func TestBackendFailureShowsBannerAndKeepsState(t *testing.T) {
	src := newFakeSource(
		model.Todo{ID: "s1", Text: "existing"},
		model.Todo{ID: "s2", Text: "finished", Completed: true},
	)
	m := backendModel(t, src)
	src.fail = true
	before := m.list.Todos()

	m = addTodo(t, m, "Buy milk")
	assert.Equal(t, before, m.list.Todos())
	assert.Equal(t, msgCreateFailed, m.banner)
	assert.Equal(t, 1, src.called("create"))

	m = send(t, m, press("c"))
	assert.Equal(t, before, m.list.Todos())
	assert.Equal(t, msgClearFailed, m.banner)
	assert.Equal(t, 1, src.called("clear"))

	m = send(t, m, deleteRequestMsg{ID: "s1"})
	assert.Equal(t, before, m.list.Todos())
	assert.Equal(t, msgDeleteFailed, m.banner)
	assert.Contains(t, m.View(), msgDeleteFailed)

	m = send(t, m, toggleRequestMsg{ID: "s1"})
	got, _ := m.list.Find("s1")
	assert.False(t, got.Completed)
	assert.Equal(t, msgToggleFailed, m.banner)

	m = send(t, m, press("esc"))
	assert.Empty(t, m.banner)
}

func TestCreateAfterFailedLoadRecovers(t *testing.T) {
	src := newFakeSource(model.Todo{ID: "s1", Text: "already there"})
	src.fail = true
	m := backendModel(t, src)
	require.NotEmpty(t, m.loadErr)

	src.fail = false
	m = addTodo(t, m, "Buy milk")

	assert.Empty(t, m.loadErr)
	assert.True(t, m.loaded)
	assert.False(t, m.loading)
	assert.Equal(t, 2, m.list.Len(), "refetch brings in the rest of the collection")
	assert.Equal(t, 2, src.called("fetch"))
	assert.NotContains(t, m.View(), "Failed to load todos")
	assert.Contains(t, m.View(), "Buy milk")
}

func TestWindowSizeSetsPageSize(t *testing.T) {
	var seed []model.Todo
	for i := 1; i <= 30; i++ {
		seed = append(seed, model.Todo{ID: strconv.Itoa(i), Text: "task " + strconv.Itoa(i)})
	}
	m := memoryModel(seed...)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	perPage := m.view.Paginator.PerPage
	require.Greater(t, perPage, 1)

	view := m.View()
	assert.Equal(t, perPage, m.view.Paginator.PerPage, "rendering does not resize")
	assert.Contains(t, view, "task 1")

	m = send(t, m, press("right"))
	assert.Equal(t, perPage, m.view.Index())
	m = send(t, m, press("left"))
	assert.Equal(t, 0, m.view.Index())

	// a smaller terminal means fewer rows per page
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Less(t, m.view.Paginator.PerPage, perPage)
}

func TestBackendClearWithNothingCompletedSendsNothing(t *testing.T) {
	src := newFakeSource(model.Todo{ID: "s1", Text: "open"})
	m := backendModel(t, src)

	next, cmd := m.Update(press("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, next.(Model).list.Len())
	assert.Zero(t, src.called("clear"))
}

func TestRefresh(t *testing.T) {
	src := newFakeSource(model.Todo{ID: "s1", Text: "one"})
	m := backendModel(t, src)

	src.todos = append(src.todos, model.Todo{ID: "s2", Text: "two"})
	next, cmd := m.Update(press("r"))
	m = next.(Model)
	assert.True(t, m.loading)

	// a second press while the fetch is outstanding does nothing
	again, cmd2 := m.Update(press("r"))
	assert.Nil(t, cmd2)
	assert.True(t, again.(Model).loading)

	m = settle(t, m, cmd)
	assert.False(t, m.loading)
	assert.Equal(t, 2, m.list.Len())
	assert.Equal(t, 2, src.called("fetch"))

	src.fail = true
	m = send(t, m, press("r"))
	assert.Equal(t, msgRefreshFailed, m.banner)
	assert.Equal(t, 2, m.list.Len(), "failed refresh keeps the previous list")
}

func TestLastResponseWins(t *testing.T) {
	m := backendModel(t, newFakeSource())

	newer := fetchedMsg{todos: []model.Todo{{ID: "new", Text: "newer"}}}
	older := fetchedMsg{todos: []model.Todo{{ID: "old", Text: "stale"}}}
	m = send(t, m, newer)
	m = send(t, m, older)

	_, ok := m.list.Find("old")
	assert.True(t, ok, "responses apply in arrival order")
}

func TestRefreshIsInertInMemory(t *testing.T) {
	m := memoryModel()
	_, cmd := m.Update(press("r"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.Init())
}

func TestAgainstDevserver(t *testing.T) {
	srv := devserver.New(nil, devserver.Options{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	m := backendModel(t, api.New(ts.URL+devserver.DefaultPrefix))
	m = addTodo(t, m, "Walk dog")
	m = addTodo(t, m, "Buy milk")
	require.Equal(t, 2, m.list.Len())

	m = send(t, m, press("space")) // selected row is the newest
	assert.Equal(t, model.Stats{Total: 2, Active: 1, Completed: 1}, m.list.Stats())
	assert.Equal(t, srv.Store().Stats(), m.list.Stats())

	m = send(t, m, press("c"))
	assert.Equal(t, 1, m.list.Len())
	assert.Len(t, srv.Store().List(), 1)
}
