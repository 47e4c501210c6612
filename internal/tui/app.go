// Package tui is the interactive todo list: an add form, the entry rows and
// the list container that owns state, filter and stats.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/todolist"
)

// User-facing failure texts.
const (
	msgLoadFailed    = "Failed to load todos. Make sure the backend is running at %s."
	msgRefreshFailed = "Failed to refresh todos."
	msgCreateFailed  = "Failed to add todo. Please try again."
	msgToggleFailed  = "Failed to update todo. Please try again."
	msgDeleteFailed  = "Failed to delete todo. Please try again."
	msgClearFailed   = "Failed to clear completed todos. Please try again."
)

type Options struct {
	// Source is the remote collection. nil selects the in-memory variant.
	Source todolist.Source
	// Seed is the starting collection of the in-memory variant.
	Seed []model.Todo
	// Endpoint names the backend in the load-failure message.
	Endpoint string
	Logger   *log.Logger
}

// Model is the list container and composition root.
type Model struct {
	ctx      context.Context
	source   todolist.Source
	endpoint string
	logger   *log.Logger

	list *todolist.List
	view list.Model
	form addForm
	keys keyMap
	help help.Model
	spin spinner.Model

	loading bool   // fetch-all outstanding
	loaded  bool   // a fetch-all has succeeded at least once
	loadErr string // replaces the list body
	banner  string // dismissible action failure
	status  string // last informational note

	width, height int
}

func New(ctx context.Context, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	keys := newKeyMap()

	l := list.New(nil, rowDelegate{keys: keys}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.KeyMap = listKeys()

	m := Model{
		ctx:      ctx,
		source:   opts.Source,
		endpoint: opts.Endpoint,
		logger:   opts.Logger,
		view:     l,
		form:     newAddForm(keys),
		keys:     keys,
		help:     help.New(),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:    80,
		height:   24,
	}
	if m.remote() {
		m.list = todolist.New(nil)
		m.loading = true
	} else {
		m.list = todolist.New(opts.Seed)
		m.loaded = true
	}
	m.sync()
	m.layout()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) remote() bool { return m.source != nil }

// Init issues the initial fetch-all for the backend variant.
func (m Model) Init() tea.Cmd {
	if !m.remote() {
		return nil
	}
	return tea.Batch(m.spin.Tick, fetchCmd(m.ctx, m.source))
}

// Update routes msg and then fits the list widget to whatever room the
// header, form, banner and footer leave.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	mm := next.(Model)
	mm.layout()
	return mm, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.form.Focused() {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case createRequestMsg:
		return m.create(msg)
	case toggleRequestMsg:
		return m.toggle(msg.ID)
	case deleteRequestMsg:
		return m.delete(msg.ID)

	case fetchedMsg:
		return m.fetched(msg)
	case createdMsg:
		if msg.err != nil {
			return m.fail(msgCreateFailed, msg.err), nil
		}
		m.list.Prepend(msg.todo)
		m.sync()
		if m.loadErr != "" {
			// the backend answered after all; load the rest of the collection
			m.loadErr = ""
			return m.refresh()
		}
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			return m.fail(msgToggleFailed, msg.err), nil
		}
		m.list.Put(msg.todo)
		m.sync()
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			return m.fail(msgDeleteFailed, msg.err), nil
		}
		m.list.Delete(msg.id)
		m.sync()
		return m, nil
	case clearedMsg:
		if msg.err != nil {
			return m.fail(msgClearFailed, msg.err), nil
		}
		m.list.ClearCompleted()
		m.status = fmt.Sprintf("Cleared %d completed %s", msg.count, plural(msg.count, "task"))
		m.sync()
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case k.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(k, m.keys.Cancel):
		m.form.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(k)
	return m, cmd
}

func (m Model) updateList(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Add):
		return m, m.form.Focus()
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(k, m.keys.Dismiss):
		m.banner = ""
		return m, nil
	case key.Matches(k, m.keys.Refresh):
		return m.refresh()
	case key.Matches(k, m.keys.Filter):
		return m.setFilter(m.list.Filter().Next()), nil
	case key.Matches(k, m.keys.All):
		return m.setFilter(model.FilterAll), nil
	case key.Matches(k, m.keys.Active):
		return m.setFilter(model.FilterActive), nil
	case key.Matches(k, m.keys.Done):
		return m.setFilter(model.FilterCompleted), nil
	case key.Matches(k, m.keys.Clear):
		return m.clearCompleted()
	}
	if m.loadErr != "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(k)
	return m, cmd
}

func (m Model) create(req createRequestMsg) (tea.Model, tea.Cmd) {
	if m.remote() {
		return m, createCmd(m.ctx, m.source, req)
	}
	m.list.Create(req.Text, req.Priority)
	m.view.Select(0)
	m.sync()
	return m, nil
}

func (m Model) toggle(id string) (tea.Model, tea.Cmd) {
	if m.remote() {
		return m, toggleCmd(m.ctx, m.source, id)
	}
	m.list.Toggle(id)
	m.sync()
	return m, nil
}

func (m Model) delete(id string) (tea.Model, tea.Cmd) {
	if m.remote() {
		return m, deleteCmd(m.ctx, m.source, id)
	}
	m.list.Delete(id)
	m.sync()
	return m, nil
}

// clearCompleted does nothing, and sends nothing, when no entry is completed.
func (m Model) clearCompleted() (tea.Model, tea.Cmd) {
	if m.list.Stats().Completed == 0 {
		return m, nil
	}
	if m.remote() {
		return m, clearCmd(m.ctx, m.source)
	}
	n := m.list.ClearCompleted()
	m.status = fmt.Sprintf("Cleared %d completed %s", n, plural(n, "task"))
	m.sync()
	return m, nil
}

// refresh re-fetches the whole collection. The key is inert while a fetch is
// outstanding and in the in-memory variant.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if !m.remote() || m.loading {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, fetchCmd(m.ctx, m.source))
}

func (m Model) fetched(msg fetchedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		if !m.loaded {
			m.logger.Error("initial load failed", "err", msg.err)
			m.loadErr = fmt.Sprintf(msgLoadFailed, m.endpoint)
			return m, nil
		}
		return m.fail(msgRefreshFailed, msg.err), nil
	}
	m.loaded = true
	m.loadErr = ""
	m.list.Replace(msg.todos)
	m.sync()
	return m, nil
}

// fail shows a banner and leaves the collection as it was.
func (m Model) fail(text string, err error) Model {
	m.logger.Error(text, "err", err)
	m.banner = text
	return m
}

func (m Model) setFilter(f model.Filter) Model {
	m.list.SetFilter(f)
	m.view.ResetSelected()
	m.sync()
	return m
}

// sync pushes the filtered view of the collection into the list widget.
func (m *Model) sync() {
	idx := m.view.Index()
	m.view.SetItems(toItems(m.list.Visible()))
	if n := len(m.view.Items()); idx >= n && n > 0 {
		idx = n - 1
	}
	m.view.Select(idx)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
