package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cilansSlodhi/todo-list/internal/model"
	"github.com/cilansSlodhi/todo-list/internal/todolist"
)

// Results of backend calls. Each arrives whenever its request completes;
// nothing orders them, so a slow response can land after a newer one.
type (
	fetchedMsg struct {
		todos []model.Todo
		err   error
	}
	createdMsg struct {
		todo model.Todo
		err  error
	}
	toggledMsg struct {
		todo model.Todo
		err  error
	}
	deletedMsg struct {
		id  string
		err error
	}
	clearedMsg struct {
		count int
		err   error
	}
)

func fetchCmd(ctx context.Context, src todolist.Source) tea.Cmd {
	return func() tea.Msg {
		todos, err := src.FetchAll(ctx)
		return fetchedMsg{todos: todos, err: err}
	}
}

func createCmd(ctx context.Context, src todolist.Source, req createRequestMsg) tea.Cmd {
	return func() tea.Msg {
		td, err := src.Create(ctx, req.Text, req.Priority)
		return createdMsg{todo: td, err: err}
	}
}

func toggleCmd(ctx context.Context, src todolist.Source, id string) tea.Cmd {
	return func() tea.Msg {
		td, err := src.Toggle(ctx, id)
		return toggledMsg{todo: td, err: err}
	}
}

func deleteCmd(ctx context.Context, src todolist.Source, id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: id, err: src.Delete(ctx, id)}
	}
}

func clearCmd(ctx context.Context, src todolist.Source) tea.Cmd {
	return func() tea.Msg {
		n, err := src.DeleteCompleted(ctx)
		return clearedMsg{count: n, err: err}
	}
}
