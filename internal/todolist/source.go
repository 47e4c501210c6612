package todolist

import (
	"context"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// Source is the remote collection behind the backend variant. Every call is
// one request; the List is only updated from a successful result.
type Source interface {
	FetchAll(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, text string, p model.Priority) (model.Todo, error)
	Toggle(ctx context.Context, id string) (model.Todo, error)
	Delete(ctx context.Context, id string) error
	DeleteCompleted(ctx context.Context) (int, error)
}
