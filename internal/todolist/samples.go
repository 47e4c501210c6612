package todolist

import (
	"time"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// Samples returns the demo entries the in-memory variant can start from.
func Samples() []model.Todo {
	day := func(d int) time.Time { return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC) }
	return []model.Todo{
		{ID: "1", Text: "Build an amazing Todo List app", Completed: true, CreatedAt: day(10), Priority: model.PriorityHigh},
		{ID: "2", Text: "Design a modern and beautiful UI", Completed: true, CreatedAt: day(10), Priority: model.PriorityHigh},
		{ID: "3", Text: "Add filter functionality for todos", CreatedAt: day(11), Priority: model.PriorityMedium},
		{ID: "4", Text: "Implement add and delete features", CreatedAt: day(11), Priority: model.PriorityMedium},
		{ID: "5", Text: "Test the application thoroughly", CreatedAt: day(11), Priority: model.PriorityLow},
	}
}
