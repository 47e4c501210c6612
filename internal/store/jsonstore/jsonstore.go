package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// JSON seed files for the in-memory list. Single file, human-readable.
// The list never writes back here; Save is only used by `todo export`.

// Load reads entries from path. A missing file yields an empty list.
func Load(path string) ([]model.Todo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := validate(todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func Save(path string, todos []model.Todo) error {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func validate(todos []model.Todo) error {
	seen := make(map[string]bool, len(todos))
	for i, t := range todos {
		if t.ID == "" {
			return fmt.Errorf("entry %d: missing id", i+1)
		}
		if seen[t.ID] {
			return fmt.Errorf("entry %d: duplicate id %q", i+1, t.ID)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Text) == "" {
			return fmt.Errorf("entry %d: empty text", i+1)
		}
		if t.Priority != "" {
			if _, err := model.ParsePriority(string(t.Priority)); err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
		}
	}
	return nil
}
