package model

import (
	"fmt"
	"strings"
)

// Filter restricts which entries are displayed. It never mutates the collection.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the view states in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

func (f Filter) Keep(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return true
}

// Apply returns the entries kept by f in their existing order.
// The input slice is not modified.
func (f Filter) Apply(todos []Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if f.Keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) Label() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	for i, g := range Filters {
		if g == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Stats is always derived from the full collection, never the filtered view.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

func ComputeStats(todos []Todo) Stats {
	var s Stats
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	s.Total = s.Active + s.Completed
	return s
}
