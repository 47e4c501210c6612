package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Todo is the domain model for a task entry.
// Only Completed changes after creation.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	Priority  Priority  `json:"priority,omitempty"`
}

// Priority is optional on an entry; the zero value means "none".
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the selectable priorities in picker order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// DefaultPriority is what the add form resets to.
const DefaultPriority = PriorityMedium

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q (want low, medium or high)", s)
}

// Label is the capitalised badge text ("Low", "Medium", "High").
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Next and Prev cycle through Priorities, wrapping at both ends.
func (p Priority) Next() Priority { return p.shift(1) }
func (p Priority) Prev() Priority { return p.shift(-1) }

func (p Priority) shift(by int) Priority {
	n := len(Priorities)
	for i, q := range Priorities {
		if q == p {
			return Priorities[((i+by)%n+n)%n]
		}
	}
	return DefaultPriority
}

// NewID derives an identifier from the creation time in milliseconds.
// taken reports ids already in use; the value is bumped until it is free.
func NewID(now time.Time, taken func(string) bool) string {
	n := now.UnixMilli()
	id := strconv.FormatInt(n, 10)
	for taken != nil && taken(id) {
		n++
		id = strconv.FormatInt(n, 10)
	}
	return id
}
