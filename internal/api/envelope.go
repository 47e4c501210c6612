package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// envelope wraps every response body from the service. Fields stay raw so a
// field of the wrong type cannot fail the call; only data is ever decoded.
type envelope struct {
	Success json.RawMessage `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Error   json.RawMessage `json:"error"`
}

type CreateRequest struct {
	Text     string         `json:"text"`
	Priority model.Priority `json:"priority"`
}

// UpdateRequest carries optional fields; nil means "leave unchanged".
type UpdateRequest struct {
	Text      *string         `json:"text,omitempty"`
	Completed *bool           `json:"completed,omitempty"`
	Priority  *model.Priority `json:"priority,omitempty"`
}

type DeletedCount struct {
	DeletedCount int `json:"deletedCount"`
}

var (
	// ErrMalformed means a 2xx response whose body was not a JSON object.
	ErrMalformed = errors.New("malformed response body")
	// ErrNoData means a 2xx envelope without a usable entry where one is needed.
	ErrNoData = errors.New("response carried no data")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to %s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}
