// Package api is the data-access layer for the todo REST service. Each method
// issues exactly one request; there is no retry and no cancellation beyond the
// caller's context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// DefaultBaseURL is used when no api_url is configured.
const DefaultBaseURL = "http://localhost:5000/api/todos"

// Client talks to one todo collection rooted at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	logger  *log.Logger
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient. Its Timeout is the only request
// deadline applied besides the caller's context.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithToken sends "Authorization: Bearer <token>" on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = StripBearer(strings.TrimSpace(token)) }
}

func WithLogger(l *log.Logger) Option { return func(c *Client) { c.logger = l } }

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// FetchAll returns the collection in service-defined order. Entries that do
// not decode are skipped; data that is not an array yields an empty list.
func (c *Client) FetchAll(ctx context.Context) ([]model.Todo, error) {
	const op = "fetch todos"
	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodGet, "", nil, &raw); err != nil {
		return nil, err
	}
	todos := []model.Todo{}
	var items []json.RawMessage
	if !c.decodeData(op, raw, &items) {
		return todos, nil
	}
	for _, it := range items {
		var td model.Todo
		if c.decodeData(op, it, &td) {
			todos = append(todos, td)
		}
	}
	return todos, nil
}

func (c *Client) Create(ctx context.Context, text string, p model.Priority) (model.Todo, error) {
	body := CreateRequest{Text: text, Priority: p}
	return c.entry(ctx, "create todo", http.MethodPost, "", body)
}

func (c *Client) Toggle(ctx context.Context, id string) (model.Todo, error) {
	return c.entry(ctx, "toggle todo", http.MethodPatch, "/"+url.PathEscape(id)+"/toggle", nil)
}

// Update sends only the fields set in req.
func (c *Client) Update(ctx context.Context, id string, req UpdateRequest) (model.Todo, error) {
	return c.entry(ctx, "update todo", http.MethodPut, "/"+url.PathEscape(id), req)
}

// Delete succeeds on any 2xx status; the body is not read.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete todo", http.MethodDelete, "/"+url.PathEscape(id), nil, nil)
}

// DeleteCompleted removes every completed entry server-side and returns the
// reported count, 0 when the service omits it or sends something else.
func (c *Client) DeleteCompleted(ctx context.Context) (int, error) {
	const op = "delete completed todos"
	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodDelete, "/completed/all", nil, &raw); err != nil {
		return 0, err
	}
	var dc DeletedCount
	if !c.decodeData(op, raw, &dc) {
		return 0, nil
	}
	return dc.DeletedCount, nil
}

func (c *Client) Stats(ctx context.Context) (model.Stats, error) {
	const op = "fetch stats"
	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodGet, "/stats", nil, &raw); err != nil {
		return model.Stats{}, err
	}
	var s model.Stats
	if !c.decodeData(op, raw, &s) {
		return model.Stats{}, nil
	}
	return s, nil
}

func (c *Client) entry(ctx context.Context, op, method, path string, body any) (model.Todo, error) {
	var raw json.RawMessage
	if err := c.do(ctx, op, method, path, body, &raw); err != nil {
		return model.Todo{}, err
	}
	var td model.Todo
	if !c.decodeData(op, raw, &td) {
		err := fmt.Errorf("%s: %w", op, ErrNoData)
		c.logger.Error("error "+gerund(op), "err", err)
		return model.Todo{}, err
	}
	return td, nil
}

// decodeData reports whether raw held a value of v's shape. Absent or null
// data is not logged; anything else that fails to decode is.
func (c *Client) decodeData(op string, raw json.RawMessage, v any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		c.logger.Warn("unexpected data shape", "op", op, "err", err)
		return false
	}
	return true
}

// do runs one request. A non-2xx status fails without looking at the body.
// data receives the envelope's raw data field; it may be nil when the body is
// irrelevant.
func (c *Client) do(ctx context.Context, op, method, path string, body any, data *json.RawMessage) (err error) {
	defer func() {
		if err != nil {
			c.logger.Error("error "+gerund(op), "method", method, "path", path, "err", err)
		}
	}()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("request", "method", method, "url", req.URL.String())
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	if data == nil {
		return nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			// empty body: treated like an envelope without data
			return nil
		}
		return fmt.Errorf("%s: %w: %v", op, ErrMalformed, err)
	}
	if len(env.Message) > 0 {
		c.logger.Debug("response", "op", op, "message", string(env.Message))
	}
	*data = env.Data
	return nil
}

// gerund turns "fetch todos" into "fetching todos" for log lines.
func gerund(op string) string {
	verb, rest, _ := strings.Cut(op, " ")
	switch {
	case strings.HasSuffix(verb, "e"):
		verb = strings.TrimSuffix(verb, "e") + "ing"
	default:
		verb += "ing"
	}
	if rest == "" {
		return verb
	}
	return verb + " " + rest
}

// StripBearer drops a leading "Bearer " so tokens pasted with it still work.
func StripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
