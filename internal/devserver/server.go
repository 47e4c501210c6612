// Package devserver is a stub of the todo REST service, kept in memory. It
// backs `todo devserver` for local work and the client tests.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

// DefaultPrefix matches the path part of api.DefaultBaseURL.
const DefaultPrefix = "/api/todos"

type Options struct {
	Addr   string       // ex: ":5000"
	Prefix string       // mount point of the collection
	Token  string       // when set, requests need "Authorization: Bearer <Token>"
	Seed   []model.Todo // initial collection, newest first
}

// Server wraps the HTTP server and its store.
type Server struct {
	http   *http.Server
	logger *zap.Logger
	store  *Store
}

func New(logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	store := NewStore(opts.Seed)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))
	if opts.Token != "" {
		r.Use(requireBearer(opts.Token))
	}
	r.Route(opts.Prefix, func(r chi.Router) {
		h := &handlers{store: store}
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/stats", h.stats)
		r.Delete("/completed/all", h.deleteCompleted)
		r.Patch("/{id}/toggle", h.toggle)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})

	return &Server{
		http: &http.Server{
			Addr:              opts.Addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		store:  store,
	}
}

func (s *Server) Handler() http.Handler { return s.http.Handler }
func (s *Server) Store() *Store         { return s.store }

// Start blocks until the server fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("devserver listening", zap.String("addr", s.http.Addr))
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("devserver shutting down")
	return s.http.Shutdown(ctx)
}

// NewLogger builds the access logger: zap development config with colored
// levels when pretty, JSON production config otherwise.
func NewLogger(level string, pretty bool) (*zap.Logger, error) {
	var cfg zap.Config
	if pretty {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}
