package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/ldi/tasklist/embed/web_assets"
	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/pkg/models"
)

// Dispatcher runs fn on the thread that owns the page.
type Dispatcher interface {
	Do(ctx context.Context, fn func()) error
}

// Config is the configuration of the web server.
type Config struct {
	Page       *dom.TaskPage
	Dispatcher Dispatcher
	Logger     log.Logger
}

func (c *Config) defaults() error {
	if c.Page == nil {
		return fmt.Errorf("page is required: %w", models.ErrNotValid)
	}
	if c.Dispatcher == nil {
		return fmt.Errorf("dispatcher is required: %w", models.ErrNotValid)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

type Server struct {
	page       *dom.TaskPage
	dispatcher Dispatcher
	logger     log.Logger
	tmpl       *template.Template
	static     fs.FS

	mu       sync.Mutex
	server   *http.Server
	shutdown bool
}

func NewServer(cfg Config) (*Server, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tmpl, err := template.ParseFS(web_assets.Assets, "index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("could not parse page template: %w", err)
	}

	static, err := fs.Sub(web_assets.Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("could not load static assets: %w", err)
	}

	return &Server{
		page:       cfg.Page,
		dispatcher: cfg.Dispatcher,
		logger:     cfg.Logger,
		tmpl:       tmpl,
		static:     static,
	}, nil
}

// Handler returns the routes of the task page.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Page
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /tasks", s.handleSubmit)
	mux.HandleFunc("POST /tasks/{id}/delete", s.handleDelete)

	// API endpoints
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("GET /api/status", s.handleStatus)

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.static))))

	return mux
}

// Start serves the task page on addr until Shutdown is called. It returns
// http.ErrServerClosed after a shutdown, even one that happened before Start.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return http.ErrServerClosed
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.server = srv
	s.mu.Unlock()

	s.logger.Infof("Web server listening on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdown = true
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type pageData struct {
	dom.PageView
	RefreshSeconds int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var view dom.PageView
	if err := s.dispatcher.Do(r.Context(), func() { view = s.page.View() }); err != nil {
		s.fail(w, err)
		return
	}

	data := pageData{
		PageView:       view,
		RefreshSeconds: int(models.ErrorDisplayDuration / time.Second),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Errorf("Could not render page: %s", err)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := s.submit(r.Context(), r.PostFormValue(dom.IDTaskInput)); err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	var entries []models.TaskEntry
	err := s.dispatcher.Do(r.Context(), func() { entries = s.page.List.Entries() })
	s.respond(w, http.StatusOK, entries, err)
}

type createTaskRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	state, err := s.submit(r.Context(), req.Text)
	status := http.StatusCreated
	if !state.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	s.respond(w, status, state, err)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var status models.StatusView
	err := s.dispatcher.Do(r.Context(), func() { status = s.page.Status.View() })
	s.respond(w, http.StatusOK, status, err)
}

// submit types text into the input field and clicks the submit button. The
// error area is only left visible by a rejection.
func (s *Server) submit(ctx context.Context, text string) (models.ValidationState, error) {
	var state models.ValidationState
	err := s.dispatcher.Do(ctx, func() {
		s.page.Input.SetValue(text)
		s.page.Submit.Activate()

		if s.page.Status.Visible() {
			state = models.ValidationState{Outcome: models.ValidationRejected, Message: s.page.Status.Text()}
			return
		}
		state = models.ValidationState{Outcome: models.ValidationAccepted}
	})
	if err != nil {
		return state, err
	}

	s.logger.Debugf("Submit %s", state.Outcome)
	return state, nil
}

func (s *Server) delete(ctx context.Context, id string) error {
	var lookupErr error
	err := s.dispatcher.Do(ctx, func() {
		item, err := s.page.List.Item(id)
		if err != nil {
			lookupErr = err
			return
		}
		item.Trash().Activate()
	})
	if err != nil {
		return err
	}
	return lookupErr
}

func (s *Server) respond(w http.ResponseWriter, status int, data any, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.logger.Errorf("Request failed: %s", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
