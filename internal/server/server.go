// Package server serves the site over HTTP, rendering every request from
// the content directory so edits show up on reload.
package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/microcoso/microcoso/internal/content"
	"github.com/microcoso/microcoso/internal/theme"
)

// Timeouts of the HTTP server.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// PostStore is the subset of content.Store the server reads from.
type PostStore interface {
	Get(slug string) (*content.Post, error)
	List(ctx context.Context) ([]*content.Post, error)
}

// Renderer is the subset of theme.Theme the server renders with.
type Renderer interface {
	RenderIndex(w io.Writer, posts []*content.Post) error
	RenderPost(w io.Writer, post *content.Post) error
	RenderNotFound(w io.Writer, slug string) error
	Stylesheet() string
}

var (
	_ PostStore = (*content.Store)(nil)
	_ Renderer  = (*theme.Theme)(nil)
)

// Server routes requests to pages.
type Server struct {
	store    PostStore
	renderer Renderer
	logger   zerolog.Logger
}

// New creates a Server.
func New(store PostStore, renderer Renderer, logger zerolog.Logger) *Server {
	return &Server{store: store, renderer: renderer, logger: logger}
}

// Handler returns the routes wrapped in request logging:
//
//	GET /             post list, or one post with ?post=SLUG
//	GET /posts/SLUG   one post
//	GET /style.css    stylesheet
//
// Anything else, and an unknown slug, answers 404 with the not-found page.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /posts/{slug}", s.handlePost)
	mux.HandleFunc("GET /style.css", s.handleStyle)
	mux.HandleFunc("/", s.handleNotFound)
	return withRequestLogging(mux, s.logger)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("post") {
		s.servePost(w, r, r.URL.Query().Get("post"))
		return
	}

	posts, err := s.store.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK, func(buf io.Writer) error {
		return s.renderer.RenderIndex(buf, posts)
	})
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	s.servePost(w, r, r.PathValue("slug"))
}

func (s *Server) servePost(w http.ResponseWriter, r *http.Request, slug string) {
	post, err := s.store.Get(slug)
	switch {
	case errors.Is(err, content.ErrPostNotFound), errors.Is(err, content.ErrInvalidSlug):
		s.writeNotFound(w, r, content.SanitizeSlug(slug))
		return
	case err != nil:
		s.serverError(w, r, err)
		return
	}

	if !post.ModTime.IsZero() {
		w.Header().Set("Last-Modified", post.ModTime.UTC().Format(http.TimeFormat))
	}
	s.writePage(w, r, http.StatusOK, func(buf io.Writer) error {
		return s.renderer.RenderPost(buf, post)
	})
}

func (s *Server) handleStyle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = io.WriteString(w, s.renderer.Stylesheet())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeNotFound(w, r, "")
}

func (s *Server) writeNotFound(w http.ResponseWriter, r *http.Request, slug string) {
	s.writePage(w, r, http.StatusNotFound, func(buf io.Writer) error {
		return s.renderer.RenderNotFound(buf, slug)
	})
}

// writePage renders into a buffer so a template failure can still answer 500.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("rendering page")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ListenAndServe starts an HTTP server and shuts it down gracefully when ctx
// is canceled. Requests in flight keep ctx values but not its cancellation,
// so they drain within shutdownTimeout.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          log.New(logger, "", 0),
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	logger.Info().Str("addr", addr).Msg("serving")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
