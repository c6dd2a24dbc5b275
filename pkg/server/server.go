// Package server hosts a preview HTTP surface that renders pages on demand in
// either vocabulary.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/orchestrator"
	"github.com/goliatone/go-formcore/pkg/pages"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/timezones"
)

// MsgpackContentType selects the encoded tree instead of the document.
const MsgpackContentType = "application/msgpack"

const maxBodyBytes = 1 << 20

// LocaleMatcher resolves Accept-Language preferences to a supported locale.
type LocaleMatcher interface {
	Match(preferences ...string) string
}

// Option customises the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLocaleMatcher negotiates the locale from Accept-Language when the
// request has no explicit locale parameter.
func WithLocaleMatcher(matcher LocaleMatcher) Option {
	return func(s *Server) {
		s.matcher = matcher
	}
}

// Server renders pages through an orchestrator.
type Server struct {
	orch    *orchestrator.Orchestrator
	logger  zerolog.Logger
	matcher LocaleMatcher
	handler http.Handler
}

// New builds the server and its routes.
func New(orch *orchestrator.Orchestrator, options ...Option) *Server {
	s := &Server{
		orch:   orch,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("preview server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Get("/healthz", s.handleHealthz)
	router.Get("/pages", s.handlePages)
	router.Handle("/options/timezones", timezones.NewHandler())
	router.Get("/{vocabulary}/{page}", s.handlePage)
	router.Post("/{vocabulary}/{page}", s.handlePage)

	chain := alice.New(
		hlog.NewHandler(s.logger),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
	)
	return chain.Then(router)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePages(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{
		"pages":        s.orch.Pages(),
		"vocabularies": s.orch.Vocabularies(),
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := orchestrator.Request{
		Page:         chi.URLParam(r, "page"),
		Vocabulary:   chi.URLParam(r, "vocabulary"),
		Locale:       s.locale(r),
		ThemeName:    strings.TrimSpace(query.Get("theme")),
		ThemeVariant: strings.TrimSpace(query.Get("variant")),
	}
	if raw := query.Get("fragment"); raw != "" {
		req.Fragment, _ = strconv.ParseBool(raw)
	}

	if r.Method == http.MethodPost {
		var data pages.Data
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := decoder.Decode(&data); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Errorf("decode page data: %w", err))
			return
		}
		req.Data = data
	}
	req.Data.CSRFToken = query.Get("csrf")

	result, err := s.orch.Render(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			hlog.FromRequest(r).Error().Err(err).Str("page", req.Page).Msg("render failed")
		}
		respondError(w, status, err)
		return
	}

	w.Header().Set("Content-Language", result.Locale)
	w.Header().Set("Vary", "Accept, Accept-Language")
	if wantsMsgpack(r) {
		payload, err := markup.Marshal(result.Tree)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", MsgpackContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Document)
}

func (s *Server) locale(r *http.Request) string {
	if locale := strings.TrimSpace(r.URL.Query().Get("locale")); locale != "" {
		if s.matcher != nil {
			return s.matcher.Match(locale)
		}
		return locale
	}
	if s.matcher != nil {
		if header := r.Header.Get("Accept-Language"); header != "" {
			return s.matcher.Match(header)
		}
	}
	return ""
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, orchestrator.ErrUnknownPage), errors.Is(err, render.ErrUnknownVocabulary):
		return http.StatusNotFound
	case render.IsInvalidDestination(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func wantsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if strings.EqualFold(mediaType, MsgpackContentType) {
			return true
		}
	}
	return false
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
