package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// CookieName is the session cookie.
const CookieName = "onboard_session"

const maxBodyBytes = 1 << 20

// Ports aggregates what the web server needs.
type Ports struct {
	// Pool hands out dispatchers per API key.
	Pool driving.DispatcherPool

	// Sessions stores per-browser state.
	Sessions driven.SessionStore

	// DefaultKey is used for sessions that have not entered a key.
	DefaultKey string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Pool == nil {
		return ErrMissingPool
	}
	if p.Sessions == nil {
		return ErrMissingSessions
	}
	return nil
}

// Server is the HTTP adapter for the onboarding UI.
type Server struct {
	ports *Ports

	mu   sync.Mutex
	keys map[string]string
}

// NewServer creates a web server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	return &Server{ports: ports, keys: make(map[string]string)}, nil
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":            true,
			"time":          time.Now().UTC().Format(time.RFC3339Nano),
			"authenticated": s.ports.Pool.Actions().Authenticated(),
		})
	})

	mux.HandleFunc("POST /api/key", s.handleKey)
	mux.HandleFunc("POST /api/onboard", s.handleOnboard)
	mux.HandleFunc("POST /api/ask", s.handleAsk)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("GET /api/session/export", s.handleExport)

	registerUI(mux)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("Serving onboarding UI on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := readJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	sess := s.session(w, r)
	key := strings.TrimSpace(body.APIKey)

	s.mu.Lock()
	if key == "" {
		delete(s.keys, sess.ID)
	} else {
		s.keys[sess.ID] = key
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "has_key": s.apiKey(sess.ID) != ""})
}

func (s *Server) handleOnboard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := readJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": domain.MsgEnterName})
		return
	}

	sess := s.session(w, r)
	d := s.ports.Pool.ForKey(r.Context(), s.apiKey(sess.ID), sess)
	status := d.RunOnboardingSequence(r.Context(), sess, name)

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "status": status})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := readJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	query := strings.TrimSpace(body.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "missing query"})
		return
	}

	sess := s.session(w, r)
	d := s.ports.Pool.ForKey(r.Context(), s.apiKey(sess.ID), sess)
	answer := d.Ask(r.Context(), sess, query)

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "answer": answer})
}

// traceLine is a trace entry with its rendered form.
type traceLine struct {
	domain.TraceEntry
	Line string `json:"line"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	entries := sess.TraceNewestFirst()
	trace := make([]traceLine, len(entries))
	for i, e := range entries {
		trace[i] = traceLine{TraceEntry: e, Line: e.String()}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":            true,
		"session_id":    sess.ID,
		"trace":         trace,
		"chat":          sess.Chat(),
		"has_key":       s.apiKey(sess.ID) != "",
		"authenticated": s.ports.Pool.Actions().Authenticated(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "json"
	}

	sess := s.session(w, r)
	snap := sess.Snapshot()

	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(snap, "", "  ")
		contentType = "application/json; charset=utf-8"
	case "yaml", "yml":
		format = "yaml"
		data, err = yaml.Marshal(snap)
		contentType = "application/yaml; charset=utf-8"
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "unsupported format: " + format})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="onboard-session-%s.%s"`, sess.ID, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// session returns the caller's session, issuing a cookie on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *domain.Session {
	id := ""
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	sess, created := s.ports.Sessions.GetOrCreate(id)
	if created {
		logger.Debug("Session %s started", id)
	}
	return sess
}

func (s *Server) apiKey(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key, ok := s.keys[sessionID]; ok {
		return key
	}
	return s.ports.DefaultKey
}

func readJSON(r *http.Request, dst any) error {
	if r == nil || r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		b = []byte("{}")
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	b, err := json.Marshal(v)
	if err != nil {
		_, _ = w.Write([]byte(`{"ok":false,"error":"failed to marshal json"}`))
		return
	}
	_, _ = w.Write(append(b, '\n'))
}
