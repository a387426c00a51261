// Package server exposes lexicon lookups and annotation over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// Handler serves the lexicon API backed by a lexicon.Manager.
type Handler struct {
	manager       *lexicon.Manager
	annotator     *lexicon.Annotator
	maxTextLength int
	logger        *log.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxTextLength bounds the text accepted by POST /annotate.
func WithMaxTextLength(n int) HandlerOption {
	return func(h *Handler) { h.maxTextLength = n }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) HandlerOption {
	return func(h *Handler) { h.logger = l }
}

// NewHandler creates a handler for m.
func NewHandler(m *lexicon.Manager, opts ...HandlerOption) *Handler {
	h := &Handler{
		manager:       m,
		annotator:     lexicon.NewAnnotator(m),
		maxTextLength: validate.DefaultMaxTextLength,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers all routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /annotate", h.Annotate)
	mux.HandleFunc("GET /pronunciation", h.Pronunciation)
	mux.HandleFunc("GET /languages", h.Languages)
	mux.HandleFunc("POST /reload", h.Reload)
	mux.HandleFunc("GET /healthz", h.Health)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Suggestions: verr.Suggestions})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// Annotate handles POST /annotate
func (h *Handler) Annotate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req AnnotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.Text(req.Text, h.maxTextLength); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := validate.LanguageCode(req.Language); err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnnotateResponse{
		Language:  req.Language,
		Text:      req.Text,
		Annotated: h.annotator.Annotate(req.Text, req.Language),
	})
}

// Pronunciation handles GET /pronunciation?word=...&language=...
func (h *Handler) Pronunciation(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	language := r.URL.Query().Get("language")
	if word == "" || language == "" {
		writeError(w, http.StatusBadRequest, "word and language are required")
		return
	}

	p, code, ok := h.manager.Snapshot().Resolve(word, language)
	if !ok {
		writeError(w, http.StatusNotFound, "no pronunciation found")
		return
	}
	writeJSON(w, http.StatusOK, PronunciationResponse{
		Word:          word,
		Language:      language,
		Pronunciation: p,
		Lexicon:       code,
	})
}

// Languages handles GET /languages
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	loaded := h.manager.SupportedLanguages()
	set := h.manager.Snapshot()

	supported := validate.Languages()
	resp := LanguagesResponse{
		Loaded:    loaded,
		Supported: make([]LanguageInfo, 0, len(supported)),
	}
	for _, l := range supported {
		_, has := set.Get(l.Code)
		resp.Supported = append(resp.Supported, LanguageInfo{Code: l.Code, Name: l.Name, HasLexicon: has})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Reload handles POST /reload
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	report := h.manager.Reload()
	h.logger.Info("Lexicons reloaded via API", "languages", len(report.Loaded), "failed", len(report.Failed))

	resp := ReloadResponse{
		Loaded:     report.Loaded,
		Skipped:    report.Skipped,
		Warnings:   report.Warnings,
		DurationMS: report.Duration.Milliseconds(),
	}
	if len(report.Failed) > 0 {
		resp.Failed = make(map[string]string, len(report.Failed))
		for path, err := range report.Failed {
			resp.Failed[path] = err.Error()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	set := h.manager.Snapshot()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Languages: set.Len(),
		LoadedAt:  set.LoadedAt(),
	})
}
