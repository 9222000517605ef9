// Package server exposes the translation service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/valpere/promptran/internal/catalog"
	"github.com/valpere/promptran/internal/translation"
)

// maxBodyBytes bounds the size of a translate request body.
const maxBodyBytes = 1 << 20

// Translator is the subset of translation.Service used by the server.
type Translator interface {
	Translate(ctx context.Context, req translation.Request) (*translation.Result, error)
	Provider() string
	Model() string
}

type Server struct {
	translator Translator
	catalog    catalog.Catalog
	logger     *zap.Logger
}

func New(translator Translator, cat catalog.Catalog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		translator: translator,
		catalog:    cat,
		logger:     logger,
	}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("GET /api/options", s.handleOptions)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.withRequestLog(mux)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, translation.Result{Error: "Request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, translation.Result{Error: "Invalid request body"})
		return
	}

	req, err := translation.ParseRequest(body)
	if err == nil {
		var res *translation.Result
		res, err = s.translator.Translate(r.Context(), req)
		if err == nil {
			writeJSON(w, http.StatusOK, res)
			return
		}
	}

	status := StatusFor(err)
	if status < http.StatusInternalServerError {
		s.logger.Info("rejected translate request",
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err))
	}
	writeJSON(w, status, translation.ResultFor(err))
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": s.translator.Provider(),
		"model":    s.translator.Model(),
	})
}

// StatusFor maps a translate error to an HTTP status code.
func StatusFor(err error) int {
	var missing *translation.MissingFieldError
	var malformed *translation.MalformedPayloadError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &missing), errors.As(err, &malformed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		s.logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
