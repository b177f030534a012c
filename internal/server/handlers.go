package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/catalog"
)

// runRequest mirrors the wire shape of a run call; unknown keys inside
// Parameters are ignored by the resolver.
type runRequest struct {
	Parameters map[string]any `json:"parameters"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.List())
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	details, err := s.reg.Details(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req runRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "read body: " + err.Error()})
		return
	}
	// An empty body means "run with defaults".
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json: " + err.Error()})
			return
		}
	}

	start := time.Now()
	result, err := s.runner.Run(id, req.Parameters)
	if err != nil {
		writeError(w, err)
		return
	}
	if s.cfg.Metrics != nil {
		s.cfg.Metrics.RecordRun(id, time.Since(start))
	}
	writeJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, catalog.ErrNotFound) {
		code = http.StatusNotFound
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
