package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chromasynth/go-seadream/internal/playground"
)

// API response types. The error envelope intentionally matches the
// original backend ({"detail": ...}) so existing clients keep working.

type generateResponse struct {
	Session playground.Session `json:"session"`
}

type itemsResponse struct {
	Items []playground.Session `json:"items"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type detailResponse struct {
	Detail any `json:"detail"`
}

type validationDetail struct {
	Message       string         `json:"message"`
	MissingFields []MissingField `json:"missing_fields"`
}

type likeRequest struct {
	Liked bool `json:"liked"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error response in the backend's detail shape.
func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// handleRoot reports liveness.
func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// handleGenerate runs one generation and stores the resulting session.
func (s *HTTPServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "error"
	defer func() {
		generateRequestsTotal.WithLabelValues(status).Inc()
		generateDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	var req playground.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Brief) == "" {
		writeDetail(w, http.StatusBadRequest, "Briefing text cannot be empty.")
		return
	}

	generated, err := s.generator.Generate(req.Brief, req.Theme)
	if err != nil {
		var themeErr *UnsupportedThemeError
		var incomplete *IncompleteError
		switch {
		case errors.As(err, &themeErr):
			writeDetail(w, http.StatusBadRequest, "Unsupported theme '"+themeErr.Theme+"'.")
		case errors.As(err, &incomplete):
			status = "incomplete"
			writeDetail(w, http.StatusUnprocessableEntity, validationDetail{
				Message:       "Generated payload missing required fields.",
				MissingFields: incomplete.Missing,
			})
		default:
			writeDetail(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	model := req.Model
	if model == "" {
		model = "models/gemini-2.5-pro"
	}

	stored, err := s.store.Add(playground.Session{
		Brief:              req.Brief,
		Theme:              req.Theme,
		ModelName:          model,
		Blueprint:          generated.Blueprint,
		Prompts:            generated.Prompts,
		ChecklistQuestions: generated.Checklist,
		Notes:              generated.Notes,
		Tags:               req.Tags,
		CaseID:             req.CaseID,
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	status = "ok"
	s.refreshSessionGauge()
	writeJSON(w, http.StatusOK, generateResponse{Session: stored})
}

// handleHistory lists all sessions, newest first.
func (s *HTTPServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.List()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []playground.Session{}
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

// handleReferences lists the liked sessions.
func (s *HTTPServer) handleReferences(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.References()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []playground.Session{}
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

// handleLike toggles a session's liked flag.
func (s *HTTPServer) handleLike(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		writeDetail(w, http.StatusBadRequest, "Session ID is required.")
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		likeTogglesTotal.WithLabelValues("invalid").Inc()
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := s.store.SetLike(sessionID, req.Liked)
	if errors.Is(err, ErrSessionNotFound) {
		likeTogglesTotal.WithLabelValues("not_found").Inc()
		writeDetail(w, http.StatusNotFound, "Session not found.")
		return
	} else if err != nil {
		likeTogglesTotal.WithLabelValues("error").Inc()
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	likeTogglesTotal.WithLabelValues(strconv.FormatBool(req.Liked)).Inc()
	writeJSON(w, http.StatusOK, generateResponse{Session: updated})
}

func (s *HTTPServer) refreshSessionGauge() {
	if items, err := s.store.List(); err == nil {
		storedSessions.Set(float64(len(items)))
	}
}
