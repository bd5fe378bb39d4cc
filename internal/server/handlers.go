package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jlindqvist/fundscout/internal/pipeline"
	"github.com/jlindqvist/fundscout/internal/types"
)

// SearchRequest represents the request body for /search and /search/stream
type SearchRequest struct {
	Description string `json:"description" validate:"required,min=3"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleSearch runs the whole pipeline synchronously and returns the final
// summary.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	summary, err := s.pipe.Run(r.Context(), req.Description, nil)
	if err != nil {
		var runErr *pipeline.RunError
		if errors.As(err, &runErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, runErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.persistRun(r, req.Description, summary)
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleSearchStream runs the pipeline and streams its events via SSE. The
// complete event is always the final frame of a successful run.
func (s *Server) handleSearchStream(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	events := make(chan types.Event, 64)
	done := make(chan struct{})

	var summary *types.RunSummary
	go func() {
		defer close(done)
		summary, _ = s.pipe.Run(r.Context(), req.Description, events)
	}()

	// Single consumer drains the event channel onto the wire.
	for event := range events {
		if err := sse.WritePipelineEvent(event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}
	<-done

	if summary != nil {
		s.persistRun(r, req.Description, summary)
	}
}

// handleGetRun returns one persisted run with its full summary.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Run persistence is disabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleListRuns returns recent persisted runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Run persistence is disabled")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	runs, err := s.db.ListRuns(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, runs)
}

// handleHealth is a liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// persistRun stores a finished run when persistence is enabled. Failures are
// logged, never surfaced; persistence is best-effort.
func (s *Server) persistRun(r *http.Request, description string, summary *types.RunSummary) {
	if s.db == nil || summary == nil {
		return
	}
	if _, err := s.db.SaveRun(r.Context(), description, "complete", summary); err != nil {
		log.Printf("Failed to persist run: %v", err)
	}
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// errorResponse writes a JSON error response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
