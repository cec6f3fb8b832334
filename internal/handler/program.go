package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/rec-registration/internal/domain"
)

// ListPrograms handles GET /programs.
func (s *Server) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.programs.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "list programs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch programs")
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

// CreateProgram handles POST /programs.
// Returns 201 with the new id, or 400 when a required field is missing.
func (s *Server) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var body programRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.programs.Create(r.Context(), domain.Program{
		Name:        body.Name,
		Location:    body.Location,
		Description: body.Description,
		StartDate:   body.StartDate,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Repeats:     bool(body.Repeats),
		RepeatType:  body.RepeatType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		s.log.ErrorContext(r.Context(), "create program failed", "error", err)
		writeError(w, http.StatusInternalServerError, rootMessage(err))
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{Message: "Program created successfully", ID: created.ID})
}
