package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/rec-registration/internal/domain"
)

// Register handles POST /register.
// The entry is stored unpaid.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var body registrationRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.roster.Register(r.Context(), body.entry())
	if err != nil {
		s.writeRosterError(w, r, "register failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{Message: "Registration successful", ID: created.ID})
}

// Pay handles POST /pay.
// The card is checked for shape only and the entry is stored as paid.
func (s *Server) Pay(w http.ResponseWriter, r *http.Request) {
	var body paymentRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.roster.Pay(r.Context(), body.entry(), domain.Payment{
		CardNumber: string(body.CardNumber),
		Expiration: string(body.Expiration),
		CVV:        string(body.CVV),
	})
	if err != nil {
		s.writeRosterError(w, r, "payment failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{Message: "Payment successful", ID: created.ID})
}

// ListRoster handles GET /roster.
func (s *Server) ListRoster(w http.ResponseWriter, r *http.Request) {
	entries, err := s.roster.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "list roster failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch roster")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListRosterByProgram handles GET /roster/{program_id}.
// Query parameters:
//
//	paid=true   only paid entries
//	format=csv  CSV attachment instead of JSON
func (s *Server) ListRosterByProgram(w http.ResponseWriter, r *http.Request) {
	var programID int64
	err := runtime.BindStyledParameterWithOptions("simple", "program_id", chi.URLParam(r, "program_id"), &programID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, "program_id must be an integer")
		return
	}

	var paid *bool
	if err := runtime.BindQueryParameter("form", true, false, "paid", r.URL.Query(), &paid); err != nil {
		writeError(w, http.StatusBadRequest, "paid must be true or false")
		return
	}
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeError(w, http.StatusBadRequest, "invalid format parameter")
		return
	}
	wantCSV := format != nil && *format == "csv"
	if format != nil && !wantCSV && *format != "json" {
		writeError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	rows, err := s.roster.ListByProgram(r.Context(), programID, paid != nil && *paid)
	if err != nil {
		s.log.ErrorContext(r.Context(), "list roster by program failed", "program_id", programID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch roster")
		return
	}

	if wantCSV {
		writeRosterCSV(w, programID, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeRosterError maps a Register/Pay failure to 400 or 500.
func (s *Server) writeRosterError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	s.log.ErrorContext(r.Context(), msg, "error", err)
	writeError(w, http.StatusInternalServerError, rootMessage(err))
}

func (b registrationRequest) entry() domain.RosterEntry {
	e := domain.RosterEntry{
		ProgramID: int64(b.ProgramID),
		FullName:  b.FullName,
		Age:       int(b.Age),
	}
	if b.SpecialNotes != nil {
		e.SpecialNotes = *b.SpecialNotes
	}
	return e
}
