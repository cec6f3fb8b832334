package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/rec-registration/internal/domain"
)

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// createdResponse is the JSON body returned after a row is inserted.
type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // headers are already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(v)
}

// writeError replies with {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// routeNotFound is the uniform reply for unmatched routes and methods.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}

// decodeJSON reads the request body into v and reports whether the handler
// should continue. An empty body decodes as an empty object, so missing
// fields are reported by validation rather than as a malformed body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation.
// e.g. "validation error: missing required fields: name" → "missing required fields: name"
func validationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

// rootMessage returns the message of the innermost wrapped error, i.e. the
// driver's own text without the repo/service call-site prefixes.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
