package domain

import "errors"

// ErrNotFound is returned when a requested resource does not exist,
// e.g. an uploaded image that was never stored.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a presence
// or format check (missing required field, malformed card number).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")
