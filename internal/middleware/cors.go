// Package middleware provides reusable HTTP middleware for the recreation programs API.
package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/cors"
)

// corsRejection is the body sent when a request's Origin is not allowed.
const corsRejection = "Not allowed by CORS"

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
//
// Unlike plain rs/cors, a request carrying an Origin that is neither on the
// list nor the server's own origin is answered with 403 and never reaches
// next. Requests without an Origin header (curl, server-to-server) pass.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return func(next http.Handler) http.Handler {
		h := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && !c.OriginAllowed(r) && !sameOrigin(r, origin) {
				writeError(w, http.StatusForbidden, corsRejection)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

// sameOrigin reports whether origin names the host the request was sent to.
func sameOrigin(r *http.Request, origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Host == r.Host
}

// writeError writes {"error": message} with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
