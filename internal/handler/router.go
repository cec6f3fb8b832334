package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/rec-registration/internal/middleware"
)

// RouterOptions configures the middleware chain built by NewRouter.
type RouterOptions struct {
	// Logger receives one line per request. Nil uses slog.Default().
	Logger *slog.Logger
	// CORSOrigins is the cross-origin allow-list. Empty allows every origin.
	CORSOrigins []string
	// MaxBodyBytes caps request bodies. Zero disables the cap.
	MaxBodyBytes int64
}

// NewRouter returns the full HTTP handler for the API.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer →
// CORS → MaxBodySize. Requests rejected by CORS or the size cap are still logged.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))
	}

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/programs", s.ListPrograms)
	r.Post("/programs", s.CreateProgram)

	r.Post("/upload", s.UploadImage)
	r.Get("/uploads/{filename}", s.GetImage)
	r.Head("/uploads/{filename}", s.GetImage)

	r.Post("/register", s.Register)
	r.Post("/pay", s.Pay)

	r.Get("/roster", s.ListRoster)
	r.Get("/roster/{program_id}", s.ListRosterByProgram)

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)
	return r
}
