// Package handler implements the HTTP handlers for the recreation programs API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (program.go, roster.go, upload.go, ...) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/upload"
)

// ProgramServicer defines the program operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type ProgramServicer interface {
	Create(ctx context.Context, program domain.Program) (domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
}

// RosterServicer defines the registration and roster operations the handlers depend on.
type RosterServicer interface {
	Register(ctx context.Context, entry domain.RosterEntry) (domain.RosterEntry, error)
	Pay(ctx context.Context, entry domain.RosterEntry, payment domain.Payment) (domain.RosterEntry, error)
	List(ctx context.Context) ([]domain.RosterEntry, error)
	ListByProgram(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error)
}

// ImageStore persists uploaded program images and opens them for serving.
// Open must return domain.ErrNotFound for unknown names.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (upload.File, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies shared by every handler.
// Wire it in main.go via NewRouter.
type Server struct {
	programs ProgramServicer
	roster   RosterServicer
	images   ImageStore
	db       Pinger
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// Any servicer may be nil in tests that do not exercise its routes.
// A nil logger falls back to slog.Default().
func NewServer(programs ProgramServicer, roster RosterServicer, images ImageStore, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		programs: programs,
		roster:   roster,
		images:   images,
		db:       db,
		log:      log,
	}
}
