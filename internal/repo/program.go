// Package repo contains all database access logic for the recreation programs API.
// Each resource has its own file with an interface and a SQL implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkordes/rec-registration/internal/domain"
)

// db is the minimal interface satisfied by *store.DB, *sql.DB and *sql.Tx.
// Queries use "?" placeholders; *store.DB rebinds them for Postgres.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ProgramRepo defines the persistence operations for Programs.
// The service layer depends on this interface, not the concrete SQL implementation,
// which allows the service to be unit-tested with a mock.
type ProgramRepo interface {
	// Create inserts a new program and returns it with the store-assigned ID.
	Create(ctx context.Context, program domain.Program) (domain.Program, error)

	// List returns every program ordered by id.
	List(ctx context.Context) ([]domain.Program, error)
}

// sqlProgramRepo is the database/sql implementation of ProgramRepo.
type sqlProgramRepo struct {
	db db
}

// NewProgramRepo constructs a ProgramRepo backed by the provided db handle.
func NewProgramRepo(db db) ProgramRepo {
	return &sqlProgramRepo{db: db}
}

// Create inserts a program row. Description and RepeatType are stored as
// NULL when nil; Repeats is stored as 0/1.
func (r *sqlProgramRepo) Create(ctx context.Context, program domain.Program) (domain.Program, error) {
	const q = `
		INSERT INTO programs (name, location, description, start_date, start_time, end_time, repeats, repeat_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, q,
		program.Name,
		program.Location,
		program.Description, // nil becomes NULL
		program.StartDate,
		program.StartTime,
		program.EndTime,
		boolToFlag(program.Repeats),
		program.RepeatType,
	).Scan(&program.ID)
	if err != nil {
		return domain.Program{}, fmt.Errorf("repo.ProgramRepo.Create: %w", err)
	}
	return program, nil
}

// List returns all programs in insertion order.
func (r *sqlProgramRepo) List(ctx context.Context) ([]domain.Program, error) {
	const q = `
		SELECT id, name, location, description, start_date, start_time, end_time, repeats, repeat_type
		FROM programs
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ProgramRepo.List: %w", err)
	}
	defer rows.Close()

	var programs []domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProgramRepo.List: scan: %w", err)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProgramRepo.List: rows: %w", err)
	}

	return programs, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanProgram maps a single programs row into a domain.Program.
// It handles the nullable text columns and the 0/1 repeats flag.
func scanProgram(s scanner) (domain.Program, error) {
	var (
		p           domain.Program
		description sql.NullString
		repeats     sql.NullInt64
		repeatType  sql.NullString
	)

	err := s.Scan(&p.ID, &p.Name, &p.Location, &description,
		&p.StartDate, &p.StartTime, &p.EndTime, &repeats, &repeatType)
	if err != nil {
		return domain.Program{}, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	p.Repeats = repeats.Valid && repeats.Int64 != 0
	if repeatType.Valid {
		p.RepeatType = &repeatType.String
	}

	return p, nil
}

// boolToFlag converts a Go bool into the 0/1 integer the schema stores.
func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
