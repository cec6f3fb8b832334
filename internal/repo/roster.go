package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkordes/rec-registration/internal/domain"
)

// RosterRepo defines the persistence operations for roster entries.
// Entries are insert-only: there is no update or delete.
type RosterRepo interface {
	// Create inserts a roster entry, including its paid flag, and returns it
	// with the store-assigned ID.
	Create(ctx context.Context, entry domain.RosterEntry) (domain.RosterEntry, error)

	// List returns every roster entry ordered by id.
	List(ctx context.Context) ([]domain.RosterEntry, error)

	// ListByProgram joins roster entries for programID to their program.
	// When paidOnly is set only entries with paid = 1 are returned.
	// Entries whose program does not exist are never returned.
	ListByProgram(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error)
}

// sqlRosterRepo is the database/sql implementation of RosterRepo.
type sqlRosterRepo struct {
	db db
}

// NewRosterRepo constructs a RosterRepo backed by the provided db handle.
func NewRosterRepo(db db) RosterRepo {
	return &sqlRosterRepo{db: db}
}

// Create inserts a new roster row and returns it with its ID populated.
func (r *sqlRosterRepo) Create(ctx context.Context, entry domain.RosterEntry) (domain.RosterEntry, error) {
	const q = `
		INSERT INTO roster (program_id, full_name, age, special_notes, paid)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, q,
		entry.ProgramID,
		entry.FullName,
		entry.Age,
		entry.SpecialNotes,
		boolToFlag(entry.Paid),
	).Scan(&entry.ID)
	if err != nil {
		return domain.RosterEntry{}, fmt.Errorf("repo.RosterRepo.Create: %w", err)
	}
	return entry, nil
}

// List returns all roster entries in insertion order.
func (r *sqlRosterRepo) List(ctx context.Context) ([]domain.RosterEntry, error) {
	const q = `
		SELECT id, program_id, full_name, age, special_notes, paid
		FROM roster
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.List: %w", err)
	}
	defer rows.Close()

	var entries []domain.RosterEntry
	for rows.Next() {
		var (
			e     domain.RosterEntry
			notes sql.NullString
			paid  sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.ProgramID, &e.FullName, &e.Age, &notes, &paid); err != nil {
			return nil, fmt.Errorf("repo.RosterRepo.List: scan: %w", err)
		}
		e.SpecialNotes = notes.String
		e.Paid = paid.Valid && paid.Int64 != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.List: rows: %w", err)
	}

	return entries, nil
}

// ListByProgram returns the joined roster for one program in insertion order.
func (r *sqlRosterRepo) ListByProgram(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error) {
	q := `
		SELECT r.id, r.program_id, p.name, r.full_name, r.age, r.special_notes, r.paid
		FROM roster r
		JOIN programs p ON r.program_id = p.id
		WHERE r.program_id = ?`
	if paidOnly {
		q += ` AND r.paid = 1`
	}
	q += ` ORDER BY r.id`

	rows, err := r.db.QueryContext(ctx, q, programID)
	if err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.ListByProgram: %w", err)
	}
	defer rows.Close()

	var out []domain.RosterRow
	for rows.Next() {
		var (
			row   domain.RosterRow
			notes sql.NullString
			paid  sql.NullInt64
		)
		err := rows.Scan(&row.ID, &row.ProgramID, &row.ProgramName,
			&row.FullName, &row.Age, &notes, &paid)
		if err != nil {
			return nil, fmt.Errorf("repo.RosterRepo.ListByProgram: scan: %w", err)
		}
		row.SpecialNotes = notes.String
		row.Paid = paid.Valid && paid.Int64 != 0
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.ListByProgram: rows: %w", err)
	}

	return out, nil
}
