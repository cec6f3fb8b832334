package service

import (
	"context"
	"fmt"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/repo"
)

// RosterService implements registration, mock payment and roster reads.
// Both write paths insert a new entry; nothing ever flips an existing
// entry from unpaid to paid.
type RosterService struct {
	repo repo.RosterRepo
}

// NewRosterService constructs a RosterService backed by the provided RosterRepo.
func NewRosterService(r repo.RosterRepo) *RosterService {
	return &RosterService{repo: r}
}

// Register validates and stores an unpaid roster entry.
// Any Paid value on the input is ignored.
func (s *RosterService) Register(ctx context.Context, entry domain.RosterEntry) (domain.RosterEntry, error) {
	if err := checkFields(entry); err != nil {
		return domain.RosterEntry{}, err
	}
	entry.Paid = false

	result, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.RosterEntry{}, fmt.Errorf("service.RosterService.Register: %w", err)
	}
	return result, nil
}

// Pay validates the entry and the mock card details, then stores a new
// roster entry with Paid set. The card number must be exactly 16 digits;
// no Luhn check or gateway call is made and the card is not persisted.
func (s *RosterService) Pay(ctx context.Context, entry domain.RosterEntry, payment domain.Payment) (domain.RosterEntry, error) {
	if err := checkFields(entry, payment); err != nil {
		return domain.RosterEntry{}, err
	}
	entry.Paid = true

	result, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.RosterEntry{}, fmt.Errorf("service.RosterService.Pay: %w", err)
	}
	return result, nil
}

// List returns every roster entry.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RosterService) List(ctx context.Context) ([]domain.RosterEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RosterService.List: %w", err)
	}
	if entries == nil {
		return []domain.RosterEntry{}, nil
	}
	return entries, nil
}

// ListByProgram returns the roster for one program joined to its name.
// All entries are returned unless paidOnly is set.
func (s *RosterService) ListByProgram(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error) {
	rows, err := s.repo.ListByProgram(ctx, programID, paidOnly)
	if err != nil {
		return nil, fmt.Errorf("service.RosterService.ListByProgram: %w", err)
	}
	if rows == nil {
		return []domain.RosterRow{}, nil
	}
	return rows, nil
}
