// Package service contains the business logic for the recreation programs API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/repo"
)

// ProgramService implements business logic for Program operations.
type ProgramService struct {
	repo repo.ProgramRepo
}

// NewProgramService constructs a ProgramService backed by the provided ProgramRepo.
func NewProgramService(r repo.ProgramRepo) *ProgramService {
	return &ProgramService{repo: r}
}

// Create checks that name, location, start_date, start_time and end_time are
// present, then persists the program.
// Returns domain.ErrValidation without touching the repo if any are missing.
func (s *ProgramService) Create(ctx context.Context, program domain.Program) (domain.Program, error) {
	if err := checkFields(program); err != nil {
		return domain.Program{}, err
	}
	result, err := s.repo.Create(ctx, program)
	if err != nil {
		return domain.Program{}, fmt.Errorf("service.ProgramService.Create: %w", err)
	}
	return result, nil
}

// List returns all programs.
// Always returns a non-nil slice so the JSON response is an array, never null.
func (s *ProgramService) List(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ProgramService.List: %w", err)
	}
	if programs == nil {
		return []domain.Program{}, nil
	}
	return programs, nil
}
