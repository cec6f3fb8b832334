package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/repo"
	"github.com/pkordes/rec-registration/internal/service"
)

// mockRosterRepo is a hand-written test double for repo.RosterRepo.
type mockRosterRepo struct {
	create        func(ctx context.Context, e domain.RosterEntry) (domain.RosterEntry, error)
	list          func(ctx context.Context) ([]domain.RosterEntry, error)
	listByProgram func(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error)
}

func (m *mockRosterRepo) Create(ctx context.Context, e domain.RosterEntry) (domain.RosterEntry, error) {
	return m.create(ctx, e)
}
func (m *mockRosterRepo) List(ctx context.Context) ([]domain.RosterEntry, error) {
	return m.list(ctx)
}
func (m *mockRosterRepo) ListByProgram(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error) {
	return m.listByProgram(ctx, programID, paidOnly)
}

// compile-time check: mockRosterRepo must satisfy repo.RosterRepo.
var _ repo.RosterRepo = (*mockRosterRepo)(nil)

func validEntry() domain.RosterEntry {
	return domain.RosterEntry{ProgramID: 3, FullName: "Ada Lovelace", Age: 9}
}

func validPayment() domain.Payment {
	return domain.Payment{CardNumber: "4111111111111111", Expiration: "12/29", CVV: "123"}
}

// capturingRepo returns a mockRosterRepo that records the entry passed to
// Create and assigns it ID 42.
func capturingRepo(stored *domain.RosterEntry, called *bool) *mockRosterRepo {
	return &mockRosterRepo{
		create: func(_ context.Context, e domain.RosterEntry) (domain.RosterEntry, error) {
			*called = true
			e.ID = 42
			*stored = e
			return e, nil
		},
	}
}

// ---- Register --------------------------------------------------------------

func TestRosterService_Register_StoresUnpaid(t *testing.T) {
	var (
		stored domain.RosterEntry
		called bool
	)
	svc := service.NewRosterService(capturingRepo(&stored, &called))

	input := validEntry()
	input.Paid = true // must be ignored

	got, err := svc.Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.False(t, stored.Paid)
	assert.Equal(t, "", stored.SpecialNotes, "absent notes default to empty string")
}

func TestRosterService_Register_MissingRequired(t *testing.T) {
	cases := map[string]func(e *domain.RosterEntry){
		"program_id": func(e *domain.RosterEntry) { e.ProgramID = 0 },
		"full_name":  func(e *domain.RosterEntry) { e.FullName = "" },
		"age":        func(e *domain.RosterEntry) { e.Age = 0 },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			var (
				stored domain.RosterEntry
				called bool
			)
			svc := service.NewRosterService(capturingRepo(&stored, &called))

			input := validEntry()
			mutate(&input)
			_, err := svc.Register(context.Background(), input)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, field)
			assert.False(t, called)
		})
	}
}

// ---- Pay -------------------------------------------------------------------

func TestRosterService_Pay_StoresPaid(t *testing.T) {
	var (
		stored domain.RosterEntry
		called bool
	)
	svc := service.NewRosterService(capturingRepo(&stored, &called))

	got, err := svc.Pay(context.Background(), validEntry(), validPayment())

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.True(t, stored.Paid)
	assert.True(t, got.Paid)
}

// TestRosterService_Pay_RejectsBadCard verifies that any card number that is
// not exactly 16 ASCII digits is rejected without inserting a row.
func TestRosterService_Pay_RejectsBadCard(t *testing.T) {
	for _, card := range []string{
		"411111111111111",   // 15 digits
		"41111111111111111", // 17 digits
		"4111-1111-1111-1",  // 16 chars, not numeric
		"411111111111111a",
		"-411111111111111",
		"4111 111111111111",
	} {
		t.Run(card, func(t *testing.T) {
			var (
				stored domain.RosterEntry
				called bool
			)
			svc := service.NewRosterService(capturingRepo(&stored, &called))

			payment := validPayment()
			payment.CardNumber = card
			_, err := svc.Pay(context.Background(), validEntry(), payment)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "card number")
			assert.False(t, called)
		})
	}
}

func TestRosterService_Pay_MissingRequired(t *testing.T) {
	cases := map[string]func(e *domain.RosterEntry, p *domain.Payment){
		"full_name":   func(e *domain.RosterEntry, _ *domain.Payment) { e.FullName = "" },
		"card_number": func(_ *domain.RosterEntry, p *domain.Payment) { p.CardNumber = "" },
		"expiration":  func(_ *domain.RosterEntry, p *domain.Payment) { p.Expiration = "" },
		"cvv":         func(_ *domain.RosterEntry, p *domain.Payment) { p.CVV = "" },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			var (
				stored domain.RosterEntry
				called bool
			)
			svc := service.NewRosterService(capturingRepo(&stored, &called))

			entry, payment := validEntry(), validPayment()
			mutate(&entry, &payment)
			_, err := svc.Pay(context.Background(), entry, payment)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "missing required fields")
			assert.ErrorContains(t, err, field)
			assert.False(t, called)
		})
	}
}

// ---- reads -----------------------------------------------------------------

func TestRosterService_List_NilBecomesEmpty(t *testing.T) {
	svc := service.NewRosterService(&mockRosterRepo{
		list: func(_ context.Context) ([]domain.RosterEntry, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRosterService_ListByProgram_PassesFilter(t *testing.T) {
	var (
		gotID   int64
		gotPaid bool
	)
	svc := service.NewRosterService(&mockRosterRepo{
		listByProgram: func(_ context.Context, id int64, paidOnly bool) ([]domain.RosterRow, error) {
			gotID, gotPaid = id, paidOnly
			return nil, nil
		},
	})

	rows, err := svc.ListByProgram(context.Background(), 5, true)

	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Equal(t, int64(5), gotID)
	assert.True(t, gotPaid)
}

func TestRosterService_ListByProgram_RepoError(t *testing.T) {
	repoErr := errors.New("database is locked")
	svc := service.NewRosterService(&mockRosterRepo{
		listByProgram: func(_ context.Context, _ int64, _ bool) ([]domain.RosterRow, error) {
			return nil, repoErr
		},
	})

	_, err := svc.ListByProgram(context.Background(), 1, false)

	require.ErrorIs(t, err, repoErr)
}
