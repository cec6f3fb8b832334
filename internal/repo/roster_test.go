package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/repo"
	"github.com/pkordes/rec-registration/internal/store"
	"github.com/pkordes/rec-registration/testutil"
)

// newRosterFixture creates a program and returns a RosterRepo on the same db.
func newRosterFixture(t *testing.T, db *store.DB) (repo.RosterRepo, domain.Program) {
	t.Helper()
	program, err := repo.NewProgramRepo(db).Create(context.Background(), programFixture())
	require.NoError(t, err)
	return repo.NewRosterRepo(db), program
}

func entryFixture(programID int64) domain.RosterEntry {
	return domain.RosterEntry{
		ProgramID:    programID,
		FullName:     "Ada Lovelace",
		Age:          9,
		SpecialNotes: "peanut allergy",
	}
}

func TestRosterRepo_Create(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *store.DB) {
		r, program := newRosterFixture(t, db)

		input := entryFixture(program.ID)
		got, err := r.Create(context.Background(), input)

		require.NoError(t, err)
		assert.NotZero(t, got.ID)
		input.ID = got.ID
		assert.Equal(t, input, got)
	})
}

func TestRosterRepo_List_PreservesPaidFlag(t *testing.T) {
	r, program := newRosterFixture(t, testutil.NewSQLiteDB(t))
	ctx := context.Background()

	unpaid, err := r.Create(ctx, entryFixture(program.ID))
	require.NoError(t, err)

	paidInput := entryFixture(program.ID)
	paidInput.FullName = "Grace Hopper"
	paidInput.SpecialNotes = ""
	paidInput.Paid = true
	paid, err := r.Create(ctx, paidInput)
	require.NoError(t, err)

	entries, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, unpaid, entries[0])
	assert.Equal(t, paid, entries[1])
	assert.False(t, entries[0].Paid)
	assert.True(t, entries[1].Paid)
	assert.Equal(t, "", entries[1].SpecialNotes)
}

// TestRosterRepo_ListByProgram_JoinsAndFilters verifies that the joined read
// only returns entries for the requested program, carries the program name,
// and drops entries pointing at a program that does not exist.
func TestRosterRepo_ListByProgram_JoinsAndFilters(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *store.DB) {
		r, program := newRosterFixture(t, db)
		ctx := context.Background()

		other := programFixture()
		other.Name = "Chess Club"
		otherProgram, err := repo.NewProgramRepo(db).Create(ctx, other)
		require.NoError(t, err)

		mine, err := r.Create(ctx, entryFixture(program.ID))
		require.NoError(t, err)
		_, err = r.Create(ctx, entryFixture(otherProgram.ID))
		require.NoError(t, err)

		orphanID := otherProgram.ID + 1000
		_, err = r.Create(ctx, entryFixture(orphanID))
		require.NoError(t, err)

		rows, err := r.ListByProgram(ctx, program.ID, false)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.RosterRow{
			ID:           mine.ID,
			ProgramID:    program.ID,
			ProgramName:  program.Name,
			FullName:     mine.FullName,
			Age:          mine.Age,
			SpecialNotes: mine.SpecialNotes,
			Paid:         false,
		}, rows[0])

		orphans, err := r.ListByProgram(ctx, orphanID, false)
		require.NoError(t, err)
		assert.Empty(t, orphans, "entries without a program must be excluded")
	})
}

func TestRosterRepo_ListByProgram_PaidOnly(t *testing.T) {
	r, program := newRosterFixture(t, testutil.NewSQLiteDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, entryFixture(program.ID))
	require.NoError(t, err)

	paidInput := entryFixture(program.ID)
	paidInput.Paid = true
	paid, err := r.Create(ctx, paidInput)
	require.NoError(t, err)

	all, err := r.ListByProgram(ctx, program.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	paidOnly, err := r.ListByProgram(ctx, program.ID, true)
	require.NoError(t, err)
	require.Len(t, paidOnly, 1)
	assert.Equal(t, paid.ID, paidOnly[0].ID)
	assert.True(t, paidOnly[0].Paid)
}
