package database

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marina/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.New(io.Discard)
	db, err := NewDB(filepath.Join(t.TempDir(), "marina.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateTablesIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.createTables())
}

func TestReservationCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateReservation(ctx, &models.Reservation{
		DockID:        "102",
		StartDate:     day(2025, 6, 10),
		EndDate:       day(2025, 6, 12),
		GuestName:     "Alice",
		BoatType:      "Sailboat",
		PaymentStatus: models.PaymentNotPaid,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, day(2025, 6, 10), created.StartDate)
	assert.Equal(t, day(2025, 6, 12), created.EndDate)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := db.GetReservation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.GuestName)

	got.GuestName = "Alice B"
	got.EndDate = day(2025, 6, 13)
	got.PaymentStatus = models.PaymentDepositPaid
	updated, err := db.UpdateReservation(ctx, &got)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.GuestName)
	assert.Equal(t, day(2025, 6, 13), updated.EndDate)

	list, err := db.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, db.DeleteReservation(ctx, created.ID))
	list, err = db.ListReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReservationListOrderedByStartDate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, start := range []time.Time{day(2025, 7, 20), day(2025, 7, 1), day(2025, 7, 10)} {
		_, err := db.CreateReservation(ctx, &models.Reservation{
			DockID:    "112",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 1),
			GuestName: "Guest",
		})
		require.NoError(t, err)
	}

	list, err := db.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, day(2025, 7, 1), list[0].StartDate)
	assert.Equal(t, day(2025, 7, 10), list[1].StartDate)
	assert.Equal(t, day(2025, 7, 20), list[2].StartDate)
}

func TestReservationNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.GetReservation(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.UpdateReservation(ctx, &models.Reservation{
		ID: 999, DockID: "102",
		StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 2),
		GuestName: "Nobody",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, db.DeleteReservation(ctx, 999), ErrNotFound)
}

func TestTodoCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := db.CreateTodo(ctx, "Pressure wash dock 300")
	require.NoError(t, err)
	assert.False(t, first.IsCompleted)

	second, err := db.CreateTodo(ctx, "Order fuel filters")
	require.NoError(t, err)

	// Newest first.
	list, err := db.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	require.NoError(t, db.SetTodoCompleted(ctx, first.ID, true))
	list, err = db.ListTodos(ctx)
	require.NoError(t, err)
	assert.True(t, list[1].IsCompleted)

	require.NoError(t, db.DeleteTodo(ctx, second.ID))
	assert.ErrorIs(t, db.DeleteTodo(ctx, second.ID), ErrNotFound)
}

func TestWaitlistCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := db.CreateWaitlistEntry(ctx, &models.WaitlistEntry{
		WaitlistType: models.WaitlistTransientDocking,
		Name:         "Bob",
		Phone:        "555-0101",
		BoatLength:   "28",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WaitlistStatusWaiting, first.Status)

	_, err = db.CreateWaitlistEntry(ctx, &models.WaitlistEntry{
		WaitlistType: models.WaitlistTransientDocking,
		Name:         "Carol",
	})
	require.NoError(t, err)

	_, err = db.CreateWaitlistEntry(ctx, &models.WaitlistEntry{
		WaitlistType: models.WaitlistJetSkiDockage,
		Name:         "Dave",
	})
	require.NoError(t, err)

	// Category filter, oldest first.
	list, err := db.ListWaitlist(ctx, models.WaitlistTransientDocking)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bob", list[0].Name)
	assert.Equal(t, "Carol", list[1].Name)

	first.Status = models.WaitlistStatusContacted
	updated, err := db.UpdateWaitlistEntry(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, models.WaitlistStatusContacted, updated.Status)

	require.NoError(t, db.DeleteWaitlistEntry(ctx, first.ID))
	assert.ErrorIs(t, db.DeleteWaitlistEntry(ctx, first.ID), ErrNotFound)
}
