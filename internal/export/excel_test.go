package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"marina/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWriteReservations(t *testing.T) {
	reservations := []models.Reservation{
		{
			ID: 1, DockID: "102",
			StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 12),
			GuestName: "Alice", BoatType: "Sailboat",
			PaymentStatus: models.PaymentDepositPaid,
		},
		{
			ID: 2, DockID: "300",
			StartDate: day(2025, 7, 1), EndDate: day(2025, 7, 1),
			GuestName: "Bob",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReservations(&buf, reservations))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reservations")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ReservationColumns, rows[0])
	assert.Equal(t, "102", rows[1][1])
	assert.Equal(t, "2025-06-10", rows[1][2])
	assert.Equal(t, "Alice", rows[1][4])
	assert.Equal(t, "Bob", rows[2][4])
}

func TestWriteWaitlistSheetPerCategory(t *testing.T) {
	byType := map[string][]models.WaitlistEntry{
		models.WaitlistTransientDocking: {
			{ID: 1, Name: "Carol", Status: models.WaitlistStatusWaiting, CreatedAt: day(2025, 5, 1)},
		},
		models.WaitlistJetSkiDockage: {
			{ID: 2, Name: "Dave", Status: models.WaitlistStatusContacted, CreatedAt: day(2025, 5, 2)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWaitlist(&buf, byType))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, models.WaitlistTransientDocking)
	assert.Contains(t, sheets, models.WaitlistJetSkiDockage)

	rows, err := f.GetRows(models.WaitlistTransientDocking)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Carol", rows[1][1])
}

func TestWriteWaitlistEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWaitlist(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Waitlist")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
