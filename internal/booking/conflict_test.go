package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marina/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func reservation(id int64, dock string, start, end time.Time, guest string) models.Reservation {
	return models.Reservation{
		ID:        id,
		DockID:    dock,
		StartDate: start,
		EndDate:   end,
		GuestName: guest,
	}
}

func TestReservationOn_Membership(t *testing.T) {
	res := reservation(1, "102", day(2025, 6, 10), day(2025, 6, 12), "Alice")
	set := []models.Reservation{res}

	// Every day inside the inclusive range is a hit.
	for d := res.StartDate; !d.After(res.EndDate); d = d.AddDate(0, 0, 1) {
		got := ReservationOn(d, "102", set)
		require.NotNil(t, got, "expected %s to be booked", models.FormatDay(d))
		assert.Equal(t, res.ID, got.ID)
	}

	// Days outside are misses.
	assert.Nil(t, ReservationOn(day(2025, 6, 9), "102", set))
	assert.Nil(t, ReservationOn(day(2025, 6, 13), "102", set))

	// Same day, different dock is a miss.
	assert.Nil(t, ReservationOn(day(2025, 6, 11), "113", set))
}

func TestFindConflict_ExclusionCorrectness(t *testing.T) {
	res := reservation(7, "102", day(2025, 6, 10), day(2025, 6, 12), "Alice")
	set := []models.Reservation{res}

	// Excluding the only reservation: never a conflict, no matter how the
	// candidate overlaps it.
	candidates := []Candidate{
		{DockID: "102", StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 12), ExcludeID: 7},
		{DockID: "102", StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 30), ExcludeID: 7},
		{DockID: "102", StartDate: day(2025, 6, 12), EndDate: day(2025, 6, 12), ExcludeID: 7},
	}
	for _, c := range candidates {
		assert.Nil(t, FindConflict(c, set))
	}

	// Without the exclusion the same candidate conflicts.
	got := FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 12)}, set)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.Reservation.ID)
}

func TestFindConflict_EarliestDayWins(t *testing.T) {
	// Two reservations on the same dock, both overlapping the candidate.
	// The one containing the chronologically earliest conflicting day is
	// reported, regardless of id order.
	later := reservation(1, "102", day(2025, 6, 20), day(2025, 6, 22), "Bob")
	earlier := reservation(2, "102", day(2025, 6, 15), day(2025, 6, 16), "Alice")
	set := []models.Reservation{later, earlier}

	got := FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 14), EndDate: day(2025, 6, 25)}, set)
	require.NotNil(t, got)
	assert.Equal(t, day(2025, 6, 15), got.Day)
	assert.Equal(t, "Alice", got.Reservation.GuestName)
}

func TestFindConflict_BoundaryInclusivity(t *testing.T) {
	// Exact single-day overlap is a conflict, not an ignored edge case.
	set := []models.Reservation{reservation(1, "102", day(2025, 6, 10), day(2025, 6, 10), "Alice")}

	got := FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 10)}, set)
	require.NotNil(t, got)
	assert.Equal(t, day(2025, 6, 10), got.Day)
}

func TestFindConflict_NoFalsePositivesAcrossDocks(t *testing.T) {
	set := []models.Reservation{reservation(1, "102", day(2025, 6, 10), day(2025, 6, 12), "Alice")}

	// Identical range on a different dock does not conflict.
	assert.Nil(t, FindConflict(Candidate{DockID: "113", StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 12)}, set))
}

func TestFindConflict_Scenarios(t *testing.T) {
	existing := reservation(42, "102", day(2025, 6, 10), day(2025, 6, 12), "Alice")
	set := []models.Reservation{existing}

	t.Run("overlapping tail of existing stay", func(t *testing.T) {
		got := FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 12), EndDate: day(2025, 6, 14)}, set)
		require.NotNil(t, got)
		assert.Equal(t, day(2025, 6, 12), got.Day)
		assert.Equal(t, "Alice", got.Reservation.GuestName)
	})

	t.Run("starting the day after departure", func(t *testing.T) {
		assert.Nil(t, FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 13), EndDate: day(2025, 6, 15)}, set))
	})

	t.Run("extending own reservation", func(t *testing.T) {
		got := FindConflict(Candidate{
			DockID:    "102",
			StartDate: day(2025, 6, 10),
			EndDate:   day(2025, 6, 13),
			ExcludeID: 42,
		}, set)
		assert.Nil(t, got)
	})
}

func TestFindConflict_ErrorMessage(t *testing.T) {
	set := []models.Reservation{reservation(42, "102", day(2025, 6, 10), day(2025, 6, 12), "Alice")}

	got := FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 11), EndDate: day(2025, 6, 11)}, set)
	require.NotNil(t, got)

	err := got.Err()
	assert.Equal(t, "date conflict: dock 102 is already booked on 2025-06-11 by Alice", err.Error())
	assert.Equal(t, int64(42), err.ReservationID)
}

func TestFindConflict_EmptySet(t *testing.T) {
	assert.Nil(t, FindConflict(Candidate{DockID: "102", StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 30)}, nil))
}
