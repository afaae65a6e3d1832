// Package booking holds the dock reservation conflict checker and the
// booking form lifecycle around it.
package booking

import (
	"time"

	"marina/internal/models"
)

// Candidate is a proposed stay interval for a dock, checked for conflicts
// before persistence. ExcludeID is set to the reservation's own id when
// editing, so a reservation is never reported as conflicting with itself.
// Zero means no exclusion.
type Candidate struct {
	DockID    string
	StartDate time.Time
	EndDate   time.Time
	ExcludeID int64
}

// Conflict identifies the earliest conflicting day and the reservation
// occupying the dock on that day.
type Conflict struct {
	Day         time.Time
	Reservation models.Reservation
}

// Err shapes the conflict into the error surfaced to the caller.
func (c *Conflict) Err() *ConflictError {
	return &ConflictError{
		DockID:        c.Reservation.DockID,
		Day:           c.Day,
		ReservationID: c.Reservation.ID,
		GuestName:     c.Reservation.GuestName,
	}
}

// ReservationOn returns the reservation occupying dockID on the given
// calendar day, or nil if the dock is free. The scan runs in fetch order;
// by the no-overlap invariant at most one reservation matches per dock
// per day.
func ReservationOn(day time.Time, dockID string, reservations []models.Reservation) *models.Reservation {
	return reservationOnExcluding(day, dockID, reservations, 0)
}

func reservationOnExcluding(day time.Time, dockID string, reservations []models.Reservation, excludeID int64) *models.Reservation {
	d := models.Day(day)
	for i := range reservations {
		res := &reservations[i]
		if res.DockID != dockID {
			continue
		}
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		if res.ContainsDay(d) {
			return res
		}
	}
	return nil
}

// FindConflict scans every calendar day of the candidate's inclusive range
// in ascending order and returns the first day occupied by another
// reservation on the same dock, or nil when the whole range is free.
// Earliest conflicting day wins; that day and the occupant's name go into
// the user-facing error. Day-by-day enumeration keeps the semantics
// identical to the single-day test the calendar grid uses.
//
// Callers must ensure StartDate <= EndDate first; an inverted range scans
// nothing and reports no conflict.
func FindConflict(c Candidate, reservations []models.Reservation) *Conflict {
	start := models.Day(c.StartDate)
	end := models.Day(c.EndDate)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if res := reservationOnExcluding(d, c.DockID, reservations, c.ExcludeID); res != nil {
			return &Conflict{Day: d, Reservation: *res}
		}
	}
	return nil
}
