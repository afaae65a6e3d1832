package booking

import (
	"errors"
	"fmt"
	"time"

	"marina/internal/models"
)

// ErrSubmitInProgress is returned when a session is submitted again while a
// persistence call is still outstanding.
var ErrSubmitInProgress = errors.New("submission already in progress")

// ValidationError is a local, synchronous form error. It never reaches the
// store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConflictError reports that a candidate interval overlaps an existing
// reservation on the same dock. Day is the earliest conflicting calendar
// day; GuestName identifies the current occupant.
type ConflictError struct {
	DockID        string
	Day           time.Time
	ReservationID int64
	GuestName     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("date conflict: dock %s is already booked on %s by %s",
		e.DockID, models.FormatDay(e.Day), e.GuestName)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
