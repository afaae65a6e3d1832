package models

import "time"

// Payment status labels shown in the booking form.
const (
	PaymentNotPaid     = "Not Paid Yet"
	PaymentDepositPaid = "Deposit Paid"
	PaymentPaidInFull  = "Paid in Full"
)

// PaymentStatuses lists the accepted payment status labels.
var PaymentStatuses = []string{PaymentNotPaid, PaymentDepositPaid, PaymentPaidInFull}

// Reservation represents a dock reservation record. StartDate and EndDate
// are day-granularity values (UTC midnight), inclusive on both ends: the
// dock is occupied on every day of [StartDate, EndDate].
type Reservation struct {
	ID            int64     `json:"id"`
	DockID        string    `json:"dock_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	GuestName     string    `json:"guest_name"`
	BoatType      string    `json:"boat_type,omitempty"`
	BoatLength    string    `json:"boat_length,omitempty"`
	BoatWidth     string    `json:"boat_width,omitempty"`
	Email         string    `json:"email,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ContainsDay checks if the reservation occupies a specific calendar day.
// Both bounds are inclusive.
func (r *Reservation) ContainsDay(day time.Time) bool {
	d := Day(day)
	start := Day(r.StartDate)
	end := Day(r.EndDate)
	return !d.Before(start) && !d.After(end)
}

// Overlaps checks if the reservation's day range shares at least one
// calendar day with [start, end]. Inclusive on both ends, so two ranges
// that merely touch on a boundary day do overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	s := Day(start)
	e := Day(end)
	resStart := Day(r.StartDate)
	resEnd := Day(r.EndDate)
	return !resEnd.Before(s) && !e.Before(resStart)
}

// Nights returns the number of days the dock is occupied.
func (r *Reservation) Nights() int {
	return int(Day(r.EndDate).Sub(Day(r.StartDate)).Hours()/24) + 1
}
