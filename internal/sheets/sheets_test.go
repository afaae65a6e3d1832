package sheets

import (
	"testing"
	"time"

	"marina/internal/models"
)

func TestReservationRowValues(t *testing.T) {
	res := &models.Reservation{
		ID:            42,
		DockID:        "300",
		StartDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		GuestName:     "Alice",
		BoatType:      "Sailboat",
		BoatLength:    "32",
		BoatWidth:     "11",
		Email:         "alice@example.com",
		PhoneNumber:   "555-0101",
		PaymentStatus: models.PaymentDepositPaid,
		Notes:         "arriving late",
	}

	values := reservationRowValues(res)

	expected := []interface{}{
		int64(42),
		"300",
		"2025-06-10",
		"2025-06-12",
		"Alice",
		"Sailboat",
		"32",
		"11",
		"alice@example.com",
		"555-0101",
		"Deposit Paid",
		"arriving late",
	}

	if len(values) != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), len(values))
	}

	for i, v := range values {
		if v != expected[i] {
			t.Errorf("At index %d: expected %v, got %v", i, expected[i], v)
		}
	}
}

func TestRowValuesMatchHeaderWidth(t *testing.T) {
	values := reservationRowValues(&models.Reservation{})
	if len(values) != len(headerRow) {
		t.Errorf("Row has %d values but header has %d columns", len(values), len(headerRow))
	}
}
