package api

import (
	"net/http"
	"time"

	"marina/internal/booking"
	"marina/internal/cache"
	"marina/internal/metrics"
	"marina/internal/models"
)

// DockOccupancy is one reserved dock on a calendar day.
type DockOccupancy struct {
	DockID        string `json:"dock_id"`
	ReservationID int64  `json:"reservation_id"`
	GuestName     string `json:"guest_name"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date     string          `json:"date"`
	Day      int             `json:"day"`
	Reserved []DockOccupancy `json:"reserved"`
}

// CalendarWeek is a Sunday-first row of the grid. Nil entries pad the
// first and last week so every row has seven cells.
type CalendarWeek [7]*CalendarDay

// CalendarResponse is the response for GET /api/calendar.
type CalendarResponse struct {
	Month string         `json:"month"`
	Docks []string       `json:"docks"`
	Weeks []CalendarWeek `json:"weeks"`
}

// handleCalendar renders one month of dock occupancy.
// GET /api/calendar?month=YYYY-MM
func (s *HTTPServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("calendar")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}
	firstOfMonth, err := time.Parse("2006-01", month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month format; expected YYYY-MM")
		return
	}

	var cached CalendarResponse
	if s.cache.Read(r.Context(), cache.CalendarKey(month), &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	reservations, err := s.db.ListReservations(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("list reservations failed")
		writeError(w, http.StatusInternalServerError, "failed to load reservations")
		return
	}

	response := s.buildCalendar(month, firstOfMonth, reservations)
	s.cache.Write(r.Context(), cache.CalendarKey(month), response)
	writeJSON(w, http.StatusOK, response)
}

func (s *HTTPServer) buildCalendar(month string, firstOfMonth time.Time, reservations []models.Reservation) CalendarResponse {
	docks := s.controller.Docks()
	response := CalendarResponse{Month: month, Docks: docks}

	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	var week CalendarWeek
	slot := int(firstOfMonth.Weekday())

	for d := firstOfMonth; !d.After(lastOfMonth); d = d.AddDate(0, 0, 1) {
		cell := &CalendarDay{
			Date:     models.FormatDay(d),
			Day:      d.Day(),
			Reserved: make([]DockOccupancy, 0),
		}
		for _, dockID := range docks {
			if res := booking.ReservationOn(d, dockID, reservations); res != nil {
				cell.Reserved = append(cell.Reserved, DockOccupancy{
					DockID:        dockID,
					ReservationID: res.ID,
					GuestName:     res.GuestName,
					PaymentStatus: res.PaymentStatus,
				})
			}
		}

		week[slot] = cell
		slot++
		if slot == 7 {
			response.Weeks = append(response.Weeks, week)
			week = CalendarWeek{}
			slot = 0
		}
	}

	if slot != 0 {
		response.Weeks = append(response.Weeks, week)
	}
	return response
}
