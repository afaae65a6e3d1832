package api

import (
	"bytes"
	"net/http"

	"marina/internal/export"
	"marina/internal/metrics"
	"marina/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExportReservations streams the reservation list as xlsx.
// GET /api/export/reservations.xlsx
func (s *HTTPServer) handleExportReservations(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export_reservations")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	reservations, err := s.db.ListReservations(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("list reservations failed")
		writeError(w, http.StatusInternalServerError, "failed to load reservations")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteReservations(&buf, reservations); err != nil {
		s.logger.Error().Err(err).Msg("export reservations failed")
		writeError(w, http.StatusInternalServerError, "failed to build export")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="reservations.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

// handleExportWaitlist streams every waitlist category as xlsx, one
// sheet per category.
// GET /api/export/waitlist.xlsx
func (s *HTTPServer) handleExportWaitlist(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export_waitlist")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	byType := make(map[string][]models.WaitlistEntry)
	for _, waitlistType := range models.WaitlistTypes {
		entries, err := s.db.ListWaitlist(r.Context(), waitlistType)
		if err != nil {
			s.logger.Error().Err(err).Str("type", waitlistType).Msg("list waitlist failed")
			writeError(w, http.StatusInternalServerError, "failed to load waitlist")
			return
		}
		if len(entries) > 0 {
			byType[waitlistType] = entries
		}
	}

	var buf bytes.Buffer
	if err := export.WriteWaitlist(&buf, byType); err != nil {
		s.logger.Error().Err(err).Msg("export waitlist failed")
		writeError(w, http.StatusInternalServerError, "failed to build export")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="waitlist.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}
