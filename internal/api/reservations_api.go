package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"marina/internal/booking"
	"marina/internal/database"
	"marina/internal/metrics"
	"marina/internal/models"
)

// ReservationRequest is the request body for creating or updating a
// reservation. Dates use YYYY-MM-DD.
type ReservationRequest struct {
	DockID        string `json:"dock_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	GuestName     string `json:"guest_name"`
	BoatType      string `json:"boat_type,omitempty"`
	BoatLength    string `json:"boat_length,omitempty"`
	BoatWidth     string `json:"boat_width,omitempty"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func (req *ReservationRequest) toForm() (booking.Form, error) {
	form := booking.Form{
		DockID:        req.DockID,
		GuestName:     strings.TrimSpace(req.GuestName),
		BoatType:      req.BoatType,
		BoatLength:    req.BoatLength,
		BoatWidth:     req.BoatWidth,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	}
	if form.PaymentStatus == "" {
		form.PaymentStatus = models.PaymentNotPaid
	}

	var err error
	if req.StartDate != "" {
		if form.StartDate, err = models.ParseDay(req.StartDate); err != nil {
			return form, fmt.Errorf("invalid start_date format; expected YYYY-MM-DD")
		}
	}
	if req.EndDate != "" {
		if form.EndDate, err = models.ParseDay(req.EndDate); err != nil {
			return form, fmt.Errorf("invalid end_date format; expected YYYY-MM-DD")
		}
	}
	return form, nil
}

// handleReservations routes GET (list) and POST (create) for
// /api/reservations.
func (s *HTTPServer) handleReservations(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("reservations")

	switch r.Method {
	case http.MethodGet:
		s.listReservations(w, r)
	case http.MethodPost:
		s.createReservation(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET or POST")
	}
}

func (s *HTTPServer) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.db.ListReservations(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("list reservations failed")
		writeError(w, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": reservations})
}

func (s *HTTPServer) createReservation(w http.ResponseWriter, r *http.Request) {
	form, ok := s.decodeReservation(w, r)
	if !ok {
		return
	}

	session := s.controller.BeginNew(form.StartDate, form.DockID)
	session.Form = form

	saved, err := s.controller.Submit(r.Context(), session)
	if err != nil {
		s.controller.Close(session)
		s.writeSubmitError(w, err)
		return
	}

	metrics.IncReservationCreated()
	if s.notifier != nil {
		s.notifier.ReservationCreated(*saved)
	}
	s.syncSheets()
	writeJSON(w, http.StatusCreated, saved)
}

// handleReservationByID routes PUT (update) and DELETE for
// /api/reservations/{id}.
func (s *HTTPServer) handleReservationByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("reservation_by_id")

	id, err := pathID(r.URL.Path, "/api/reservations/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateReservation(w, r, id)
	case http.MethodDelete:
		s.deleteReservation(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use PUT or DELETE")
	}
}

func (s *HTTPServer) updateReservation(w http.ResponseWriter, r *http.Request, id int64) {
	existing, err := s.db.GetReservation(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "reservation not found")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("load reservation failed")
		writeError(w, http.StatusInternalServerError, "failed to load reservation")
		return
	}

	form, ok := s.decodeReservation(w, r)
	if !ok {
		return
	}

	session := s.controller.BeginEdit(existing)
	session.Form = form

	saved, err := s.controller.Submit(r.Context(), session)
	if err != nil {
		s.controller.Close(session)
		s.writeSubmitError(w, err)
		return
	}

	metrics.IncReservationUpdated()
	s.syncSheets()
	writeJSON(w, http.StatusOK, saved)
}

func (s *HTTPServer) deleteReservation(w http.ResponseWriter, r *http.Request, id int64) {
	existing, err := s.db.GetReservation(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "reservation not found")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("load reservation failed")
		writeError(w, http.StatusInternalServerError, "failed to load reservation")
		return
	}

	if err := s.controller.CancelReservation(r.Context(), id); err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("cancel reservation failed")
		writeError(w, http.StatusInternalServerError, "failed to cancel reservation")
		return
	}

	metrics.IncReservationCancelled()
	if s.notifier != nil {
		s.notifier.ReservationCancelled(existing)
	}
	s.syncSheets()
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (s *HTTPServer) decodeReservation(w http.ResponseWriter, r *http.Request) (booking.Form, bool) {
	var req ReservationRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return booking.Form{}, false
	}

	form, err := req.toForm()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return booking.Form{}, false
	}
	return form, true
}

func (s *HTTPServer) writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case booking.IsConflict(err):
		var conflictErr *booking.ConflictError
		errors.As(err, &conflictErr)
		metrics.IncConflictDetected(conflictErr.DockID)
		writeError(w, http.StatusConflict, err.Error())
	case booking.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "reservation not found")
	default:
		s.logger.Error().Err(err).Msg("submit reservation failed")
		writeError(w, http.StatusInternalServerError, "failed to save reservation")
	}
}

func pathID(path, prefix string) (int64, error) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad id %q", raw)
	}
	return id, nil
}
