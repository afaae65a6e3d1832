package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marina/internal/database"
	"marina/internal/events"
	"marina/internal/metrics"
	"marina/internal/models"
)

// WaitlistRequest is the request body for creating or updating a
// waitlist entry.
type WaitlistRequest struct {
	WaitlistType        string `json:"waitlist_type"`
	Name                string `json:"name"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	Address             string `json:"address,omitempty"`
	BoatName            string `json:"boat_name,omitempty"`
	BoatLicense         string `json:"boat_license,omitempty"`
	TrailerLicensePlate string `json:"trailer_license_plate,omitempty"`
	BoatOrJetSki        string `json:"boat_or_jet_ski,omitempty"`
	BoatWidth           string `json:"boat_width,omitempty"`
	BoatLength          string `json:"boat_length,omitempty"`
	Notes               string `json:"notes,omitempty"`
	Status              string `json:"status,omitempty"`
}

func (req *WaitlistRequest) validate() error {
	if !models.ValidWaitlistType(req.WaitlistType) {
		return fmt.Errorf("unknown waitlist_type %q", req.WaitlistType)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Status != "" && !models.ValidWaitlistStatus(req.Status) {
		return fmt.Errorf("unknown status %q", req.Status)
	}
	return nil
}

func (req *WaitlistRequest) toEntry() models.WaitlistEntry {
	return models.WaitlistEntry{
		WaitlistType:        req.WaitlistType,
		Name:                strings.TrimSpace(req.Name),
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		BoatName:            req.BoatName,
		BoatLicense:         req.BoatLicense,
		TrailerLicensePlate: req.TrailerLicensePlate,
		BoatOrJetSki:        req.BoatOrJetSki,
		BoatWidth:           req.BoatWidth,
		BoatLength:          req.BoatLength,
		Notes:               req.Notes,
		Status:              req.Status,
	}
}

// handleWaitlist routes GET (list by category) and POST (create) for
// /api/waitlist.
func (s *HTTPServer) handleWaitlist(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("waitlist")

	switch r.Method {
	case http.MethodGet:
		waitlistType := r.URL.Query().Get("type")
		if !models.ValidWaitlistType(waitlistType) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown waitlist type %q", waitlistType))
			return
		}

		entries, err := s.db.ListWaitlist(r.Context(), waitlistType)
		if err != nil {
			s.logger.Error().Err(err).Msg("list waitlist failed")
			writeError(w, http.StatusInternalServerError, "failed to load waitlist")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"type": waitlistType, "entries": entries})

	case http.MethodPost:
		req, ok := s.decodeWaitlist(w, r)
		if !ok {
			return
		}

		entry := req.toEntry()
		created, err := s.db.CreateWaitlistEntry(r.Context(), &entry)
		if err != nil {
			s.logger.Error().Err(err).Msg("create waitlist entry failed")
			writeError(w, http.StatusInternalServerError, "failed to create waitlist entry")
			return
		}
		s.publish(events.WaitlistChanged)
		if s.notifier != nil {
			s.notifier.WaitlistEntryAdded(*created)
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET or POST")
	}
}

// handleWaitlistByID routes PUT (update) and DELETE for
// /api/waitlist/{id}.
func (s *HTTPServer) handleWaitlistByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("waitlist_by_id")

	id, err := pathID(r.URL.Path, "/api/waitlist/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid waitlist entry id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		req, ok := s.decodeWaitlist(w, r)
		if !ok {
			return
		}

		entry := req.toEntry()
		entry.ID = id
		if entry.Status == "" {
			entry.Status = models.WaitlistStatusWaiting
		}

		updated, err := s.db.UpdateWaitlistEntry(r.Context(), &entry)
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "waitlist entry not found")
			return
		}
		if err != nil {
			s.logger.Error().Err(err).Int64("id", id).Msg("update waitlist entry failed")
			writeError(w, http.StatusInternalServerError, "failed to update waitlist entry")
			return
		}
		s.publish(events.WaitlistChanged)
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		err := s.db.DeleteWaitlistEntry(r.Context(), id)
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "waitlist entry not found")
			return
		}
		if err != nil {
			s.logger.Error().Err(err).Int64("id", id).Msg("delete waitlist entry failed")
			writeError(w, http.StatusInternalServerError, "failed to delete waitlist entry")
			return
		}
		s.publish(events.WaitlistChanged)
		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use PUT or DELETE")
	}
}

func (s *HTTPServer) decodeWaitlist(w http.ResponseWriter, r *http.Request) (*WaitlistRequest, bool) {
	var req WaitlistRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}
