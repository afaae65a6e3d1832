package api

import (
	"net/http"
	"strings"

	"marina/internal/metrics"
	"marina/internal/view"
)

// PageResponse describes a resolved navigation target.
type PageResponse struct {
	Key          string `json:"key"`
	WaitlistType string `json:"waitlist_type,omitempty"`
	Feature      string `json:"feature,omitempty"`
}

// handlePage resolves a raw page key.
// GET /api/pages/{key}
func (s *HTTPServer) handlePage(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("pages")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/api/pages/")
	page, err := view.ParsePage(key)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := PageResponse{Key: page.Key()}
	if cat, ok := page.WaitlistCategory(); ok {
		resp.WaitlistType = cat
	}
	if feat, ok := page.ComingSoonFeature(); ok {
		resp.Feature = feat
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDocks lists the dock labels reservations can target.
// GET /api/docks
func (s *HTTPServer) handleDocks(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("docks")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"docks": s.controller.Docks()})
}
