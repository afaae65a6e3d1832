package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marina/internal/models"
)

func TestHandlePage(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/pages/calendar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[PageResponse](t, w)
	assert.Equal(t, "calendar", resp.Key)

	key := url.PathEscape("waitlist:" + models.WaitlistTransientDocking)
	w = ts.do(t, http.MethodGet, "/api/pages/"+key, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[PageResponse](t, w)
	assert.Equal(t, models.WaitlistTransientDocking, resp.WaitlistType)
}

func TestHandlePage_Unknown(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/pages/dashboard", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
