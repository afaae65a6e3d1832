package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"marina/internal/booking"
	"marina/internal/cache"
	"marina/internal/database"
	"marina/internal/events"
	"marina/internal/notify"
	"marina/internal/sheets"
)

// HTTPServer serves the management app's JSON API.
type HTTPServer struct {
	server     *http.Server
	db         *database.DB
	controller *booking.Controller
	bus        *events.Bus
	cache      *cache.Cache
	notifier   *notify.Notifier
	sheets     *sheets.SheetsService
	apiKey     string
	limiter    *rate.Limiter
	logger     *zerolog.Logger
}

// Options carries the optional collaborators. Nil fields disable the
// corresponding integration.
type Options struct {
	Cache    *cache.Cache
	Notifier *notify.Notifier
	Sheets   *sheets.SheetsService
}

// NewHTTPServer builds the server and its routes.
func NewHTTPServer(
	addr string,
	db *database.DB,
	controller *booking.Controller,
	bus *events.Bus,
	apiKey string,
	ratePerSecond float64,
	burst int,
	opts Options,
	logger *zerolog.Logger,
) *HTTPServer {
	s := &HTTPServer{
		db:         db,
		controller: controller,
		bus:        bus,
		cache:      opts.Cache,
		notifier:   opts.Notifier,
		sheets:     opts.Sheets,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		logger:     logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations", s.handleReservations)
	mux.HandleFunc("/api/reservations/", s.handleReservationByID)
	mux.HandleFunc("/api/calendar", s.handleCalendar)
	mux.HandleFunc("/api/todos", s.handleTodos)
	mux.HandleFunc("/api/todos/", s.handleTodoByID)
	mux.HandleFunc("/api/waitlist", s.handleWaitlist)
	mux.HandleFunc("/api/waitlist/", s.handleWaitlistByID)
	mux.HandleFunc("/api/export/reservations.xlsx", s.handleExportReservations)
	mux.HandleFunc("/api/export/waitlist.xlsx", s.handleExportWaitlist)
	mux.HandleFunc("/api/pages/", s.handlePage)
	mux.HandleFunc("/api/docks", s.handleDocks)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.middleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *HTTPServer) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// middleware applies, in order: request id, rate limit, api key auth,
// request logging.
func (s *HTTPServer) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		if s.apiKey != "" && r.Header.Get("X-Api-Key") != s.apiKey {
			writeError(w, http.StatusUnauthorized, "invalid or missing API key")
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *HTTPServer) publish(eventType string) {
	if s.bus != nil {
		s.bus.Publish(events.Event{Type: eventType})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// syncSheets mirrors the reservation list into Google Sheets after a
// successful write. Best effort; failures only log.
func (s *HTTPServer) syncSheets() {
	if s.sheets == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		reservations, err := s.db.ListReservations(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Sheets sync: load reservations failed")
			return
		}
		if err := s.sheets.SyncReservations(ctx, reservations); err != nil {
			s.logger.Error().Err(err).Msg("Sheets sync failed")
		}
	}()
}
