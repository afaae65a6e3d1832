package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"marina/internal/events"
	"marina/internal/models"
)

// Store is the reservation persistence the controller writes through.
type Store interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, res *models.Reservation) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, res *models.Reservation) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

// EventPublisher notifies subscribers after successful writes so they can
// refetch and invalidate.
type EventPublisher interface {
	Publish(event events.Event)
}

// Controller orchestrates the booking form lifecycle: load reservations,
// validate the proposed interval, run the conflict scan, persist, signal
// refresh. All collaborators are injected; the controller keeps no global
// state beyond its open sessions.
type Controller struct {
	store    Store
	docks    []string
	bus      EventPublisher
	sessions *SessionStore
	logger   *zerolog.Logger
}

// NewController wires a controller with its store, the resolvable dock
// labels, and the event bus.
func NewController(store Store, docks []string, bus EventPublisher, logger *zerolog.Logger) *Controller {
	return &Controller{
		store:    store,
		docks:    docks,
		bus:      bus,
		sessions: NewSessionStore(30 * time.Minute),
		logger:   logger,
	}
}

// Sessions exposes the session store for cleanup loops.
func (c *Controller) Sessions() *SessionStore {
	return c.sessions
}

// Docks returns the resolvable dock labels.
func (c *Controller) Docks() []string {
	out := make([]string, len(c.docks))
	copy(out, c.docks)
	return out
}

// BeginNew opens a composing session for a fresh booking on the selected
// day and dock.
func (c *Controller) BeginNew(day time.Time, dockID string) *Session {
	session := newSession(ModeNew, NewBookingForm(day, dockID), 0)
	c.sessions.put(session)
	return session
}

// BeginEdit opens a composing session pre-filled from an existing
// reservation.
func (c *Controller) BeginEdit(res models.Reservation) *Session {
	session := newSession(ModeEdit, EditBookingForm(res), res.ID)
	c.sessions.put(session)
	return session
}

// Close discards an in-progress session without persisting anything.
func (c *Controller) Close(session *Session) {
	session.setState(StateIdle)
	c.sessions.Delete(session.Token)
}

// Submit validates the session's form and persists it. Checks run in
// order: required fields, date ordering, dock resolution, conflict scan.
// The first failing check returns its error and the session drops back to
// Composing with the form intact; nothing is persisted on failure. On
// success the session returns to Idle and a reservations.changed event is
// published so callers refetch the full set.
func (c *Controller) Submit(ctx context.Context, session *Session) (*models.Reservation, error) {
	if !session.transition(StateValidating) {
		return nil, ErrSubmitInProgress
	}

	res, err := c.submitLocked(ctx, session)
	if err != nil {
		session.setState(StateComposing)
		return nil, err
	}

	session.setState(StateIdle)
	c.sessions.Delete(session.Token)
	c.bus.Publish(events.Event{Type: events.ReservationsChanged})
	return res, nil
}

func (c *Controller) submitLocked(ctx context.Context, session *Session) (*models.Reservation, error) {
	form := session.Form

	if err := c.validate(form); err != nil {
		return nil, err
	}

	reservations, err := c.store.ListReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	candidate := Candidate{
		DockID:    form.DockID,
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
		ExcludeID: session.ExistingID,
	}
	if conflict := FindConflict(candidate, reservations); conflict != nil {
		c.logger.Info().
			Str("dock_id", form.DockID).
			Str("day", models.FormatDay(conflict.Day)).
			Int64("blocking_id", conflict.Reservation.ID).
			Msg("booking rejected: date conflict")
		return nil, conflict.Err()
	}

	if !session.transition(StatePersisting) {
		return nil, ErrSubmitInProgress
	}

	record := &models.Reservation{
		ID:            session.ExistingID,
		DockID:        form.DockID,
		StartDate:     models.Day(form.StartDate),
		EndDate:       models.Day(form.EndDate),
		GuestName:     form.GuestName,
		BoatType:      form.BoatType,
		BoatLength:    form.BoatLength,
		BoatWidth:     form.BoatWidth,
		Email:         form.Email,
		PhoneNumber:   form.PhoneNumber,
		PaymentStatus: form.PaymentStatus,
		Notes:         form.Notes,
	}

	var saved *models.Reservation
	if session.Mode == ModeEdit {
		saved, err = c.store.UpdateReservation(ctx, record)
	} else {
		saved, err = c.store.CreateReservation(ctx, record)
	}
	if err != nil {
		return nil, fmt.Errorf("save reservation: %w", err)
	}

	c.logger.Info().
		Int64("id", saved.ID).
		Str("dock_id", saved.DockID).
		Str("start", models.FormatDay(saved.StartDate)).
		Str("end", models.FormatDay(saved.EndDate)).
		Str("mode", string(session.Mode)).
		Msg("reservation saved")
	return saved, nil
}

func (c *Controller) validate(form Form) error {
	if form.GuestName == "" {
		return &ValidationError{Field: "guest_name", Reason: "is required"}
	}
	if form.StartDate.IsZero() || form.EndDate.IsZero() {
		return &ValidationError{Field: "dates", Reason: "start and end dates are required"}
	}
	if models.Day(form.EndDate).Before(models.Day(form.StartDate)) {
		return &ValidationError{Field: "end_date", Reason: "cannot be before start date"}
	}
	if !c.dockExists(form.DockID) {
		return &ValidationError{Field: "dock_id", Reason: fmt.Sprintf("unknown dock %q", form.DockID)}
	}
	return nil
}

func (c *Controller) dockExists(dockID string) bool {
	for _, d := range c.docks {
		if d == dockID {
			return true
		}
	}
	return false
}

// CancelReservation permanently removes a reservation. Confirmation is the
// caller's concern; the deletion itself is not reversible.
func (c *Controller) CancelReservation(ctx context.Context, id int64) error {
	if err := c.store.DeleteReservation(ctx, id); err != nil {
		return fmt.Errorf("cancel reservation %d: %w", id, err)
	}
	c.logger.Info().Int64("id", id).Msg("reservation canceled")
	c.bus.Publish(events.Event{Type: events.ReservationsChanged})
	return nil
}
