package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"marina/internal/models"
)

// State represents the current state of a booking form session.
type State string

const (
	StateIdle       State = "idle"
	StateComposing  State = "composing"
	StateValidating State = "validating"
	StatePersisting State = "persisting"
)

// Mode distinguishes a new booking from an edit of an existing one.
type Mode string

const (
	ModeNew  Mode = "new"
	ModeEdit Mode = "edit"
)

// Form holds the fields collected in the booking dialog.
type Form struct {
	DockID        string
	StartDate     time.Time
	EndDate       time.Time
	GuestName     string
	BoatType      string
	BoatLength    string
	BoatWidth     string
	Email         string
	PhoneNumber   string
	PaymentStatus string
	Notes         string
}

// Session is one in-progress booking dialog.
type Session struct {
	Token      string
	Mode       Mode
	Form       Form
	ExistingID int64 // set in edit mode; excluded from conflict scans

	state     State
	StartedAt time.Time
	UpdatedAt time.Time
	mu        sync.Mutex
}

func newSession(mode Mode, form Form, existingID int64) *Session {
	now := time.Now()
	return &Session{
		Token:      uuid.NewString(),
		Mode:       mode,
		Form:       form,
		ExistingID: existingID,
		state:      StateComposing,
		StartedAt:  now,
		UpdatedAt:  now,
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.UpdatedAt = time.Now()
}

// transition moves the session to the target state if the move is allowed.
func (s *Session) transition(to State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, allowed := range transitions[s.state] {
		if allowed == to {
			s.state = to
			s.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// IsExpired checks if the session has been idle past the timeout.
func (s *Session) IsExpired(timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.UpdatedAt) > timeout
}

// Allowed state transitions. Validation or persistence failure returns the
// session to Composing with the form intact; closing discards it.
var transitions = map[State][]State{
	StateIdle:       {StateComposing},
	StateComposing:  {StateValidating, StateIdle},
	StateValidating: {StatePersisting, StateComposing},
	StatePersisting: {StateIdle, StateComposing},
}

// CanTransition checks if a transition between two states is allowed.
func CanTransition(from, to State) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SessionStore manages open booking sessions by token.
type SessionStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	timeout  time.Duration
}

// NewSessionStore creates a session store with the given idle timeout.
func NewSessionStore(timeout time.Duration) *SessionStore {
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		timeout:  timeout,
	}
}

// Get returns the session for a token, or nil.
func (ss *SessionStore) Get(token string) *Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	session, ok := ss.sessions[token]
	if !ok || session.IsExpired(ss.timeout) {
		return nil
	}
	return session
}

func (ss *SessionStore) put(session *Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[session.Token] = session
}

// Delete removes a session.
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

// Cleanup removes expired sessions and returns how many were dropped.
func (ss *SessionStore) Cleanup() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	removed := 0
	for token, session := range ss.sessions {
		if session.IsExpired(ss.timeout) {
			delete(ss.sessions, token)
			removed++
		}
	}
	return removed
}

// NewBookingForm returns the form defaults for a booking started from a
// calendar cell: a one-day span beginning on the selected day.
func NewBookingForm(day time.Time, dockID string) Form {
	start := models.Day(day)
	return Form{
		DockID:        dockID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 1),
		PaymentStatus: models.PaymentNotPaid,
	}
}

// EditBookingForm pre-fills the form from an existing reservation. The
// record itself is not touched until submission.
func EditBookingForm(res models.Reservation) Form {
	return Form{
		DockID:        res.DockID,
		StartDate:     models.Day(res.StartDate),
		EndDate:       models.Day(res.EndDate),
		GuestName:     res.GuestName,
		BoatType:      res.BoatType,
		BoatLength:    res.BoatLength,
		BoatWidth:     res.BoatWidth,
		Email:         res.Email,
		PhoneNumber:   res.PhoneNumber,
		PaymentStatus: res.PaymentStatus,
		Notes:         res.Notes,
	}
}
