package maps

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session owns one form instance's suggestion state: the opaque billing
// token, the request sequence, and the predictions currently visible.
// Only the response to the most recently issued request may update the
// predictions; a slow early response must never overwrite a later one.
type session struct {
	mu          sync.Mutex
	token       string
	issued      uint64
	applied     uint64
	predictions []Prediction
	lastUsed    time.Time
}

func newSession() *session {
	return &session{
		token:       uuid.NewString(),
		predictions: []Prediction{},
		lastUsed:    time.Now(),
	}
}

// begin issues a new request sequence number and returns it together with
// the current session token.
func (s *session) begin() (uint64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.lastUsed = time.Now()
	return s.issued, s.token
}

// apply records a response. A stale response (one whose sequence is older
// than what is already applied, or older than a newer in-flight request that
// already landed) is discarded wholesale. Returns the visible predictions.
func (s *session) apply(seq uint64, predictions []Prediction) []Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.applied {
		s.applied = seq
		if predictions == nil {
			predictions = []Prediction{}
		}
		s.predictions = predictions
	}
	return s.predictions
}

// clear wipes the prediction list (sub-threshold or emptied input).
func (s *session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictions = []Prediction{}
	s.lastUsed = time.Now()
}

// selectPrediction closes out a completed search: the chosen description is
// returned for the form field, the list is cleared, and the token rotates so
// the next search starts a fresh billing session.
func (s *session) selectPrediction(placeID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.predictions {
		if p.PlaceID == placeID {
			s.predictions = []Prediction{}
			s.token = uuid.NewString()
			s.lastUsed = time.Now()
			return p.Description, true
		}
	}
	return "", false
}

func (s *session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastUsed) > ttl
}

// Sessions is the registry of live suggestion sessions, keyed by the opaque
// ID handed to the frontend. Sessions are evicted after a TTL since the
// frontend cannot reliably signal unmount.
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*session
	ttl  time.Duration
}

// NewSessions creates a session registry with the given idle TTL.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		byID: make(map[string]*session),
		ttl:  ttl,
	}
}

// Acquire returns the session for id, creating one when id is empty or
// unknown. The returned ID is what the frontend must echo on later calls.
func (r *Sessions) Acquire(id string) (string, *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if s, ok := r.byID[id]; ok {
			return id, s
		}
	}

	id = uuid.NewString()
	s := newSession()
	r.byID[id] = s
	return id, s
}

// Lookup returns an existing session without creating one.
func (r *Sessions) Lookup(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	return s, ok
}

// Sweep evicts sessions idle longer than the TTL.
func (r *Sessions) Sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.byID {
		if s.expired(now, r.ttl) {
			delete(r.byID, id)
		}
	}
}
