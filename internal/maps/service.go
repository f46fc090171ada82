package maps

import (
	"context"
	"time"

	"chimney_site_backend/platform/apperr"
	"chimney_site_backend/platform/logger"
)

// minQueryLength is the guard against over-querying the upstream service:
// shorter input clears the prediction list instead of issuing a request.
const minQueryLength = 2

const sessionTTL = 10 * time.Minute

// Service bridges free-text address input to the place-prediction upstream.
// Any upstream failure degrades to an empty prediction list; autocomplete is
// an enhancement and must never block typing or form submission.
type Service struct {
	provider *ClientProvider
	sessions *Sessions
	log      *logger.Logger
	stop     chan struct{}
}

func NewService(provider *ClientProvider, log *logger.Logger) *Service {
	s := &Service{
		provider: provider,
		sessions: NewSessions(sessionTTL),
		log:      log,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Close stops the session janitor.
func (s *Service) Close() {
	close(s.stop)
}

func (s *Service) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.sessions.Sweep(now)
		}
	}
}

// Lookup returns address predictions for the given input within the given
// suggestion session (created when sessionID is empty or unknown).
func (s *Service) Lookup(ctx context.Context, sessionID, query string) LookupResponse {
	id, sess := s.sessions.Acquire(sessionID)

	if len(query) < minQueryLength {
		sess.clear()
		return LookupResponse{SessionID: id, Predictions: []Prediction{}}
	}

	client, ready := s.provider.Get()
	if !ready {
		s.log.WithContext(ctx).Debug("autocomplete not ready", "state", s.provider.State().String())
		return LookupResponse{SessionID: id, Predictions: []Prediction{}}
	}

	seq, token := sess.begin()

	predictions, err := client.Predictions(ctx, query, token)
	if err != nil {
		// Degrade silently; the form still works without suggestions.
		s.log.WithContext(ctx).Warn("address lookup failed", "error", err.Error())
		return LookupResponse{SessionID: id, Predictions: sess.apply(seq, []Prediction{})}
	}

	return LookupResponse{SessionID: id, Predictions: sess.apply(seq, predictions)}
}

// Select closes out a suggestion session with the chosen prediction and
// returns the address text for the form field.
func (s *Service) Select(sessionID, placeID string) (string, error) {
	sess, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return "", apperr.NotFound("prediction not found")
	}
	address, ok := sess.selectPrediction(placeID)
	if !ok {
		return "", apperr.NotFound("prediction not found")
	}
	return address, nil
}
