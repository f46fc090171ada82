package maps

import (
	"testing"
	"time"
)

func TestSessionStaleResponseIsDiscarded(t *testing.T) {
	s := newSession()

	seqOld, _ := s.begin()
	seqNew, _ := s.begin()

	fresh := []Prediction{{PlaceID: "p2", Description: "456 Oak Ave, Marietta, GA"}}
	got := s.apply(seqNew, fresh)
	if len(got) != 1 || got[0].PlaceID != "p2" {
		t.Fatalf("expected fresh predictions applied, got %v", got)
	}

	// The older request resolves late; its result must not overwrite.
	stale := []Prediction{{PlaceID: "p1", Description: "123 Main St, Atlanta, GA"}}
	got = s.apply(seqOld, stale)
	if len(got) != 1 || got[0].PlaceID != "p2" {
		t.Fatalf("stale response overwrote newer predictions: %v", got)
	}
}

func TestSessionSelectClearsAndRotatesToken(t *testing.T) {
	s := newSession()
	tokenBefore := s.token

	seq, _ := s.begin()
	s.apply(seq, []Prediction{
		{PlaceID: "p1", Description: "123 Main St, Atlanta, GA"},
		{PlaceID: "p2", Description: "456 Oak Ave, Marietta, GA"},
	})

	address, ok := s.selectPrediction("p1")
	if !ok {
		t.Fatal("expected selection to succeed")
	}
	if address != "123 Main St, Atlanta, GA" {
		t.Fatalf("expected the prediction's description, got %q", address)
	}
	if len(s.predictions) != 0 {
		t.Fatalf("expected predictions cleared after selection, got %d", len(s.predictions))
	}
	if s.token == tokenBefore {
		t.Fatal("expected session token rotated after selection")
	}
}

func TestSessionSelectUnknownPlace(t *testing.T) {
	s := newSession()
	if _, ok := s.selectPrediction("missing"); ok {
		t.Fatal("expected selection of unknown place to fail")
	}
}

func TestSessionsAcquireAndSweep(t *testing.T) {
	r := NewSessions(time.Millisecond)

	id, first := r.Acquire("")
	if id == "" || first == nil {
		t.Fatal("expected a new session")
	}

	sameID, same := r.Acquire(id)
	if sameID != id || same != first {
		t.Fatal("expected the existing session to be reused")
	}

	// Unknown IDs get a fresh session rather than an error.
	otherID, other := r.Acquire("unknown")
	if otherID == "unknown" || other == first {
		t.Fatal("expected a fresh session for an unknown ID")
	}

	r.Sweep(time.Now().Add(time.Minute))
	if _, ok := r.Lookup(id); ok {
		t.Fatal("expected idle session to be evicted")
	}
}
