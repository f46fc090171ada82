// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"chimney_site_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Contact Domain Events
// =============================================================================

// LeadSubmitted is published after a contact-form lead has been validated
// and the notification email was handed to the mail transport.
type LeadSubmitted struct {
	BaseEvent
	SubmissionID uuid.UUID `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Service      string    `json:"service"`
}

func (e LeadSubmitted) EventName() string { return "contact.lead.submitted" }
