// Package notification subscribes to domain events and records lead
// activity. It is not HTTP-facing. The notification email itself is sent
// synchronously by the contact service; this module is the hook point for
// anything that should happen after a lead is in (activity log today,
// CRM forwarding tomorrow).
package notification

import (
	"context"
	"fmt"

	"chimney_site_backend/internal/events"
	"chimney_site_backend/platform/logger"
)

// Module handles post-submission lead events.
type Module struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Module {
	return &Module{log: log}
}

// RegisterHandlers subscribes the module to the events it cares about.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), events.HandlerFunc(m.handleLeadSubmitted))
}

func (m *Module) handleLeadSubmitted(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadSubmitted)
	if !ok {
		return fmt.Errorf("unexpected event type for %s", event.EventName())
	}

	m.log.LeadEvent("notified", e.SubmissionID.String(), e.Service)
	return nil
}
