// Package service implements the lead intake pipeline: a validated
// submission is sanitized, forwarded to the mail transport, and announced on
// the event bus. Submissions are never persisted; a lead exists only for the
// duration of its request.
package service

import (
	"context"
	"strings"

	"chimney_site_backend/internal/contact/transport"
	"chimney_site_backend/internal/email"
	"chimney_site_backend/internal/events"
	"chimney_site_backend/platform/apperr"
	"chimney_site_backend/platform/logger"
	"chimney_site_backend/platform/phone"
	"chimney_site_backend/platform/sanitize"

	"github.com/google/uuid"
)

// MsgSendFailed is the generic client-facing message for mail transport
// failures. The underlying error is logged server-side only.
const MsgSendFailed = "Failed to send message. Please try again later."

type Service struct {
	sender email.Sender
	bus    events.Bus
	log    *logger.Logger
}

func New(sender email.Sender, bus events.Bus, log *logger.Logger) *Service {
	return &Service{sender: sender, bus: bus, log: log}
}

// Submit forwards a validated contact request to the mail transport.
// Exactly one send is attempted; there is no retry and no record kept on
// failure. Returns the submission ID used in logs and the success payload.
func (s *Service) Submit(ctx context.Context, req transport.ContactRequest) (uuid.UUID, error) {
	submissionID := uuid.New()

	lead := email.Lead{
		Name:              sanitize.Text(req.Name),
		Email:             strings.TrimSpace(req.Email),
		Phone:             phone.NormalizeE164(req.Phone),
		Address:           sanitize.Text(req.Address),
		Service:           req.Service,
		Message:           sanitize.Text(req.Message),
		ContactPreference: preferenceLabel(req.ContactPreference),
	}

	if err := s.sender.SendLeadNotification(ctx, lead); err != nil {
		s.log.WithContext(ctx).MailError("lead_notification", err)
		return uuid.Nil, apperr.Wrap(apperr.KindInternal, MsgSendFailed, err)
	}

	s.log.WithContext(ctx).LeadEvent("submitted", submissionID.String(), req.Service)

	s.bus.Publish(ctx, events.LeadSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submissionID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Service:      lead.Service,
	})

	return submissionID, nil
}

func preferenceLabel(pref transport.ContactPreference) string {
	switch pref {
	case transport.ContactPreferenceEmail:
		return "Email"
	case transport.ContactPreferencePhone:
		return "Phone Call"
	default:
		return ""
	}
}
