// Package email provides the outbound mail transport for lead notifications.
package email

import "context"

// Lead carries the sanitized contact-form fields that make up a
// notification email.
type Lead struct {
	Name              string
	Email             string
	Phone             string
	Address           string
	Service           string
	Message           string
	ContactPreference string // "Email", "Phone Call", or "" when not collected
}

// Sender delivers lead notifications to the business inbox.
type Sender interface {
	// SendLeadNotification sends a plain-text email enumerating the lead's
	// fields to the configured inbox, with Reply-To set to the submitter's
	// address so the business can respond directly.
	SendLeadNotification(ctx context.Context, lead Lead) error
}

// NoopSender is used in tests and when email is disabled.
type NoopSender struct{}

func (NoopSender) SendLeadNotification(ctx context.Context, lead Lead) error {
	return nil
}
