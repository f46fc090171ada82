package email

import "chimney_site_backend/internal/config"

// NewSender returns the configured Sender implementation. When email is
// disabled a NoopSender is returned so the intake pipeline still works in
// development environments without SMTP credentials.
func NewSender(cfg *config.Config) Sender {
	if !cfg.EmailEnabled {
		return NoopSender{}
	}
	return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFromName, cfg.LeadInbox)
}
