package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail. One message is dialed and sent per call; there is no pooled
// connection and no retry.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	inbox     string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
// Notifications are delivered to inbox; the From address is the
// authenticated account itself, as most providers reject mismatched senders.
func NewSMTPSender(host string, port int, username, password, fromName, inbox string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: username,
		inbox:     inbox,
	}
}

// SendLeadNotification renders and sends a lead notification email.
func (s *SMTPSender) SendLeadNotification(ctx context.Context, lead Lead) error {
	body, err := renderLeadNotification(lead)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.inbox); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	if err := msg.ReplyTo(lead.Email); err != nil {
		return fmt.Errorf("smtp reply-to: %w", err)
	}
	msg.Subject(subjectLeadNotification)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

var _ Sender = (*SMTPSender)(nil)
