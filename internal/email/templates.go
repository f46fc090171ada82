package email

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.txt
var templateFS embed.FS

const subjectLeadNotification = "new customer (chimney) website"

var leadTemplates = template.Must(template.ParseFS(templateFS, "templates/*.txt"))

// renderLeadNotification produces the plain-text body for a lead email.
func renderLeadNotification(lead Lead) (string, error) {
	var buf bytes.Buffer
	if err := leadTemplates.ExecuteTemplate(&buf, "lead_notification.txt", lead); err != nil {
		return "", fmt.Errorf("render lead notification: %w", err)
	}
	return buf.String(), nil
}
