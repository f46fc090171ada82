// Package transport defines the wire types for the contact intake endpoint.
package transport

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactPreference is how the lead wants to be reached back.
type ContactPreference string

const (
	ContactPreferenceEmail ContactPreference = "email"
	ContactPreferencePhone ContactPreference = "phone"
)

// Offered services. The contact form's service dropdown and the catalog
// module are both built from this set.
const (
	ServiceChimneySweeping  = "Chimney Sweeping"
	ServiceSafetyInspection = "Safety Inspection"
	ServiceChimneyRepair    = "Chimney Repair"
	ServiceCapInstallation  = "Cap Installation"
	ServiceGasLogs          = "Gas Logs & Fireplaces"
	ServiceOther            = "Other"
)

// ContactRequest is the contact-form submission body. The client performs
// the same checks as a UX convenience; these tags are the security boundary.
type ContactRequest struct {
	Name              string            `json:"name" validate:"required,min=2"`
	Email             string            `json:"email" validate:"required,email"`
	Phone             string            `json:"phone" validate:"required,min=10"`
	Service           string            `json:"service" validate:"required,oneof='Chimney Sweeping' 'Safety Inspection' 'Chimney Repair' 'Cap Installation' 'Gas Logs & Fireplaces' 'Other'"`
	Address           string            `json:"address" validate:"required,min=5"`
	Message           string            `json:"message" validate:"required,min=10"`
	ContactPreference ContactPreference `json:"contactPreference,omitempty" validate:"omitempty,oneof=email phone"`
}

// SuccessResponse is returned on a delivered submission.
type SuccessResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	SubmissionID uuid.UUID `json:"submissionId"`
}

// ErrorResponse is returned on rejection or transport failure. Error carries
// exactly one human-readable message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Per-field rejection messages. A rejected request surfaces the first
// violated field's message, nothing else.
var fieldMessages = map[string]string{
	"Name":              "Name is required",
	"Email":             "Valid email is required",
	"Phone":             "Valid phone is required",
	"Service":           "Service is required",
	"Address":           "Valid address is required",
	"Message":           "Message is required",
	"ContactPreference": "Contact preference is required",
}

// MsgInvalidBody is used when the request body is not valid JSON at all.
const MsgInvalidBody = "Invalid request body"

// FirstViolationMessage maps a validation error to the first violated
// field's message.
func FirstViolationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		if msg, found := fieldMessages[errs[0].StructField()]; found {
			return msg
		}
	}
	return MsgInvalidBody
}
