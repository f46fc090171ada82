package email

import (
	"strings"
	"testing"
)

func testLead() Lead {
	return Lead{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "+17705551234",
		Address:           "123 Main St, Atlanta, GA 30067",
		Service:           "Chimney Repair",
		Message:           "Please call to schedule an inspection.",
		ContactPreference: "Phone Call",
	}
}

func TestRenderLeadNotificationContainsAllFields(t *testing.T) {
	body, err := renderLeadNotification(testLead())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Name: Jane Doe",
		"Email: jane@example.com",
		"Phone: +17705551234",
		"Property Address: 123 Main St, Atlanta, GA 30067",
		"Service Needed: Chimney Repair",
		"Preferred Contact Method: Phone Call",
		"Please call to schedule an inspection.",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderLeadNotificationOmitsAbsentPreference(t *testing.T) {
	lead := testLead()
	lead.ContactPreference = ""

	body, err := renderLeadNotification(lead)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "Preferred Contact Method") {
		t.Fatalf("preference line should be omitted when not collected:\n%s", body)
	}
}
