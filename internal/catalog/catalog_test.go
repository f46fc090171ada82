package catalog

import (
	"testing"

	"chimney_site_backend/internal/contact/transport"
)

func TestServicesMatchContactFormOptions(t *testing.T) {
	wanted := map[string]bool{
		transport.ServiceChimneySweeping:  false,
		transport.ServiceSafetyInspection: false,
		transport.ServiceChimneyRepair:    false,
		transport.ServiceCapInstallation:  false,
		transport.ServiceGasLogs:          false,
		transport.ServiceOther:            false,
	}

	for _, item := range Services() {
		if _, ok := wanted[item.Title]; !ok {
			t.Fatalf("catalog offers %q which the contact form does not accept", item.Title)
		}
		wanted[item.Title] = true
	}

	for title, seen := range wanted {
		if !seen {
			t.Fatalf("contact form accepts %q but the catalog does not offer it", title)
		}
	}
}

func TestServicesReturnsACopy(t *testing.T) {
	first := Services()
	first[0].Title = "mutated"

	if Services()[0].Title == "mutated" {
		t.Fatal("Services must not expose internal state")
	}
}
