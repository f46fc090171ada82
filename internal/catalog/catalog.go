// Package catalog serves the static site data the pages and the contact
// form share: the offered services and the company contact details.
package catalog

import "chimney_site_backend/internal/contact/transport"

// ServiceItem describes one offered service for the services pages and the
// contact form's dropdown.
type ServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// CompanyInfo is the single source of truth for business contact details.
type CompanyInfo struct {
	Name         string `json:"name"`
	PhoneDisplay string `json:"phoneDisplay"`
	PhoneTel     string `json:"phoneTel"`
	Address      string `json:"address"`
	CityStateZip string `json:"cityStateZip"`
	Email        string `json:"email"`
	Area         string `json:"area"`
}

var services = []ServiceItem{
	{
		ID:          "chimney-sweeping",
		Title:       transport.ServiceChimneySweeping,
		Description: "Thorough cleaning of flue and firebox to remove creosote buildup and keep your fireplace safe.",
		Link:        "/services/chimney-sweeping",
	},
	{
		ID:          "safety-inspection",
		Title:       transport.ServiceSafetyInspection,
		Description: "Full chimney safety inspection covering structure, liner, cap, and draft performance.",
		Link:        "/services/chimney-inspection",
	},
	{
		ID:          "chimney-repair",
		Title:       transport.ServiceChimneyRepair,
		Description: "Masonry, crown, and flashing repairs that stop leaks and structural deterioration.",
		Link:        "/services/chimney-repair",
	},
	{
		ID:          "cap-installation",
		Title:       transport.ServiceCapInstallation,
		Description: "Chimney cap fitting to keep out rain, debris, and animals.",
		Link:        "/services/cap-installation",
	},
	{
		ID:          "gas-logs",
		Title:       transport.ServiceGasLogs,
		Description: "Gas log and fireplace installation and servicing.",
		Link:        "/services/gas-logs",
	},
	{
		ID:          "other",
		Title:       transport.ServiceOther,
		Description: "Anything chimney related not listed above.",
		Link:        "/services",
	},
}

var company = CompanyInfo{
	Name:         "Top Rated Chimney Services",
	PhoneDisplay: "770-799-6264",
	PhoneTel:     "7707996264",
	Address:      "1685 Terrell Mill Rd SE, Ste 204C",
	CityStateZip: "Marietta, GA 30067",
	Email:        "info@topratedchimney.com",
	Area:         "Serving Greater Atlanta",
}

// Services returns the offered services.
func Services() []ServiceItem {
	out := make([]ServiceItem, len(services))
	copy(out, services)
	return out
}

// Company returns the business contact details.
func Company() CompanyInfo {
	return company
}
