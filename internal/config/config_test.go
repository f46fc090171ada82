package config

import "testing"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("SMTP_USERNAME", "leads@topratedchimney.com")
	t.Setenv("SMTP_PASSWORD", "app-password")
	t.Setenv("LEAD_INBOX_ADDRESS", "")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LEAD_INBOX_ADDRESS", "owner@topratedchimney.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != 587 {
		t.Fatalf("unexpected SMTP defaults: %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.LeadInbox != "owner@topratedchimney.com" {
		t.Fatalf("expected inbox override, got %q", cfg.LeadInbox)
	}
	if cfg.PlacesCountry != "us" {
		t.Fatalf("expected default places country us, got %q", cfg.PlacesCountry)
	}
}

func TestLoadInboxFallsBackToBusinessAddress(t *testing.T) {
	for _, value := range []string{"", "   "} {
		setBaseEnv(t)
		t.Setenv("LEAD_INBOX_ADDRESS", value)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load with inbox %q: %v", value, err)
		}
		if cfg.LeadInbox != defaultLeadInbox {
			t.Fatalf("expected fallback inbox %q for value %q, got %q", defaultLeadInbox, value, cfg.LeadInbox)
		}
	}
}

func TestLoadRequiresSMTPCredentialsWhenEmailEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SMTP_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing SMTP credentials")
	}
}

func TestLoadAllowsMissingCredentialsWhenEmailDisabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("EMAIL_ENABLED", "false")
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EmailEnabled {
		t.Fatal("expected email disabled")
	}
}

func TestLoadRejectsCredentialedWildcardCORS(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ALLOW_ALL", "true")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for wildcard CORS with credentials")
	}
}
