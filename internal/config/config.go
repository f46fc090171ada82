package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values. It is loaded once at
// startup; required settings are checked here so misconfiguration fails fast
// instead of surfacing per-request.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	EmailEnabled  bool
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	EmailFromName string
	// LeadInbox is the destination for contact-form notifications. Falls
	// back to the business inbox when no override is configured.
	LeadInbox string

	PlacesAPIKey  string
	PlacesCountry string
}

const defaultLeadInbox = "info@topratedchimney.com"

func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		EmailEnabled:   emailEnabled,
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Top Rated Chimney Services"),
		LeadInbox:      getEnv("LEAD_INBOX_ADDRESS", defaultLeadInbox),
		PlacesAPIKey:   getEnv("PLACES_API_KEY", ""),
		PlacesCountry:  getEnv("PLACES_COUNTRY", "us"),
	}

	if cfg.EmailEnabled && (cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
		return nil, fmt.Errorf("SMTP_USERNAME and SMTP_PASSWORD are required when EMAIL_ENABLED is true")
	}
	if cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("SMTP_PORT must be a positive integer")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

// getEnv treats a set-but-empty variable as absent, so defaulted keys such
// as LEAD_INBOX_ADDRESS keep their fallback when the deployment leaves the
// value blank.
func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
