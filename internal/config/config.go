package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/leavedesk/leavedesk/internal/mailer"
)

type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	CookieSecure bool

	SMTP mailer.Config

	// Service-account credentials for Sheets/Drive; empty means the
	// spreadsheet integration is disabled.
	GoogleCredentialsJSON []byte

	FallbackSheetID    string
	FallbackRecipients []string
}

// Load reads configuration from the environment, with .env support for
// local development. Every external block (SMTP, Sheets, fallbacks) is
// independently optional.
func Load() (Config, error) {
	_ = godotenv.Load()

	config := Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", filepath.Join("data", "leavedesk.db")),
		SecretKey:       getEnv("SECRET_KEY", "change_me_in_production"),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		FallbackSheetID: os.Getenv("FALLBACK_SHEET_ID"),
		SMTP: mailer.Config{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}

	if raw := strings.TrimSpace(os.Getenv("FALLBACK_NOTIFICATION_EMAILS")); raw != "" {
		for _, entry := range strings.Split(raw, ",") {
			if email := strings.TrimSpace(entry); email != "" {
				config.FallbackRecipients = append(config.FallbackRecipients, email)
			}
		}
	}

	credentials, err := loadGoogleCredentials(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	if err != nil {
		return Config{}, err
	}
	config.GoogleCredentialsJSON = credentials

	return config, nil
}

// loadGoogleCredentials accepts either inline JSON or a path to a key
// file.
func loadGoogleCredentials(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "{") {
		return []byte(raw), nil
	}

	content, err := os.ReadFile(raw)
	if err != nil {
		return nil, fmt.Errorf("read service account key %s: %w", raw, err)
	}
	return content, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	return raw == "1" || strings.EqualFold(raw, "true")
}
