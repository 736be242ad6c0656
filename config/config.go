package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Email    EmailConfig
	Upload   UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// DatabaseConfig holds the document store connection settings.
// Both fields are optional; when URL is empty the store is disabled and
// every endpoint that needs it degrades instead of failing startup.
type DatabaseConfig struct {
	URL  string // e.g. mongodb://localhost:27017
	Name string
}

// EmailConfig holds the Gmail submission credentials for the contact form.
// An incomplete config disables outbound email.
type EmailConfig struct {
	GmailUser        string
	GmailAppPassword string
	ContactTo        string // optional recipient override; defaults to GmailUser
}

// UploadConfig holds local video storage settings.
type UploadConfig struct {
	Dir string // directory uploaded files are written to and served from
}

// Configured reports whether outbound email can be attempted.
func (c EmailConfig) Configured() bool {
	return c.GmailUser != "" && c.GmailAppPassword != "" && c.Recipient() != ""
}

// Recipient returns the contact form destination address.
func (c EmailConfig) Recipient() string {
	if c.ContactTo != "" {
		return c.ContactTo
	}
	return c.GmailUser
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SEC", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SEC", "30"))

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8000"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Name: getEnv("DATABASE_NAME", ""),
		},
		Email: EmailConfig{
			GmailUser:        getEnv("GMAIL_USER", ""),
			GmailAppPassword: getEnv("GMAIL_APP_PASSWORD", ""),
			ContactTo:        getEnv("CONTACT_TO_EMAIL", ""),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
