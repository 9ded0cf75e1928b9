package config

import (
	"encoding/json"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Secret is a string type that redacts itself when printed
type Secret string

// String implements fmt.Stringer to redact the secret
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "***"
}

// MarshalJSON implements json.Marshaler to prevent secrets in JSON logs
func (s Secret) MarshalJSON() ([]byte, error) {
	if s == "" {
		return json.Marshal("")
	}
	return json.Marshal("***")
}

// Config holds the process-wide configuration, read once at startup.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	// Google ID token verification
	GoogleClientID string `env:"GOOGLE_CLIENT_ID,required,notEmpty"`

	// User session signing key. Admin sessions are issued elsewhere and
	// must never share this secret.
	JWTAccessSecret Secret `env:"JWT_ACCESS_SECRET,required,notEmpty"`

	FirestoreProjectID string `env:"FIRESTORE_PROJECT_ID,required,notEmpty"`
	FirestoreDatabase  string `env:"FIRESTORE_DATABASE"`

	UserFrontendURL  string `env:"USER_FRONTEND_URL"`
	AdminFrontendURL string `env:"ADMIN_FRONTEND_URL"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// AllowedOrigins returns the configured front-end origins, skipping
// unset entries.
func (c Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range []string{c.UserFrontendURL, c.AdminFrontendURL} {
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
