package config

import (
	"log/slog"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	APIBaseURL   string
	SessionName  string
	SessionKey   []byte
	CSRFKey      []byte
	CookieSecure bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:         getEnv("APP_ADDR", ":8080"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:5000/api"),
		SessionName:  getEnv("SESSION_NAME", "attend-session"),
		SessionKey:   keyFromEnv("SESSION_KEY"),
		CSRFKey:      keyFromEnv("CSRF_KEY"),
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// keyFromEnv falls back to a random key, which invalidates existing sessions
// on every restart. Fine for local development, set the env var in production.
func keyFromEnv(key string) []byte {
	if value := os.Getenv(key); value != "" {
		return []byte(value)
	}
	slog.Warn("no key configured, using an ephemeral one", "env", key)
	return securecookie.GenerateRandomKey(32)
}
