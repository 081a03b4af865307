package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-only-session-secret-change-me"

// Features toggles the decorative parts of the site independently.
type Features struct {
	Game      bool
	Cursor    bool
	Particles bool
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppBaseURL     string
	SessionSecret  string
	DataDir        string
	ContentDir     string
	DefaultLang    string
	NegotiateLang  bool
	Features       Features
	EmailProvider  string
	EmailAPIKey    string
	EmailSender    string
	NotifyTo       string
	PreviewTimeout time.Duration
	LogFormat      string
	LogLevel       string
}

// New loads configuration from the environment, reading a .env file first
// when one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) *Config {
	str := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	boolean := func(key string, def bool) bool {
		v, err := strconv.ParseBool(str(key, strconv.FormatBool(def)))
		if err != nil {
			slog.Warn("invalid boolean, using default", "key", key, "default", def)
			return def
		}
		return v
	}
	duration := func(key string, def time.Duration) time.Duration {
		v, err := time.ParseDuration(str(key, def.String()))
		if err != nil || v <= 0 {
			slog.Warn("invalid duration, using default", "key", key, "default", def)
			return def
		}
		return v
	}

	cfg := &Config{
		ServerAddr:    str("SERVER_ADDR", ":8080"),
		AppBaseURL:    str("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: str("SESSION_SECRET", ""),
		DataDir:       str("DATA_DIR", "data"),
		ContentDir:    str("CONTENT_DIR", ""),
		DefaultLang:   strings.ToLower(str("DEFAULT_LANG", "es")),
		NegotiateLang: boolean("NEGOTIATE_LANG", false),
		Features: Features{
			Game:      boolean("FEATURE_GAME", true),
			Cursor:    boolean("FEATURE_CURSOR", true),
			Particles: boolean("FEATURE_PARTICLES", true),
		},
		EmailProvider:  strings.ToLower(str("EMAIL_PROVIDER", "none")),
		EmailAPIKey:    str("EMAIL_API_KEY", ""),
		EmailSender:    str("EMAIL_SENDER", ""),
		NotifyTo:       str("CONTACT_NOTIFY_TO", ""),
		PreviewTimeout: duration("PREVIEW_TIMEOUT", 5*time.Second),
		LogFormat:      str("LOG_FORMAT", "text"),
		LogLevel:       str("LOG_LEVEL", "info"),
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}
