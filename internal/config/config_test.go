package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(env(nil))

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "es", cfg.DefaultLang)
	assert.Equal(t, devSessionSecret, cfg.SessionSecret)
	assert.Equal(t, Features{Game: true, Cursor: true, Particles: true}, cfg.Features)
	assert.Equal(t, "none", cfg.EmailProvider)
	assert.Equal(t, 5*time.Second, cfg.PreviewTimeout)
	assert.False(t, cfg.NegotiateLang)
	assert.Empty(t, cfg.ContentDir)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"SERVER_ADDR":       ":9000",
		"SESSION_SECRET":    "s3cret",
		"DEFAULT_LANG":      "EN",
		"NEGOTIATE_LANG":    "true",
		"FEATURE_GAME":      "false",
		"FEATURE_PARTICLES": "0",
		"EMAIL_PROVIDER":    "Log",
		"PREVIEW_TIMEOUT":   "750ms",
		"CONTENT_DIR":       "web/content",
	}))

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "en", cfg.DefaultLang)
	assert.True(t, cfg.NegotiateLang)
	assert.Equal(t, Features{Game: false, Cursor: true, Particles: false}, cfg.Features)
	assert.Equal(t, "log", cfg.EmailProvider)
	assert.Equal(t, 750*time.Millisecond, cfg.PreviewTimeout)
	assert.Equal(t, "web/content", cfg.ContentDir)
}

func TestFromEnvInvalidValuesFallBack(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"FEATURE_CURSOR":  "maybe",
		"PREVIEW_TIMEOUT": "soon",
	}))
	assert.True(t, cfg.Features.Cursor)
	assert.Equal(t, 5*time.Second, cfg.PreviewTimeout)
}
