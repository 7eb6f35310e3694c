package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/tsapigen/tsapigen/generator"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled    bool
	CacheMaxSize    int
	CacheFileTTL    time.Duration
	CacheContentTTL time.Duration

	// Inline content limit.
	MaxInlineSize int64

	// Generate tool defaults.
	GenerateLanguage generator.Language
	GenerateStrict   bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TSAPIGEN_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:     envBool("TSAPIGEN_CACHE_ENABLED", true),
		CacheMaxSize:     envInt("TSAPIGEN_CACHE_MAX_SIZE", 10),
		CacheFileTTL:     envDuration("TSAPIGEN_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:  envDuration("TSAPIGEN_CACHE_CONTENT_TTL", 15*time.Minute),
		MaxInlineSize:    int64(envInt("TSAPIGEN_MAX_INLINE_SIZE", 4*1024*1024)),
		GenerateLanguage: envLanguage("TSAPIGEN_GENERATE_LANGUAGE", generator.LanguageTypeScript),
		GenerateStrict:   envBool("TSAPIGEN_GENERATE_STRICT", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envLanguage(key string, fallback generator.Language) generator.Language {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	lang := generator.Language(v)
	if lang != generator.LanguageTypeScript && lang != generator.LanguageJavaScript {
		slog.Warn("invalid language env var, using default", "key", key, "value", v, "default", string(fallback))
		return fallback
	}
	return lang
}
