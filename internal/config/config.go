package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL       string
	APITimeout       time.Duration
	AuthCookieName   string
	AuthCookieFile   string
	CacheTTL         time.Duration
	HTTPAddr         string
	HTTPDebug        bool
	LogLevel         string
	Env              string // dev|prod
	SentryDSN        string
	WarmSecretariaID string
	WarmInterval     time.Duration
}

func Load() (*Config, error) {
	apiTimeout, err := parseDuration("API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	warmInterval, err := parseDuration("WARM_INTERVAL", 4*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIBaseURL:       strings.TrimRight(getenv("API_BASE_URL", "http://localhost:8080"), "/"),
		APITimeout:       apiTimeout,
		AuthCookieName:   getenv("AUTH_COOKIE_NAME", "painel_token"),
		AuthCookieFile:   mustEnv("AUTH_COOKIE_FILE"),
		CacheTTL:         cacheTTL,
		HTTPAddr:         getenv("HTTP_ADDR", ":8081"),
		HTTPDebug:        parseBool(os.Getenv("HTTP_DEBUG")),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		Env:              getenv("ENV", "dev"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		WarmSecretariaID: os.Getenv("WARM_SECRETARIA_ID"),
		WarmInterval:     warmInterval,
	}
	return cfg, nil
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func parseDuration(k string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", k, d)
	}
	return d, nil
}
