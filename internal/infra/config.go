package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	CatalogPath        string
	DisplayLocale      string
	DisplayCurrency    string
	CurrencySymbol     string
	WhatsAppPhone      string
	WhatsAppEndpoint   string
	GeoIPDBPath        string
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CatalogPath:        strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		DisplayLocale:      getEnv("DISPLAY_LOCALE", "pt-BR"),
		DisplayCurrency:    strings.ToUpper(getEnv("DISPLAY_CURRENCY", "BRL")),
		CurrencySymbol:     getEnv("CURRENCY_SYMBOL", "R$"),
		WhatsAppPhone:      getEnv("WHATSAPP_PHONE", "5581994527528"),
		WhatsAppEndpoint:   getEnv("WHATSAPP_ENDPOINT", "https://wa.me"),
		GeoIPDBPath:        strings.TrimSpace(os.Getenv("GEOIP_DB_PATH")),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	timeouts := []struct {
		key      string
		fallback int
		dst      *time.Duration
	}{
		{"HTTP_READ_TIMEOUT_SECONDS", 15, &cfg.HTTPReadTimeout},
		{"HTTP_WRITE_TIMEOUT_SECONDS", 30, &cfg.HTTPWriteTimeout},
		{"HTTP_IDLE_TIMEOUT_SECONDS", 60, &cfg.HTTPIdleTimeout},
	}
	for _, tm := range timeouts {
		secs, err := getPositiveInt(tm.key, tm.fallback)
		if err != nil {
			return nil, err
		}
		*tm.dst = time.Duration(secs) * time.Second
	}

	rate, err := getPositiveInt("RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitPerMin = rate
	if len(cfg.DisplayCurrency) != 3 {
		return nil, fmt.Errorf("DISPLAY_CURRENCY must be an ISO 4217 code, got %q", cfg.DisplayCurrency)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// getEnvInt returns fallback when key is unset or blank and an error when
// the value is not an integer.
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return i, nil
}

func getPositiveInt(key string, fallback int) (int, error) {
	i, err := getEnvInt(key, fallback)
	if err != nil {
		return 0, err
	}
	if i <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, i)
	}
	return i, nil
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
