package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Remote workspace API
	Backend BackendConfig

	// Auth store
	Session SessionConfig
	Redis   RedisConfig
	Login   LoginConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig
	OTel           OTelConfig

	// Presentation
	Dashboard DashboardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type BackendConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables
	RateBurst int
}

type SessionConfig struct {
	Store        string // "memory" or "redis"
	CookieName   string
	CookieDomain string
	CookieSecure bool
	TTL          time.Duration
	MaxEntries   int
}

type RedisConfig struct {
	URL       string
	KeyPrefix string
}

type LoginConfig struct {
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string // "k=v,k=v"
	ServiceName    string
	ServiceVersion string
}

type DashboardConfig struct {
	Timezone string
	Currency string
	PerPage  int
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Remote API
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	if apiURL := viper.GetString("api_url"); apiURL != "" {
		cfg.Backend.BaseURL = apiURL
	}
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.RateLimit = viper.GetFloat64("backend.rate_limit")
	cfg.Backend.RateBurst = viper.GetInt("backend.rate_burst")

	// Auth store
	cfg.Session.Store = strings.ToLower(viper.GetString("session.store"))
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieDomain = viper.GetString("session.cookie_domain")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")

	cfg.Redis.URL = viper.GetString("redis.url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")

	cfg.Login.RateLimitPerMin = viper.GetInt("login.rate_limit_per_min")

	// Integrations
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.OTel.Endpoint = viper.GetString("otel.endpoint")
	if endpoint := viper.GetString("otel_exporter_otlp_endpoint"); endpoint != "" {
		cfg.OTel.Endpoint = endpoint
	}
	cfg.OTel.Headers = viper.GetString("otel.headers")
	cfg.OTel.ServiceName = viper.GetString("otel.service_name")
	cfg.OTel.ServiceVersion = viper.GetString("otel.service_version")

	// Presentation
	cfg.Dashboard.Timezone = viper.GetString("dashboard.timezone")
	cfg.Dashboard.Currency = viper.GetString("dashboard.currency")
	cfg.Dashboard.PerPage = viper.GetInt("dashboard.per_page")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.base_url", "http://localhost:8000/api")
	viper.SetDefault("backend.timeout", "30s")
	viper.SetDefault("backend.rate_limit", 0)
	viper.SetDefault("backend.rate_burst", 10)

	viper.SetDefault("session.store", "memory")
	viper.SetDefault("session.cookie_name", "ws_session")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("redis.key_prefix", "wsadmin:session:")
	viper.SetDefault("login.rate_limit_per_min", 30)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("otel.service_name", "workspace-admin")
	viper.SetDefault("otel.service_version", "1.0.0")

	viper.SetDefault("dashboard.timezone", "Africa/Cairo")
	viper.SetDefault("dashboard.currency", "EGP")
	viper.SetDefault("dashboard.per_page", 10)
}

func (cfg *Config) validate() error {
	if cfg.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	switch cfg.Session.Store {
	case "memory":
	case "redis":
		if cfg.Redis.URL == "" {
			return errors.New("redis.url is required when session.store is redis")
		}
	default:
		return fmt.Errorf("unknown session.store %q", cfg.Session.Store)
	}
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return errors.New("google_calendar.credentials_path is required when google_calendar.enabled")
	}
	return nil
}
