package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration. The console and the dev
// backend share one struct; each binary reads the sections it needs.
type Config struct {
	// API client configuration (console)
	API APIConfig

	// Session persistence (console)
	Session SessionConfig

	// Server configuration (dev backend)
	Server ServerConfig

	// Database configuration (dev backend, optional)
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Rate limiting configuration
	RateLimit RateLimitConfig

	// CORS configuration
	CORS CORSConfig

	// Registration gate and fixtures (dev backend)
	DevAPI DevAPIConfig

	// Logging configuration
	Logging LoggingConfig

	// Application metadata
	App AppConfig
}

// APIConfig holds the restaurant API client configuration
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:5000/api"`
	Timeout time.Duration `env:"API_TIMEOUT, default=15s"`
}

// SessionConfig selects where the console keeps its session. File defaults
// to DefaultSessionFile; InMemory keeps the session for one run only.
type SessionConfig struct {
	File     string `env:"CONSOLE_SESSION_FILE"`
	InMemory bool   `env:"CONSOLE_SESSION_IN_MEMORY, default=false"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT, default=:5000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT, default=15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT, default=15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT, default=60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT, default=30s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME, default=5m"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret         string        `env:"JWT_SECRET, default=dev-only-secret-change-me"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL, default=24h"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool    `env:"RATE_LIMIT_ENABLED, default=true"`
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS, default=10"`
	BurstSize         int     `env:"RATE_LIMIT_BURST, default=20"`
	AuthRPS           float64 `env:"RATE_LIMIT_AUTH_RPS, default=1"` // Stricter limit for auth endpoints
	AuthBurst         int     `env:"RATE_LIMIT_AUTH_BURST, default=5"`
}

// CORSConfig holds the origins allowed to call the dev backend from a browser
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// DevAPIConfig holds dev backend behaviour
type DevAPIConfig struct {
	InviteCode string `env:"REGISTRATION_INVITE_CODE"`
	Seed       bool   `env:"DEVAPI_SEED, default=true"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`  // debug, info, warn, error
	Format string `env:"LOG_FORMAT, default=json"` // json, text
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `env:"APP_NAME, default=restaurant-console"`
	Version     string `env:"APP_VERSION, default=dev"`
	Environment string `env:"APP_ENV, default=development"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return load(ctx, envconfig.OsLookuper())
}

// LoadFrom decodes configuration from an explicit key/value map. It skips
// the .env file and the process environment.
func LoadFrom(ctx context.Context, values map[string]string) (*Config, error) {
	return load(ctx, envconfig.MapLookuper(values))
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if cfg.Session.InMemory {
		cfg.Session.File = ""
	} else if cfg.Session.File == "" {
		cfg.Session.File = DefaultSessionFile()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []string

	if c.API.BaseURL == "" {
		errs = append(errs, "API_BASE_URL is required")
	} else if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, "API_BASE_URL must start with http:// or https://")
	}

	if c.API.Timeout <= 0 {
		errs = append(errs, "API_TIMEOUT must be positive")
	}

	if c.JWT.Secret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}

	// Security validations
	if c.App.Environment == "production" {
		if len(c.JWT.Secret) < 32 {
			errs = append(errs, "JWT_SECRET must be at least 32 characters in production")
		}

		if c.DevAPI.InviteCode == "" {
			errs = append(errs, "REGISTRATION_INVITE_CODE must be set in production")
		}
	}

	// Logical validations
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, "DB_MAX_IDLE_CONNS cannot be greater than DB_MAX_OPEN_CONNS")
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, "LOG_FORMAT must be json or text")
	}

	if len(errs) > 0 {
		return errors.New("configuration errors:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// DefaultSessionFile is session.json under the user's config directory. It
// returns "" when the platform has no config directory.
func DefaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "restaurant-console", "session.json")
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesDatabase reports whether the dev backend should persist to postgres
func (c *Config) UsesDatabase() bool {
	return c.Database.URL != ""
}

// String returns a redacted string representation of the config (safe for logging)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{API: %s, Server: %s, DB: %s, JWT: [REDACTED], Invite: %s, RateLimit: %v, Environment: %s}",
		c.API.BaseURL,
		c.Server.Port,
		redactURL(c.Database.URL),
		redactSecret(c.DevAPI.InviteCode),
		c.RateLimit.Enabled,
		c.App.Environment,
	)
}

// redactURL redacts the credentials of a database URL
func redactURL(url string) string {
	if url == "" {
		return ""
	}
	if idx := strings.LastIndex(url, "@"); idx > 0 {
		return "[REDACTED]" + url[idx:]
	}
	return "[REDACTED]"
}

func redactSecret(s string) string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}
