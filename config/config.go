// Package config loads the application settings from defaults, an optional
// TOML file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config is the complete application configuration.
type Config struct {
	HTTP       HTTP       `toml:"http"`
	Database   Database   `toml:"database"`
	Auth       Auth       `toml:"auth"`
	RateLimit  RateLimit  `toml:"rate-limit"`
	Validation Validation `toml:"validation"`
	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration `toml:"shutdown-timeout" validate:"gt=0"`
}

// HTTP configures the REST surface.
type HTTP struct {
	Addr string `toml:"addr" validate:"required"`
	// PublicBaseURL prefixes the redirect targets of the envelopes.
	PublicBaseURL        string `toml:"public-base-url" validate:"required,url"`
	AccessLog            bool   `toml:"access-log"`
	ExposeGlobalListings bool   `toml:"expose-global-listings"`
}

// Database selects the store.
type Database struct {
	Driver       string `toml:"driver" validate:"oneof=sqlite postgres"`
	DSN          string `toml:"dsn" validate:"required"`
	Debug        bool   `toml:"debug"`
	MaxOpenConns int    `toml:"max-open-conns" validate:"gte=0"`
}

// Auth configures tokens and password hashing.
type Auth struct {
	SecretKey  string        `toml:"secret-key" validate:"required,min=16"`
	Issuer     string        `toml:"issuer" validate:"required"`
	AccessTTL  time.Duration `toml:"access-ttl" validate:"gt=0"`
	RefreshTTL time.Duration `toml:"refresh-ttl" validate:"gtfield=AccessTTL"`
	BcryptCost int           `toml:"bcrypt-cost" validate:"gte=4,lte=31"`
}

// RateLimit configures the Redis sliding window. An empty RedisAddr
// disables rate limiting.
type RateLimit struct {
	RedisAddr         string        `toml:"redis-addr"`
	RedisPassword     string        `toml:"redis-password"`
	RedisDB           int           `toml:"redis-db" validate:"gte=0"`
	RequestsPerWindow int           `toml:"requests-per-window" validate:"gt=0"`
	Window            time.Duration `toml:"window" validate:"gt=0"`
}

// Enabled reports whether a Redis address is configured.
func (r RateLimit) Enabled() bool {
	return r.RedisAddr != ""
}

// Validation selects the optional form policies.
type Validation struct {
	// EmailShape checks the address format on register and login.
	EmailShape bool `toml:"email-shape"`
	// PasswordIdentityRule rejects passwords containing the user's names or
	// email instead of the banned literal.
	PasswordIdentityRule bool `toml:"password-identity-rule"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:          ":3000",
			PublicBaseURL: "http://127.0.0.1:5000",
			AccessLog:     true,
		},
		Database: Database{
			Driver: "sqlite",
			DSN:    "tasktracker.db",
		},
		Auth: Auth{
			SecretKey:  "finalghecko-dev-secret",
			Issuer:     "finalghecko",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
			BcryptCost: 12,
		},
		RateLimit: RateLimit{
			RequestsPerWindow: 120,
			Window:            time.Minute,
		},
		ShutdownTimeout: 30 * time.Second,
	}
}

// Load builds the configuration. path may be empty; a named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", f.Namespace(), f.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.PublicBaseURL = getEnv("PUBLIC_BASE_URL", cfg.HTTP.PublicBaseURL)
	cfg.HTTP.AccessLog = getEnvBool("HTTP_ACCESS_LOG", cfg.HTTP.AccessLog)
	cfg.HTTP.ExposeGlobalListings = getEnvBool("EXPOSE_GLOBAL_LISTINGS", cfg.HTTP.ExposeGlobalListings)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnv("DB_PATH", cfg.Database.DSN)
	cfg.Database.DSN = getEnv("DATABASE_URL", cfg.Database.DSN)
	cfg.Database.Debug = getEnvBool("DB_DEBUG", cfg.Database.Debug)
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)

	cfg.Auth.SecretKey = getEnv("JWT_SECRET_KEY", cfg.Auth.SecretKey)
	cfg.Auth.Issuer = getEnv("JWT_ISSUER", cfg.Auth.Issuer)
	cfg.Auth.AccessTTL = getEnvDuration("JWT_ACCESS_TTL", cfg.Auth.AccessTTL)
	cfg.Auth.RefreshTTL = getEnvDuration("JWT_REFRESH_TTL", cfg.Auth.RefreshTTL)
	cfg.Auth.BcryptCost = getEnvInt("BCRYPT_COST", cfg.Auth.BcryptCost)

	cfg.RateLimit.RedisAddr = getEnv("REDIS_ADDR", cfg.RateLimit.RedisAddr)
	cfg.RateLimit.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RateLimit.RedisPassword)
	cfg.RateLimit.RedisDB = getEnvInt("REDIS_DB", cfg.RateLimit.RedisDB)
	cfg.RateLimit.RequestsPerWindow = getEnvInt("RATE_LIMIT_REQUESTS", cfg.RateLimit.RequestsPerWindow)
	cfg.RateLimit.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)

	cfg.Validation.EmailShape = getEnvBool("VALIDATE_EMAIL_SHAPE", cfg.Validation.EmailShape)
	cfg.Validation.PasswordIdentityRule = getEnvBool("PASSWORD_IDENTITY_RULE", cfg.Validation.PasswordIdentityRule)

	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default value.
// Logs a warning if the value cannot be parsed as an integer.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
		log.Printf("Warning: invalid integer value for %s: %q, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.ParseBool(value); err == nil {
			return result
		}
		log.Printf("Warning: invalid boolean value for %s: %q, using default %t", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if result, err := time.ParseDuration(value); err == nil {
			return result
		}
		log.Printf("Warning: invalid duration value for %s: %q, using default %s", key, value, defaultValue)
	}
	return defaultValue
}
