// Package config memuat konfigurasi storefront: default, lalu file YAML (opsional), lalu environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/order"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ServiceName string `yaml:"service_name"`
	HTTPAddr    string `yaml:"http_addr"`
	// Origin situs untuk membangun tracking link, misalnya https://toko.example.com
	SiteOrigin string `yaml:"site_origin"`
	LogLevel   string `yaml:"log_level"`

	Backend  BackendConfig  `yaml:"backend"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Orders   OrdersConfig   `yaml:"orders"`
	Admin    AdminConfig    `yaml:"admin"`
}

type BackendConfig struct {
	Mode    string        `yaml:"mode"` // local | remote
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // postgres | sqlite
	URL    string `yaml:"url"`
}

type RedisConfig struct {
	Addr            string        `yaml:"addr"`
	DraftTTL        time.Duration `yaml:"draft_ttl"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	TrackCacheTTL   time.Duration `yaml:"track_cache_ttl"`
	ProductCacheTTL time.Duration `yaml:"product_cache_ttl"`
}

// URL kosong berarti event tidak diterbitkan.
type RabbitMQConfig struct {
	URL string `yaml:"url"`
}

type OrdersConfig struct {
	MaxProofBytes     int64    `yaml:"max_proof_bytes"`
	AllowedProofTypes []string `yaml:"allowed_proof_types"`
	TransitionPolicy  string   `yaml:"transition_policy"` // permissive | forward-only
}

// AdminConfig hanya dipakai backend local.
type AdminConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"` // bcrypt
	Name         string `yaml:"name"`
}

func DefaultConfig() *Config {
	rules := order.DefaultProofRules()
	return &Config{
		ServiceName: "storefront",
		HTTPAddr:    ":8080",
		SiteOrigin:  "http://localhost:8080",
		LogLevel:    "info",
		Backend: BackendConfig{
			Mode:    BackendLocal,
			Timeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			URL:    "file:storefront.db",
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			DraftTTL:        30 * time.Minute,
			SessionTTL:      12 * time.Hour,
			TrackCacheTTL:   30 * time.Second,
			ProductCacheTTL: 5 * time.Minute,
		},
		Orders: OrdersConfig{
			MaxProofBytes:     rules.MaxBytes,
			AllowedProofTypes: rules.AllowedTypes,
			TransitionPolicy:  "permissive",
		},
		Admin: AdminConfig{
			Username: "admin",
			Name:     "Admin",
		},
	}
}

// Load membaca .env (jika ada), file YAML di path (jika ada), lalu override dari environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// pakai default
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	setString(&c.ServiceName, "SERVICE_NAME")
	setString(&c.HTTPAddr, "HTTP_ADDR")
	setString(&c.SiteOrigin, "SITE_ORIGIN")
	setString(&c.LogLevel, "LOG_LEVEL")

	setString(&c.Backend.Mode, "BACKEND_MODE")
	setString(&c.Backend.URL, "BACKEND_URL")
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.RabbitMQ.URL, "RABBITMQ_URL")
	setString(&c.Orders.TransitionPolicy, "TRANSITION_POLICY")
	setString(&c.Admin.Username, "ADMIN_USERNAME")
	setString(&c.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&c.Admin.Name, "ADMIN_NAME")

	if v := os.Getenv("ALLOWED_PROOF_TYPES"); v != "" {
		c.Orders.AllowedProofTypes = splitCSV(v)
	}
	if v := os.Getenv("MAX_PROOF_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_PROOF_BYTES %q: %w", v, err)
		}
		c.Orders.MaxProofBytes = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"BACKEND_TIMEOUT", &c.Backend.Timeout},
		{"DRAFT_TTL", &c.Redis.DraftTTL},
		{"SESSION_TTL", &c.Redis.SessionTTL},
		{"TRACK_CACHE_TTL", &c.Redis.TrackCacheTTL},
		{"PRODUCT_CACHE_TTL", &c.Redis.ProductCacheTTL},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", d.key, v, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Backend.Mode {
	case BackendLocal:
		if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverSQLite {
			return fmt.Errorf("database driver must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
		}
		if c.Database.URL == "" {
			return errors.New("database url is required for local backend")
		}
	case BackendRemote:
		if c.Backend.URL == "" {
			return errors.New("backend url is required for remote backend")
		}
	default:
		return fmt.Errorf("backend mode must be %q or %q, got %q", BackendLocal, BackendRemote, c.Backend.Mode)
	}
	if c.Backend.Timeout <= 0 {
		return errors.New("backend timeout must be positive")
	}
	if c.SiteOrigin == "" {
		return errors.New("site origin is required")
	}
	if c.Orders.MaxProofBytes <= 0 {
		return errors.New("max proof bytes must be positive")
	}
	if len(c.Orders.AllowedProofTypes) == 0 {
		return errors.New("at least one proof type must be allowed")
	}
	if _, err := order.PolicyByName(c.Orders.TransitionPolicy); err != nil {
		return err
	}
	return nil
}

func (c *Config) ProofRules() order.ProofRules {
	return order.ProofRules{MaxBytes: c.Orders.MaxProofBytes, AllowedTypes: c.Orders.AllowedProofTypes}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
