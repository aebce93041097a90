package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SERVICE_NAME", "HTTP_ADDR", "SITE_ORIGIN", "LOG_LEVEL", "BACKEND_MODE", "BACKEND_URL",
	"DATABASE_DRIVER", "DATABASE_URL", "REDIS_ADDR", "RABBITMQ_URL", "TRANSITION_POLICY",
	"ADMIN_USERNAME", "ADMIN_PASSWORD_HASH", "ADMIN_NAME", "ALLOWED_PROOF_TYPES", "MAX_PROOF_BYTES",
	"BACKEND_TIMEOUT", "DRAFT_TTL", "SESSION_TTL", "TRACK_CACHE_TTL", "PRODUCT_CACHE_TTL",
}

func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendLocal, cfg.Backend.Mode)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, int64(5*1024*1024), cfg.Orders.MaxProofBytes)
	assert.Equal(t, "permissive", cfg.Orders.TransitionPolicy)
	assert.Len(t, cfg.ProofRules().AllowedTypes, 4)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
site_origin: https://toko.example.com
backend:
  mode: remote
  url: https://script.example.com/exec
  timeout: 5s
redis:
  addr: redis:6379
  track_cache_ttl: 1m
orders:
  transition_policy: forward-only
`)
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("MAX_PROOF_BYTES", "1048576")
	t.Setenv("ALLOWED_PROOF_TYPES", "image/png, image/jpeg")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://toko.example.com", cfg.SiteOrigin)
	assert.Equal(t, BackendRemote, cfg.Backend.Mode)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, time.Minute, cfg.Redis.TrackCacheTTL)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr, "env menang atas file")
	assert.Equal(t, int64(1048576), cfg.Orders.MaxProofBytes)
	assert.Equal(t, []string{"image/png", "image/jpeg"}, cfg.Orders.AllowedProofTypes)
	assert.Equal(t, "forward-only", cfg.Orders.TransitionPolicy)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend mode", map[string]string{"BACKEND_MODE": "grpc"}},
		{"remote without url", map[string]string{"BACKEND_MODE": "remote"}},
		{"unknown driver", map[string]string{"DATABASE_DRIVER": "mysql"}},
		{"bad duration", map[string]string{"BACKEND_TIMEOUT": "sepuluh"}},
		{"bad proof size", map[string]string{"MAX_PROOF_BYTES": "5MB"}},
		{"unknown policy", map[string]string{"TRANSITION_POLICY": "strict"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "backend: [tidak valid")

	_, err := Load(path)

	assert.Error(t, err)
}
