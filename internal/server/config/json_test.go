package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_http":      "www.example:9000",
		"database_dsn":            "postgres://example/authgate",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "24h",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://example/authgate", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrHTTP:      "defaults:1234",
			DatabaseDSN:           "dsn",
			SecretKey:             "key",
			TokenValidityDuration: 2 * time.Hour,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "dsn", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("partial file overrides only the fields it sets", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"secret_key": "rotated_key",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{
			EndpointAddrHTTP:      "defaults:1234",
			DatabaseDSN:           "dsn",
			SecretKey:             "key",
			TokenValidityDuration: 2 * time.Hour,
		}
		parseJson(cfg)

		assert.Equal(t, "rotated_key", cfg.SecretKey)
		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "dsn", cfg.DatabaseDSN)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("sub-hour lifetime survives the flag overlay", func(t *testing.T) {
		path := writeTempJSON(t, dir, "short.json", map[string]any{
			"token_validity_duration": "30m",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := LoadConfig()

		assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
