package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "alphasense.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"alphasense": {
			"api_key": "key-123",
			"username": "analyst@example.com",
			"password": "s3cret",
			"client_id": "client-id",
			"client_secret": "client-secret",
			"auth_url": "https://api.alpha-sense.com/auth",
			"ingestion_base_url": "https://research.alpha-sense.com/services/i/ingestion-api/v1"
		},
		"ingestion": {
			"client_id": "custom-sync",
			"request_timeout": "30s"
		},
		"storage": {
			"db": {"dsn": "journal.db"}
		},
		"app": {
			"verbose": true,
			"version": "1.2.3"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key-123", cfg.Auth.APIKey)
	assert.Equal(t, "analyst@example.com", cfg.Auth.Username)
	assert.Equal(t, "s3cret", cfg.Auth.Password)
	assert.Equal(t, "client-id", cfg.Auth.ClientID)
	assert.Equal(t, "client-secret", cfg.Auth.ClientSecret)
	assert.Equal(t, "https://api.alpha-sense.com/auth", cfg.Auth.URL)
	assert.Equal(t, "https://research.alpha-sense.com/services/i/ingestion-api/v1", cfg.Auth.IngestionBaseURL)

	assert.Equal(t, "custom-sync", cfg.Ingestion.ClientID)
	assert.Equal(t, 30*time.Second, cfg.Ingestion.RequestTimeout)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.App.Verbose)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	// Путь к файлу никогда не переносится из самого файла
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_CredentialsSectionOnly(t *testing.T) {
	path := writeConfigFile(t, `{
		"alphasense": {
			"api_key": "key-123",
			"username": "analyst@example.com",
			"password": "s3cret",
			"client_id": "client-id",
			"client_secret": "client-secret",
			"auth_url": "https://api.alpha-sense.com/auth",
			"ingestion_base_url": "https://research.alpha-sense.com/services/i/ingestion-api/v1"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key-123", cfg.Auth.APIKey)
	assert.Empty(t, cfg.Ingestion.ClientID)
	assert.Zero(t, cfg.Ingestion.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "no-such-config.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"alphasense": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{name: "string duration", input: `"1h"`, expected: time.Hour},
		{name: "string seconds", input: `"30s"`, expected: 30 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"soon"`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))

			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
