package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test-config")
	assert.NoError(t, err)
	defer os.RemoveAll(tempDir)

	t.Run("FileDoesNotExist", func(t *testing.T) {
		err := Parse(filepath.Join(tempDir, "non-existent.json"))
		assert.Error(t, err)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "invalid.json")
		file, err := os.Create(configPath)
		assert.NoError(t, err)
		file.WriteString("invalid json")
		file.Close()

		err = Parse(configPath)
		assert.Error(t, err)
	})

	t.Run("MissingBaseUrl", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "missing-url.json")
		file, err := os.Create(configPath)
		assert.NoError(t, err)
		file.WriteString(`{"timeout_seconds": 30}`)
		file.Close()

		err = Parse(configPath)
		assert.Error(t, err)
	})

	t.Run("InvalidScheme", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "invalid-scheme.json")
		file, err := os.Create(configPath)
		assert.NoError(t, err)
		file.WriteString(`{"api_base_url": "ftp://example.com"}`)
		file.Close()

		err = Parse(configPath)
		assert.Error(t, err)
	})

	t.Run("NegativeTimeout", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "negative-timeout.json")
		file, err := os.Create(configPath)
		assert.NoError(t, err)
		file.WriteString(`{"api_base_url": "http://localhost:8000", "timeout_seconds": -1}`)
		file.Close()

		err = Parse(configPath)
		assert.Error(t, err)
	})

	t.Run("ValidConfig", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "valid.json")
		file, err := os.Create(configPath)
		assert.NoError(t, err)
		file.WriteString(`{
			"api_base_url": "https://photos.example.com/api/",
			"timeout_seconds": 30
		}`)
		file.Close()

		err = Parse(configPath)
		assert.NoError(t, err)

		cfg := Get()
		// the trailing slash is stripped for path joining
		assert.Equal(t, "https://photos.example.com/api", cfg.ApiBaseUrl)
		assert.Equal(t, 30, cfg.TimeoutSeconds)
		assert.Equal(t, "30s", cfg.Timeout().String())
	})
}

func TestGetDefaultConfigDir(t *testing.T) {
	tempHome, err := os.MkdirTemp("", "test-home")
	assert.NoError(t, err)
	defer os.RemoveAll(tempHome)

	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempHome, ".config"))

	configDir, err := GetDefaultConfigDir()
	assert.NoError(t, err)

	expectedDir := filepath.Join(tempHome, ".config", "pholio")
	assert.Equal(t, expectedDir, configDir)
	info, err := os.Stat(configDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetDefaultConfigPath(t *testing.T) {
	tempHome, err := os.MkdirTemp("", "test-home")
	assert.NoError(t, err)
	defer os.RemoveAll(tempHome)

	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempHome, ".config"))

	configPath, err := GetDefaultConfigPath()
	assert.NoError(t, err)

	expectedPath := filepath.Join(tempHome, ".config", "pholio", "config.json")
	assert.Equal(t, expectedPath, configPath)
	info, err := os.Stat(configPath)
	assert.NoError(t, err)
	assert.False(t, info.IsDir())

	// the generated default must itself parse
	err = Parse(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", Get().ApiBaseUrl)
}
