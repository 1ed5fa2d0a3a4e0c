package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("COOKBOOK_HTTP_ADDR", ":8080")
	t.Setenv("COOKBOOK_HTTP_CERT_FILE", "test-cert.pem")
	t.Setenv("COOKBOOK_HTTP_KEY_FILE", "test-key.pem")
	t.Setenv("COOKBOOK_HTTP_RATE_LIMIT", "10-S")

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "test-cert.pem", cfg.HTTP.CertFile)
	assert.Equal(t, "test-key.pem", cfg.HTTP.KeyFile)
	assert.Equal(t, "10-S", cfg.HTTP.RateLimit)
}

func TestLoadConfigYAML(t *testing.T) {
	viper.Reset()
	dummyConfig := `
http:
  addr: localhost:9090
  cert_file: test-cert.pem
  key_file: test-key.pem
  rate_limit: 20-M
`
	dummyConfigFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(dummyConfigFile, []byte(dummyConfig), 0644))

	require.NoError(t, rootCmd.Flags().Set("config", dummyConfigFile))
	t.Cleanup(func() {
		rootCmd.Flags().Set("config", "")
		rootCmd.Flag("config").Changed = false
	})

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.HTTP.Addr)
	assert.Equal(t, "test-cert.pem", cfg.HTTP.CertFile)
	assert.Equal(t, "test-key.pem", cfg.HTTP.KeyFile)
	assert.Equal(t, "20-M", cfg.HTTP.RateLimit)
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.HTTP.Addr)
	assert.NotEmpty(t, cfg.HTTP.RateLimit)
	assert.Empty(t, cfg.HTTP.CertFile)
	assert.Empty(t, cfg.HTTP.KeyFile)
}
