package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultAddr, cfg.HTTP.Addr)
		assert.Equal(t, DefaultRateLimit, cfg.HTTP.RateLimit)
		assert.False(t, cfg.TLSEnabled())
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := &Config{HTTP: HTTPConfig{Addr: ":9000", RateLimit: "10-S"}}
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, ":9000", cfg.HTTP.Addr)
		assert.Equal(t, "10-S", cfg.HTTP.RateLimit)
	})

	t.Run("cert without key fails", func(t *testing.T) {
		cfg := &Config{HTTP: HTTPConfig{CertFile: "cert.pem"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("cert and key enable tls", func(t *testing.T) {
		cfg := &Config{HTTP: HTTPConfig{CertFile: "cert.pem", KeyFile: "key.pem"}}
		assert.NoError(t, cfg.Validate())
		assert.True(t, cfg.TLSEnabled())
	})
}
