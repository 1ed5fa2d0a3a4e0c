package server

import "fmt"

const (
	DefaultAddr      = "localhost:8000"
	DefaultRateLimit = "500-M"
)

type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
}

type HTTPConfig struct {
	Addr      string `mapstructure:"addr"`
	CertFile  string `mapstructure:"cert_file"`
	KeyFile   string `mapstructure:"key_file"`
	RateLimit string `mapstructure:"rate_limit"`
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultAddr
	}
	if c.HTTP.RateLimit == "" {
		c.HTTP.RateLimit = DefaultRateLimit
	}
	if (c.HTTP.CertFile == "") != (c.HTTP.KeyFile == "") {
		return fmt.Errorf("http `cert_file` and `key_file` must be set together")
	}
	return nil
}

func (c *Config) TLSEnabled() bool {
	return c.HTTP.CertFile != "" && c.HTTP.KeyFile != ""
}
