package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vooz/donation-processor/internal/infrastructure/config"
)

func validConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "postgres",
		Database:      "donations",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"MissingHost", func(c *Config) { c.Host = "" }, "database host is required"},
		{"BadPort", func(c *Config) { c.Port = 0 }, "invalid port number: 0"},
		{"MissingUser", func(c *Config) { c.Username = "" }, "database username is required"},
		{"MissingName", func(c *Config) { c.Database = "" }, "database name is required"},
		{"OtherDriver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver: mysql"},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode: sometimes"},
		{"NoPool", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections must be positive, got: 0"},
		{"NoTimeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
		{"NegativeRetries", func(c *Config) { c.RetryAttempts = -1 }, "retry attempts must be non-negative, got: -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestNewConfig(t *testing.T) {
	appConfig := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "postgres",
			Host:         "db",
			Port:         "6543",
			Username:     "app",
			Password:     "secret",
			Database:     "donations",
			SSLMode:      "require",
			MaxOpenConns: 20,
			MaxIdleConns: 4,
			QueryTimeout: 3 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	cfg := NewConfig(appConfig)

	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "host=db port=6543 user=app password=secret dbname=donations sslmode=require", cfg.DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
	assert.Equal(t, 0, ParsePort(""))
}
