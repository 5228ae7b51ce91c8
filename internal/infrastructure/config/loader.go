package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// PlaceholderAPISecret is the shipped secret value. While it is configured the
// processor is treated as unconfigured: signatures are not checked and API
// calls return canned answers.
const PlaceholderAPISecret = "PLACEHOLDER_API_SECRET"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("DP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first readable .env file from DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every non-secret key
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("cloudpayments.publicId", "your_public_id_here")
	v.SetDefault("cloudpayments.apiSecret", PlaceholderAPISecret)
	v.SetDefault("cloudpayments.testMode", true)
	v.SetDefault("cloudpayments.apiUrl", "https://api.cloudpayments.ru")
	v.SetDefault("cloudpayments.apiTimeout", 10) // seconds
	v.SetDefault("cloudpayments.webhooks.check", "/api/payments/check")
	v.SetDefault("cloudpayments.webhooks.pay", "/api/payments/pay")
	v.SetDefault("cloudpayments.webhooks.fail", "/api/payments/fail")
	v.SetDefault("cloudpayments.widget.language", "ru-RU")
	v.SetDefault("cloudpayments.widget.currency", "RUB")
	v.SetDefault("cloudpayments.widget.skin", "modern")
	v.SetDefault("cloudpayments.widget.requireConfirmation", true)
	v.SetDefault("cloudpayments.recurrent.enabled", true)
	v.SetDefault("cloudpayments.recurrent.interval", "Month")
	v.SetDefault("cloudpayments.recurrent.period", 1)

	v.SetDefault("intake.path", "/api/donations")
	v.SetDefault("intake.presetAmounts", []int{500, 1000, 2000, 5000})
	v.SetDefault("intake.allowedOrigins", []string{"*"})

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "noreply@rare-diseases.ru")
	v.SetDefault("mail.adminEmail", "info@rare-diseases.ru")

	v.SetDefault("notification.workers", 2)
	v.SetDefault("notification.queueSize", 100)
	v.SetDefault("notification.sendTimeout", 30) // seconds

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dedupTTL", 86400) // seconds

	v.SetDefault("admin.username", "admin")
}

// getEnvironment determines the environment from DP_ENV
func getEnvironment() string {
	env := os.Getenv("DP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets environment variables win over file values for
// secrets and deployment-specific settings
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DP_SERVER_HOST": "server.host",
		"DP_SERVER_PORT": "server.port",

		"DP_DB_HOST":     "database.host",
		"DP_DB_PORT":     "database.port",
		"DP_DB_USERNAME": "database.username",
		"DP_DB_PASSWORD": "database.password",
		"DP_DB_NAME":     "database.database",
		"DP_DB_SSL_MODE": "database.sslMode",

		"DP_LOGGER_LEVEL":  "logger.level",
		"DP_LOGGER_FORMAT": "logger.format",

		"DP_CP_PUBLIC_ID":  "cloudpayments.publicId",
		"DP_CP_API_SECRET": "cloudpayments.apiSecret",
		"DP_CP_TEST_MODE":  "cloudpayments.testMode",
		"DP_CP_API_URL":    "cloudpayments.apiUrl",

		"DP_INTAKE_PATH": "intake.path",

		"DP_MAIL_ENABLED":  "mail.enabled",
		"DP_MAIL_HOST":     "mail.host",
		"DP_MAIL_PORT":     "mail.port",
		"DP_MAIL_USERNAME": "mail.username",
		"DP_MAIL_PASSWORD": "mail.password",
		"DP_MAIL_FROM":     "mail.from",
		"DP_MAIL_ADMIN":    "mail.adminEmail",

		"DP_NOTIFY_WORKERS": "notification.workers",
		"DP_NOTIFY_QUEUE":   "notification.queueSize",

		"DP_REDIS_ENABLED":  "redis.enabled",
		"DP_REDIS_ADDR":     "redis.addr",
		"DP_REDIS_PASSWORD": "redis.password",
		"DP_REDIS_DB":       "redis.db",

		"DP_ADMIN_USERNAME": "admin.username",
		"DP_ADMIN_PASSWORD": "admin.password",
	}
	for name, key := range overrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt("DP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("DP_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if retryAttempts := getEnvInt("DP_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	// durations are whole seconds and must stay integers until processDurations
	if queryTimeout := getEnvInt("DP_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}

	// Variable names used by the existing site deployment
	if publicID := os.Getenv("CLOUDPAYMENTS_PUBLIC_ID"); publicID != "" {
		v.Set("cloudpayments.publicId", publicID)
	}
	if secret := os.Getenv("CLOUDPAYMENTS_API_SECRET"); secret != "" {
		v.Set("cloudpayments.apiSecret", secret)
	}
	if testMode := os.Getenv("CLOUDPAYMENTS_TEST_MODE"); testMode != "" {
		if parsed, err := strconv.ParseBool(testMode); err == nil {
			v.Set("cloudpayments.testMode", parsed)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw whole-unit values into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second

	config.CloudPayments.APITimeout *= time.Second
	config.Notification.SendTimeout *= time.Second
	config.Redis.DedupTTL *= time.Second
}

// UsesPlaceholderSecret reports whether the processor secret is still unset
func (c CloudPaymentsConfig) UsesPlaceholderSecret() bool {
	return c.APISecret == "" || c.APISecret == PlaceholderAPISecret
}
