package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	CloudPayments CloudPaymentsConfig `mapstructure:"cloudpayments"`
	Intake        IntakeConfig        `mapstructure:"intake"`
	Mail          MailConfig          `mapstructure:"mail"`
	Notification  NotificationConfig  `mapstructure:"notification"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Admin         AdminConfig         `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CloudPaymentsConfig contains payment processor credentials and widget settings
type CloudPaymentsConfig struct {
	PublicID   string          `mapstructure:"publicId"`
	APISecret  string          `mapstructure:"apiSecret"`
	TestMode   bool            `mapstructure:"testMode"`
	APIURL     string          `mapstructure:"apiUrl"`
	APITimeout time.Duration   `mapstructure:"apiTimeout"` // seconds
	Webhooks   WebhookPaths    `mapstructure:"webhooks"`
	Widget     WidgetConfig    `mapstructure:"widget"`
	Recurrent  RecurrentConfig `mapstructure:"recurrent"`
}

// WebhookPaths are the routes the processor posts notifications to
type WebhookPaths struct {
	Check string `mapstructure:"check"`
	Pay   string `mapstructure:"pay"`
	Fail  string `mapstructure:"fail"`
}

// WidgetConfig contains payment widget display settings
type WidgetConfig struct {
	Language            string `mapstructure:"language"`
	Currency            string `mapstructure:"currency"`
	Skin                string `mapstructure:"skin"`
	RequireConfirmation bool   `mapstructure:"requireConfirmation"`
}

// RecurrentConfig contains the subscription schedule for monthly donations
type RecurrentConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Interval string `mapstructure:"interval"`
	Period   int    `mapstructure:"period"`
}

// IntakeConfig contains donation form settings
type IntakeConfig struct {
	Path           string   `mapstructure:"path"`
	PresetAmounts  []int    `mapstructure:"presetAmounts"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// MailConfig contains SMTP settings for donor and staff notifications
type MailConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	AdminEmail string `mapstructure:"adminEmail"`
}

// NotificationConfig contains the asynchronous dispatcher settings
type NotificationConfig struct {
	Workers     int           `mapstructure:"workers"`
	QueueSize   int           `mapstructure:"queueSize"`
	SendTimeout time.Duration `mapstructure:"sendTimeout"` // seconds
}

// RedisConfig contains the delivery dedup cache settings
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	DedupTTL time.Duration `mapstructure:"dedupTTL"` // seconds
}

// AdminConfig contains credentials for the staff routes
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
