package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	notifport "github.com/vooz/donation-processor/internal/domain/port/notification"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
	"github.com/vooz/donation-processor/internal/domain/usecase/admin"
	"github.com/vooz/donation-processor/internal/domain/usecase/intake"
	"github.com/vooz/donation-processor/internal/domain/usecase/notification"
	"github.com/vooz/donation-processor/internal/domain/usecase/webhook"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/handler"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/routes"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/cache"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/cloudpayments"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/database"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/logger"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/mailer"
	timeprovider "github.com/vooz/donation-processor/internal/infrastructure/adapter/time"
	"github.com/vooz/donation-processor/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(
		cfg.IsProduction() || cfg.Logger.Format == "json",
		coreport.ParseLogLevel(cfg.Logger.Level),
	).With(map[string]any{"service": "donation-processor"})
	defer func() { _ = appLogger.Flush() }()

	tp := timeprovider.NewRealTimeProvider()

	if cfg.CloudPayments.UsesPlaceholderSecret() {
		appLogger.Warn("Payment processor secret is not configured: webhook signatures are NOT verified and API calls are simulated", map[string]any{
			"env": cfg.Environment,
		})
	}

	// Connect to the database
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	dbManager := database.NewManager(database.NewConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		cancelStartup()
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(startupCtx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		cancelStartup()
		os.Exit(1)
	}

	guard, closeGuard := newDeliveryGuard(startupCtx, cfg.Redis, appLogger)
	defer closeGuard()
	cancelStartup()

	sender, err := newSender(cfg.Mail, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize mailer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	dispatcher := notification.NewDispatcher(
		sender,
		tp,
		appLogger.With(map[string]any{"component": "notifications"}),
		cfg.Notification.Workers,
		cfg.Notification.QueueSize,
		coreport.Duration(cfg.Notification.SendTimeout),
	)

	donationRepo := dbManager.DonationRepository()

	webhookService := webhook.NewService(
		cloudpayments.NewHMACVerifier(cfg.CloudPayments.APISecret, cfg.CloudPayments.UsesPlaceholderSecret()),
		donationRepo,
		guard,
		dispatcher,
		tp,
		appLogger.With(map[string]any{"component": "webhook"}),
		coreport.Duration(cfg.Database.QueryTimeout),
	)

	intakeService := intake.NewService(
		dbManager.CreateUnitOfWork(),
		dispatcher,
		tp,
		appLogger.With(map[string]any{"component": "intake"}),
		intake.Settings{
			Widget: entity.WidgetSettings{
				PublicID:          cfg.CloudPayments.PublicID,
				Currency:          cfg.CloudPayments.Widget.Currency,
				Language:          cfg.CloudPayments.Widget.Language,
				Skin:              cfg.CloudPayments.Widget.Skin,
				RecurrentEnabled:  cfg.CloudPayments.Recurrent.Enabled,
				RecurrentInterval: cfg.CloudPayments.Recurrent.Interval,
				RecurrentPeriod:   cfg.CloudPayments.Recurrent.Period,
			},
			PresetAmounts:       cfg.Intake.PresetAmounts,
			RequireConfirmation: cfg.CloudPayments.Widget.RequireConfirmation,
			TestMode:            cfg.CloudPayments.TestMode,
		},
	)

	adminService := admin.NewService(
		donationRepo,
		cloudpayments.NewClient(cfg.CloudPayments, appLogger),
		appLogger.With(map[string]any{"component": "admin"}),
	)

	// Initialize API handlers
	handlers := routes.Handlers{
		Webhook: handler.NewWebhookHandler(webhookService, appLogger),
		Intake:  handler.NewIntakeHandler(intakeService, appLogger),
		Admin:   handler.NewAdminHandler(adminService, appLogger),
		Health:  handler.NewHealthHandler(dbManager.HealthChecker()),
	}

	var adminAccounts gin.Accounts
	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		adminAccounts = gin.Accounts{cfg.Admin.Username: cfg.Admin.Password}
	} else {
		appLogger.Warn("Admin credentials are not set, admin routes are disabled", nil)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Intake.AllowedOrigins)
	routes.SetupRoutes(router, handlers, routes.Paths{
		Check:  cfg.CloudPayments.Webhooks.Check,
		Pay:    cfg.CloudPayments.Webhooks.Pay,
		Fail:   cfg.CloudPayments.Webhooks.Fail,
		Intake: cfg.Intake.Path,
	}, adminAccounts)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"test_mode": cfg.CloudPayments.TestMode,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop taking requests first so no new notifications are queued
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := dispatcher.Shutdown(ctx); err != nil {
		appLogger.Warn("Notification queue not fully drained", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newDeliveryGuard connects to redis when enabled. A redis outage at start
// degrades to the no-op guard; the conditional status update still keeps
// replays harmless.
func newDeliveryGuard(ctx context.Context, conf config.RedisConfig, appLogger coreport.Logger) (persistence.DeliveryGuard, func()) {
	if !conf.Enabled {
		return cache.NoopDeliveryGuard{}, func() {}
	}

	client, err := cache.NewClient(ctx, conf.Addr, conf.Password, conf.DB)
	if err != nil {
		appLogger.Warn("Redis unavailable, webhook replays will only be caught by the database", map[string]any{
			"addr":  conf.Addr,
			"error": err.Error(),
		})
		return cache.NoopDeliveryGuard{}, func() {}
	}

	appLogger.Info("Connected to redis", map[string]any{
		"addr":      conf.Addr,
		"dedup_ttl": conf.DedupTTL.String(),
	})
	return cache.NewRedisDeliveryGuard(client, conf.DedupTTL, appLogger), func() { _ = client.Close() }
}

func newSender(conf config.MailConfig, appLogger coreport.Logger) (notifport.Sender, error) {
	if !conf.Enabled {
		appLogger.Info("Mail is disabled, notifications are only logged", nil)
		return mailer.NewLogSender(appLogger), nil
	}
	return mailer.NewSMTPMailer(conf, appLogger)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or DP_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or DP_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or DP_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or DP_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate processor and form configuration
	if cfg.CloudPayments.PublicID == "" {
		missingConfigs = append(missingConfigs, "cloudpayments.publicId (or CLOUDPAYMENTS_PUBLIC_ID environment variable)")
	}
	if cfg.CloudPayments.Webhooks.Check == "" || cfg.CloudPayments.Webhooks.Pay == "" || cfg.CloudPayments.Webhooks.Fail == "" {
		missingConfigs = append(missingConfigs, "cloudpayments.webhooks")
	}
	if cfg.Intake.Path == "" {
		missingConfigs = append(missingConfigs, "intake.path")
	}
	if cfg.Mail.Enabled && cfg.Mail.Host == "" {
		missingConfigs = append(missingConfigs, "mail.host")
	}
	if cfg.Redis.Enabled && cfg.Redis.DedupTTL == 0 {
		missingConfigs = append(missingConfigs, "redis.dedupTTL")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.IsProduction() {
		if cfg.CloudPayments.UsesPlaceholderSecret() {
			return errors.New("cloudpayments.apiSecret (or CLOUDPAYMENTS_API_SECRET) must be set in production: " +
				"with the placeholder secret webhook signatures are not verified")
		}

		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.CloudPayments.TestMode {
			warnings = append(warnings, "cloudpayments.testMode is enabled in production")
		}
		if cfg.Admin.Password == "admin" {
			warnings = append(warnings, "admin.password is the development default")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
