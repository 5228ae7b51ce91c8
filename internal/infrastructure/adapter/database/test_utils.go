package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/database/migration"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/model"
	timeprovider "github.com/vooz/donation-processor/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing against a real PostgreSQL.
// Tests using it are skipped unless TEST_DB_HOST is set.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a new test database manager
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	if _, ok := os.LookupEnv("TEST_DB_HOST"); !ok {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          "postgres",
		Host:            getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:            getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "donations_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB recreates the donations table with its constraints
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := db.Migrator().DropTable(&model.Donation{}, &model.MigrationVersion{}); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := db.AutoMigrate(&model.Donation{}); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
	if err := migration.NewAddPaymentStatusCheck(db, m.Logger).Run(context.Background()); err != nil {
		t.Fatalf("Failed to add status constraint: %v", err)
	}
}

// TruncateAllTables empties the donations table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec("TRUNCATE TABLE donations RESTART IDENTITY").Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestDonation stores a pending donation and returns its id
func (m *TestDBManager) CreateTestDonation(t *testing.T, amount int64, cadence entity.Cadence) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	donation := model.Donation{
		Code:          "test-" + strconv.FormatInt(now.UnixNano(), 36),
		Name:          "Test donation",
		Amount:        decimal.NewFromInt(amount),
		Cadence:       string(cadence),
		DonorName:     "Test Donor",
		Email:         "donor@example.com",
		SubmittedAt:   now,
		PaymentStatus: string(entity.PaymentStatusPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.Manager.DB().Create(&donation).Error; err != nil {
		t.Fatalf("Failed to create test donation: %v", err)
	}
	return donation.ID
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
