package migration

import (
	"context"

	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes of the donations table
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the indexes AutoMigrate cannot express
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating donation indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			name: "idx_donations_pending",
			sql: `CREATE INDEX IF NOT EXISTS idx_donations_pending
				ON donations (id) WHERE payment_status = 'pending'`,
		},
		{
			name: "idx_donations_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_donations_created_at_brin
				ON donations USING BRIN (created_at) WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_donations_payment_details_gin",
			sql: `CREATE INDEX IF NOT EXISTS idx_donations_payment_details_gin
				ON donations USING GIN (payment_details)`,
		},
	}

	for _, index := range indexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Donation indexes created successfully", nil)
	return nil
}

// ApplyStorageTweaks sets table storage options. Failures are logged only.
func (m *IndexManager) ApplyStorageTweaks(ctx context.Context) {
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE donations SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for donations table", map[string]any{
			"error": err.Error(),
		})
	}
}
