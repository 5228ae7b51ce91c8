package migration

import (
	"context"
	"fmt"

	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// PaymentStatusConstraint is the name of the check constraint on donations.payment_status
const PaymentStatusConstraint = "chk_donations_payment_status"

// AddPaymentStatusCheck restricts donations.payment_status to the three known values
type AddPaymentStatusCheck struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddPaymentStatusCheck creates a new migration instance
func NewAddPaymentStatusCheck(db *gorm.DB, logger coreport.Logger) *AddPaymentStatusCheck {
	return &AddPaymentStatusCheck{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration; it is a no-op when the constraint exists
func (m *AddPaymentStatusCheck) Run(ctx context.Context) error {
	exists, err := m.constraintExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		m.logger.Debug("Payment status constraint already present", nil)
		return nil
	}

	m.logger.Info("Adding payment status check to donations table", nil)

	stmt := fmt.Sprintf(
		`ALTER TABLE donations ADD CONSTRAINT %s CHECK (payment_status IN ('pending', 'success', 'rejected'))`,
		PaymentStatusConstraint,
	)
	if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		m.logger.Error("Failed to add payment status constraint", map[string]any{"error": err.Error()})
		return err
	}

	return nil
}

func (m *AddPaymentStatusCheck) constraintExists(ctx context.Context) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM information_schema.table_constraints
		WHERE table_name = 'donations' AND constraint_name = ?
	`, PaymentStatusConstraint).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check payment status constraint", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}
