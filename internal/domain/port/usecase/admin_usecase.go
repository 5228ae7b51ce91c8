package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vooz/donation-processor/internal/domain/entity"
	"github.com/vooz/donation-processor/internal/domain/port/gateway"
)

// AdminUseCase defines staff operations on donations
type AdminUseCase interface {
	// GetDonation returns a stored donation
	GetDonation(ctx context.Context, id uint64) (*entity.Donation, error)

	// RefundDonation refunds the settled transaction of a donation.
	// A nil amount refunds in full. The payment status is left unchanged.
	RefundDonation(ctx context.Context, id uint64, amount *decimal.Decimal) (*gateway.APIResult, error)

	// OverrideStatus sets the payment status by hand, bypassing the
	// pending-only rule webhooks follow. It returns the updated donation.
	OverrideStatus(ctx context.Context, id uint64, status entity.PaymentStatus) (*entity.Donation, error)

	// GetTransaction asks the processor about a transaction
	GetTransaction(ctx context.Context, transactionID int64) (*gateway.APIResult, error)
}
